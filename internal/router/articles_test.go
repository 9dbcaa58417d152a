package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veslaw/casefolio/internal/domain"
)

func seedArticle(t *testing.T, ts *testServer, body string) string {
	t.Helper()

	rec := ts.do(http.MethodPost, "/api/articles", body, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created["id"]
}

func TestCreateArticle_SanitizesRichText(t *testing.T) {
	ts := newTestServer(t)

	body := `{
		"title": "On standing",
		"excerpt": "a look at standing",
		"intro": "<h1>Intro</h1>",
		"content": "<p>Body</p><script>steal()</script>",
		"keywords": ["standing"]
	}`
	id := seedArticle(t, ts, body)

	rec := ts.do(http.MethodGet, "/api/articles/"+id, "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "<h1>Intro</h1>", got.Intro)
	assert.NotContains(t, got.Content, "script")
	assert.Contains(t, got.Content, "<p>Body</p>")
	assert.NotNil(t, got.RelatedCases)
}

func TestCreateArticle_RequiresTitle(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/articles", `{"excerpt":"no title"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateArticle_RequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/articles", `{"title":"x"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSearchArticles_Term(t *testing.T) {
	ts := newTestServer(t)

	seedArticle(t, ts, `{"title":"Standing doctrine revisited","excerpt":"e"}`)
	seedArticle(t, ts, `{"title":"Mootness","excerpt":"e"}`)

	rec := ts.do(http.MethodGet, "/api/articles/search?term=standing", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Standing doctrine revisited", got[0].Title)
}

func TestSearchArticles_EmptyTermReturnsAll(t *testing.T) {
	ts := newTestServer(t)

	seedArticle(t, ts, `{"title":"one","excerpt":"e"}`)
	seedArticle(t, ts, `{"title":"two","excerpt":"e"}`)

	rec := ts.do(http.MethodGet, "/api/articles/search?term=", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Article
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestSearchArticles_BadDateIsValidation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/articles/search?startDate=last-tuesday", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteArticle_Irreversible(t *testing.T) {
	ts := newTestServer(t)

	id := seedArticle(t, ts, `{"title":"ephemeral","excerpt":"e"}`)

	rec := ts.do(http.MethodDelete, "/api/articles/"+id, "", true)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(http.MethodGet, "/api/articles/"+id, "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	all, err := ts.articles.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateArticle_MissingIsNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPut, "/api/articles/00000000-0000-0000-0000-0000000000bb", `{"title":"x"}`, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

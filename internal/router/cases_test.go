package router_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veslaw/casefolio/internal/apperr"
	"github.com/veslaw/casefolio/internal/auth"
	"github.com/veslaw/casefolio/internal/domain"
	"github.com/veslaw/casefolio/internal/router"
	"github.com/veslaw/casefolio/internal/storage/in_mem"
)

const testPasscode = "letmein"

type testServer struct {
	e        *echo.Echo
	cases    *in_mem.CaseStore
	articles *in_mem.ArticleStore
	token    string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()

	gate := auth.NewGate(testPasscode)
	token, ok := gate.Authenticate(testPasscode)
	require.True(t, ok)

	cases := in_mem.NewCaseStore()
	articles := in_mem.NewArticleStore()

	router.NewCaseRouter(e, cases, gate).Bind()
	router.NewArticleRouter(e, articles, gate).Bind()
	router.NewAdminRouter(e, gate).Bind()

	return &testServer{e: e, cases: cases, articles: articles, token: token}
}

func (ts *testServer) do(method, path, body string, authed bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authed {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+ts.token)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func TestCreateCase_RequiresAuth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/cases", `{"title":"Brown v Board"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	all, err := ts.cases.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateCase_ValidationBlocksStorage(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/cases", `{"title":"   "}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	all, err := ts.cases.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreateAndGetCase(t *testing.T) {
	ts := newTestServer(t)

	body := `{
		"title": "Brown v Board",
		"court": "Supreme Court",
		"conclusionDate": "1954-05-17",
		"summary": "<p>Separate is not equal.</p><script>x()</script>",
		"keywords": ["segregation"]
	}`
	rec := ts.do(http.MethodPost, "/api/cases", body, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created["id"]
	require.NotEmpty(t, id)

	rec = ts.do(http.MethodGet, "/api/cases/"+id, "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Case
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Brown v Board", got.Title)
	assert.NotContains(t, got.Summary, "script")
	assert.Contains(t, got.Summary, "<p>Separate is not equal.</p>")
	assert.NotNil(t, got.RelatedCases)
	assert.NotNil(t, got.Timeline)
}

func TestGetCase_NotFoundIsExplicit(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/cases/00000000-0000-0000-0000-000000000001", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found")
}

func TestGetCase_BadIDIsValidation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/cases/not-a-uuid", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCase_MissingIDSurfacesFailure(t *testing.T) {
	ts := newTestServer(t)

	seedCase(t, ts, `{"title":"keep me"}`)

	rec := ts.do(http.MethodDelete, "/api/cases/00000000-0000-0000-0000-0000000000aa", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// listing unchanged
	all, err := ts.cases.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateCase(t *testing.T) {
	ts := newTestServer(t)

	id := seedCase(t, ts, `{"title":"original","summary":"s"}`)

	rec := ts.do(http.MethodPut, "/api/cases/"+id, `{"title":"revised","summary":"s2"}`, true)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = ts.do(http.MethodGet, "/api/cases/"+id, "", false)
	var got domain.Case
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "revised", got.Title)
}

func TestSearchCases_TermAndYear(t *testing.T) {
	ts := newTestServer(t)

	seedCase(t, ts, `{"title":"Brown v Board","conclusionDate":"1954-05-17"}`)
	seedCase(t, ts, `{"title":"Roe v Wade","conclusionDate":"1973-01-22"}`)

	rec := ts.do(http.MethodGet, "/api/cases/search?term=v&year=1954", "", false)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Case
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Brown v Board", got[0].Title)
}

func TestSearchCases_BadYearIsValidation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/cases/search?year=nineteen", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTimelineSave_PersistsSortedOrder(t *testing.T) {
	ts := newTestServer(t)

	id := seedCase(t, ts, `{"title":"with timeline"}`)

	body := `[
		{"date":"2020-01-01","title":"filed","description":"d1"},
		{"date":"2019-06-15","title":"incident","description":"d2"},
		{"date":"2021-03-03","title":"ruling","description":"d3"}
	]`
	rec := ts.do(http.MethodPut, "/api/cases/"+id+"/timeline", body, true)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(http.MethodGet, "/api/cases/"+id, "", false)
	var got domain.Case
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Timeline, 3)
	assert.Equal(t, "2021-03-03", got.Timeline[0].Date)
	assert.Equal(t, "2020-01-01", got.Timeline[1].Date)
	assert.Equal(t, "2019-06-15", got.Timeline[2].Date)
}

func TestTimelineSave_ValidatesEvents(t *testing.T) {
	ts := newTestServer(t)

	id := seedCase(t, ts, `{"title":"with timeline"}`)

	rec := ts.do(http.MethodPut, "/api/cases/"+id+"/timeline", `[{"date":"","title":"x"}]`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestYearsAndCourts(t *testing.T) {
	ts := newTestServer(t)

	seedCase(t, ts, `{"title":"a","conclusionDate":"1954-05-17","court":"Supreme Court"}`)
	seedCase(t, ts, `{"title":"b","conclusionDate":"1973-01-22","court":"Court of Appeals"}`)
	seedCase(t, ts, `{"title":"c"}`)

	rec := ts.do(http.MethodGet, "/api/cases/years", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	var years []int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &years))
	assert.Equal(t, []int{1973, 1954}, years)

	rec = ts.do(http.MethodGet, "/api/cases/courts", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
	var courts []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courts))
	assert.Equal(t, []string{"Court of Appeals", "Supreme Court"}, courts)
}

func TestAdminLogin(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/admin/login", fmt.Sprintf(`{"passcode":%q}`, testPasscode), false)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])

	rec = ts.do(http.MethodPost, "/api/admin/login", `{"passcode":"wrong"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func seedCase(t *testing.T, ts *testServer, body string) string {
	t.Helper()

	rec := ts.do(http.MethodPost, "/api/cases", body, true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created["id"]
}

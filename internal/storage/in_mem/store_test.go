package in_mem_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veslaw/casefolio/internal/apperr"
	"github.com/veslaw/casefolio/internal/domain"
	"github.com/veslaw/casefolio/internal/storage/in_mem"
)

func TestCaseStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewCaseStore()

	id, err := store.Create(ctx, domain.Case{Title: "Brown v Board"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	got, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Brown v Board", got.Title)
	assert.NotZero(t, got.PublishedAt)
	assert.NotZero(t, got.CreatedAt)

	// list fields always read back as empty lists, never nil
	assert.NotNil(t, got.Keywords)
	assert.NotNil(t, got.RelatedCases)
	assert.NotNil(t, got.Timeline)
}

func TestCaseStore_GetMissing(t *testing.T) {
	store := in_mem.NewCaseStore()

	_, err := store.GetByID(context.Background(), uuid.New())
	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestCaseStore_UpdateRefreshesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewCaseStore()

	id, err := store.Create(ctx, domain.Case{Title: "original"})
	require.NoError(t, err)

	created, err := store.GetByID(ctx, id)
	require.NoError(t, err)

	time.Sleep(2 * time.Millisecond)
	require.NoError(t, store.Update(ctx, id, domain.Case{Title: "revised"}))

	updated, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "revised", updated.Title)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Greater(t, updated.UpdatedAt, created.UpdatedAt)
}

func TestCaseStore_DeleteMissing(t *testing.T) {
	store := in_mem.NewCaseStore()

	err := store.Delete(context.Background(), uuid.New())
	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestCaseStore_ReplaceTimeline(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewCaseStore()

	id, err := store.Create(ctx, domain.Case{Title: "with timeline"})
	require.NoError(t, err)

	events := []domain.TimelineEvent{
		{Date: "2021-03-03", Title: "ruling"},
		{Date: "2020-01-01", Title: "filed"},
	}
	require.NoError(t, store.ReplaceTimeline(ctx, id, events))

	got, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, got.Timeline, 2)
	assert.Equal(t, "2021-03-03", got.Timeline[0].Date)
	assert.Equal(t, "2020-01-01", got.Timeline[1].Date)
}

func TestCaseStore_ListOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewCaseStore()

	for _, title := range []string{"first", "second", "third"} {
		_, err := store.Create(ctx, domain.Case{Title: title})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	all, err := store.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Title)

	capped, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}

func TestCaseStore_DistinctYearsAndCourts(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewCaseStore()

	seed := []domain.Case{
		{Title: "a", ConclusionDate: "1954-05-17", Court: "Supreme Court"},
		{Title: "b", ConclusionDate: "1973-01-22", Court: "Supreme Court"},
		{Title: "c", ConclusionDate: "1973-06-30", Court: "Court of Appeals"},
		{Title: "d", ConclusionDate: "not a date"},
		{Title: "e"},
	}
	for _, c := range seed {
		_, err := store.Create(ctx, c)
		require.NoError(t, err)
	}

	years, err := store.DistinctYears(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1973, 1954}, years)

	courts, err := store.DistinctCourts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Court of Appeals", "Supreme Court"}, courts)
}

func TestCaseStore_ReadsDoNotAliasStorage(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewCaseStore()

	id, err := store.Create(ctx, domain.Case{Title: "x", Keywords: []string{"k1"}})
	require.NoError(t, err)

	first, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	first.Keywords[0] = "mutated"

	second, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "k1", second.Keywords[0])
}

func TestArticleStore_CRUD(t *testing.T) {
	ctx := context.Background()
	store := in_mem.NewArticleStore()

	id, err := store.Create(ctx, domain.Article{Title: "On mootness", Excerpt: "short"})
	require.NoError(t, err)

	got, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "On mootness", got.Title)
	assert.NotNil(t, got.Keywords)

	require.NoError(t, store.Update(ctx, id, domain.Article{Title: "On mootness, revisited"}))
	got, err = store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "On mootness, revisited", got.Title)

	require.NoError(t, store.Delete(ctx, id))
	_, err = store.GetByID(ctx, id)
	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)

	// deletion is immediate and irreversible
	err = store.Delete(ctx, id)
	require.ErrorAs(t, err, &nf)
}

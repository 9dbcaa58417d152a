// Package in_mem holds map-backed stores used in tests and local mode.
package in_mem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/veslaw/casefolio/internal/apperr"
	"github.com/veslaw/casefolio/internal/domain"
)

type CaseStore struct {
	mu    sync.RWMutex
	cases map[uuid.UUID]domain.Case
}

func NewCaseStore() *CaseStore {
	return &CaseStore{cases: make(map[uuid.UUID]domain.Case)}
}

func (s *CaseStore) List(ctx context.Context, limit int) ([]domain.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Case, 0, len(s.cases))
	for _, c := range s.cases {
		out = append(out, cloneCase(c))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt > out[j].PublishedAt
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *CaseStore) GetByID(ctx context.Context, id uuid.UUID) (domain.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cases[id]
	if !ok {
		return domain.Case{}, apperr.NewNotFound("case")
	}
	return cloneCase(c), nil
}

func (s *CaseStore) Create(ctx context.Context, c domain.Case) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	now := time.Now().UnixMilli()
	c.PublishedAt = now
	c.CreatedAt = now
	c.UpdatedAt = now
	c.Normalize()

	s.cases[c.ID] = cloneCase(c)
	return c.ID, nil
}

func (s *CaseStore) Update(ctx context.Context, id uuid.UUID, c domain.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.cases[id]
	if !ok {
		return apperr.NewNotFound("case")
	}

	c.ID = id
	c.PublishedAt = existing.PublishedAt
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now().UnixMilli()
	c.Normalize()

	s.cases[id] = cloneCase(c)
	return nil
}

func (s *CaseStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cases[id]; !ok {
		return apperr.NewNotFound("case")
	}
	delete(s.cases, id)
	return nil
}

func (s *CaseStore) ReplaceTimeline(ctx context.Context, id uuid.UUID, events []domain.TimelineEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cases[id]
	if !ok {
		return apperr.NewNotFound("case")
	}

	if events == nil {
		events = []domain.TimelineEvent{}
	}
	c.Timeline = append([]domain.TimelineEvent(nil), events...)
	c.UpdatedAt = time.Now().UnixMilli()
	s.cases[id] = c
	return nil
}

func (s *CaseStore) DistinctYears(ctx context.Context) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[int]struct{})
	for _, c := range s.cases {
		if y, ok := c.ConclusionYear(); ok {
			seen[y] = struct{}{}
		}
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

func (s *CaseStore) DistinctCourts(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, c := range s.cases {
		if c.Court != "" {
			seen[c.Court] = struct{}{}
		}
	}

	courts := make([]string, 0, len(seen))
	for court := range seen {
		courts = append(courts, court)
	}
	sort.Strings(courts)
	return courts, nil
}

type ArticleStore struct {
	mu       sync.RWMutex
	articles map[uuid.UUID]domain.Article
}

func NewArticleStore() *ArticleStore {
	return &ArticleStore{articles: make(map[uuid.UUID]domain.Article)}
}

func (s *ArticleStore) List(ctx context.Context, limit int) ([]domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Article, 0, len(s.articles))
	for _, a := range s.articles {
		out = append(out, cloneArticle(a))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PublishedAt > out[j].PublishedAt
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *ArticleStore) GetByID(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.articles[id]
	if !ok {
		return domain.Article{}, apperr.NewNotFound("article")
	}
	return cloneArticle(a), nil
}

func (s *ArticleStore) Create(ctx context.Context, a domain.Article) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	now := time.Now().UnixMilli()
	a.PublishedAt = now
	a.UpdatedAt = now
	a.Normalize()

	s.articles[a.ID] = cloneArticle(a)
	return a.ID, nil
}

func (s *ArticleStore) Update(ctx context.Context, id uuid.UUID, a domain.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.articles[id]
	if !ok {
		return apperr.NewNotFound("article")
	}

	a.ID = id
	a.PublishedAt = existing.PublishedAt
	a.UpdatedAt = time.Now().UnixMilli()
	a.Normalize()

	s.articles[id] = cloneArticle(a)
	return nil
}

func (s *ArticleStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.articles[id]; !ok {
		return apperr.NewNotFound("article")
	}
	delete(s.articles, id)
	return nil
}

// Clones keep callers from mutating the shared maps through slice aliasing.

func cloneCase(c domain.Case) domain.Case {
	c.Keywords = append([]string(nil), c.Keywords...)
	c.RelatedCases = append([]domain.RelatedCase(nil), c.RelatedCases...)
	c.Timeline = append([]domain.TimelineEvent(nil), c.Timeline...)
	c.Normalize()
	return c
}

func cloneArticle(a domain.Article) domain.Article {
	a.Keywords = append([]string(nil), a.Keywords...)
	a.RelatedCases = append([]domain.RelatedCase(nil), a.RelatedCases...)
	a.Normalize()
	return a
}

package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/veslaw/casefolio/internal/domain"
)

// CaseStore is the persistence surface for cases. Every mutation is a
// single atomic document write; there is no cross-document transaction.
type CaseStore interface {
	// List returns up to limit cases, newest publish first.
	List(ctx context.Context, limit int) ([]domain.Case, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Case, error)
	// Create assigns the identifier and the publish/create/update timestamps.
	Create(ctx context.Context, c domain.Case) (uuid.UUID, error)
	// Update replaces the full field set and refreshes updatedAt.
	Update(ctx context.Context, id uuid.UUID, c domain.Case) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ReplaceTimeline swaps the whole event list and refreshes updatedAt,
	// leaving the rest of the case untouched.
	ReplaceTimeline(ctx context.Context, id uuid.UUID, events []domain.TimelineEvent) error
	// DistinctYears scans all conclusion dates and returns the parseable
	// years, deduplicated, newest first.
	DistinctYears(ctx context.Context) ([]int, error)
	// DistinctCourts returns the non-empty court names, deduplicated and
	// sorted ascending.
	DistinctCourts(ctx context.Context) ([]string, error)
}

// ArticleStore is the persistence surface for articles. Deletion is
// immediate and irreversible.
type ArticleStore interface {
	List(ctx context.Context, limit int) ([]domain.Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Article, error)
	Create(ctx context.Context, a domain.Article) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, a domain.Article) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Type string

const (
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StoreError string

const (
	ErrUnsupportedStore StoreError = "unsupported storage type: %s"
)

func (e StoreError) Error() string {
	return string(e)
}

package factory

import (
	"context"
	"fmt"

	"github.com/veslaw/casefolio/internal/storage"
	"github.com/veslaw/casefolio/internal/storage/in_mem"
	"github.com/veslaw/casefolio/internal/storage/pg"
)

// Stores bundles both document stores so callers wire storage once.
type Stores struct {
	Cases    storage.CaseStore
	Articles storage.ArticleStore

	pool *pg.ConnectionPool
}

// Pool exposes the underlying connection pool for health checks; nil when
// the backend is in-memory.
func (s *Stores) Pool() *pg.ConnectionPool {
	return s.pool
}

func (s *Stores) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// NewStores creates both stores against the configured backend.
func NewStores(ctx context.Context, cfg StorageConfig) (*Stores, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration for storage type %s", cfg.Type)
		}

		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		return &Stores{
			Cases:    pg.NewCaseStore(pool),
			Articles: pg.NewArticleStore(pool),
			pool:     pool,
		}, nil

	case storage.InMem:
		return &Stores{
			Cases:    in_mem.NewCaseStore(),
			Articles: in_mem.NewArticleStore(),
		}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStore), cfg.Type)
	}
}

package factory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/safe-calc/internal/storage"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage/es"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage/pg"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage/sqlite"
	"github.com/DjordjeVuckovic/safe-calc/pkg/server"
)

// NewStore opens the configured history backend, applying schema migrations
// where the backend has them, and returns a matching health checker.
func NewStore(ctx context.Context, cfg *StorageConfig) (storage.Store, server.HealthChecker, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		if err := pool.Migrate(); err != nil {
			pool.Close()
			return nil, nil, err
		}
		slog.Info("Using PostgreSQL history store")
		return pg.NewStore(pool), pg.NewHealthChecker(pool), nil

	case storage.SQLite:
		if cfg.SQLite == nil {
			return nil, nil, fmt.Errorf("missing SQLite configuration")
		}
		s, err := sqlite.Open(ctx, *cfg.SQLite)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("Using SQLite history store", "path", cfg.SQLite.Path)
		return s, s, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		s, err := es.NewStore(ctx, *cfg.Es)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("Using Elasticsearch history store", "index", cfg.Es.IndexName)
		return s, s, nil

	case storage.InMem:
		slog.Info("Using in-memory history store")
		return in_mem.NewInMemStore(), server.NewOkHealthChecker(), nil

	default:
		return nil, nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}

package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/safe-calc/internal/domain"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage/es"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage/pg"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage/sqlite"
	pkgtesting "github.com/DjordjeVuckovic/safe-calc/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    storage.Type
		wantErr bool
		check   func(t *testing.T, cfg *StorageConfig)
	}{
		{
			name: "defaults to in memory",
			env:  map[string]string{},
			want: storage.InMem,
		},
		{
			name:    "unknown type",
			env:     map[string]string{"STORAGE_TYPE": "redis"},
			wantErr: true,
		},
		{
			name:    "pg requires connection string",
			env:     map[string]string{"STORAGE_TYPE": "pg"},
			wantErr: true,
		},
		{
			name: "pg",
			env:  map[string]string{"STORAGE_TYPE": "pg", "PG_CONNECTION_STRING": "postgres://localhost/calc"},
			want: storage.PG,
			check: func(t *testing.T, cfg *StorageConfig) {
				require.NotNil(t, cfg.Pg)
				assert.Equal(t, "postgres://localhost/calc", cfg.Pg.ConnStr)
			},
		},
		{
			name: "sqlite default path",
			env:  map[string]string{"STORAGE_TYPE": "sqlite"},
			want: storage.SQLite,
			check: func(t *testing.T, cfg *StorageConfig) {
				require.NotNil(t, cfg.SQLite)
				assert.Equal(t, defaultSQLitePath, cfg.SQLite.Path)
			},
		},
		{
			name:    "es requires addresses",
			env:     map[string]string{"STORAGE_TYPE": "es", "ES_ADDRESSES": " , "},
			wantErr: true,
		},
		{
			name: "es",
			env:  map[string]string{"STORAGE_TYPE": "es", "ES_ADDRESSES": "http://a:9200, http://b:9200"},
			want: storage.ES,
			check: func(t *testing.T, cfg *StorageConfig) {
				require.NotNil(t, cfg.Es)
				assert.Equal(t, []string{"http://a:9200", "http://b:9200"}, cfg.Es.Addresses)
				assert.Equal(t, es.DefaultIndexName, cfg.Es.IndexName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"STORAGE_TYPE", "PG_CONNECTION_STRING", "SQLITE_PATH", "ES_ADDRESSES", "ES_INDEX_NAME"} {
				t.Setenv(k, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadEnv()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Type)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestNewStore(t *testing.T) {
	ctx := context.Background()

	t.Run("in memory", func(t *testing.T) {
		s, hc, err := NewStore(ctx, &StorageConfig{Type: storage.InMem})
		require.NoError(t, err)
		assert.True(t, hc.Healthy(ctx))
		require.NoError(t, s.Save(ctx, domain.NewCalculation("1+1", 2, "")))
	})

	t.Run("sqlite file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "history.db")
		s, hc, err := NewStore(ctx, &StorageConfig{Type: storage.SQLite, SQLite: &sqlite.Config{Path: path}})
		require.NoError(t, err)
		defer s.Close()

		assert.True(t, hc.Healthy(ctx))
		require.NoError(t, s.Save(ctx, domain.NewCalculation("2*2", 4, "")))

		page, err := s.List(ctx, storage.HistoryQuery{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
	})

	t.Run("postgres migrates on open", func(t *testing.T) {
		container := pkgtesting.NewPGContainerWithCleanup(ctx, t)

		s, hc, err := NewStore(ctx, &StorageConfig{Type: storage.PG, Pg: &pg.PoolConfig{ConnStr: container.ConnString}})
		require.NoError(t, err)
		defer s.Close()

		assert.True(t, hc.Healthy(ctx))
		require.NoError(t, s.Save(ctx, domain.NewCalculation("3-1", 2, "carol")))

		page, err := s.List(ctx, storage.HistoryQuery{UserID: "carol"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, _, err := NewStore(ctx, &StorageConfig{Type: "redis"})
		assert.Error(t, err)
	})

	t.Run("missing backend config", func(t *testing.T) {
		_, _, err := NewStore(ctx, &StorageConfig{Type: storage.PG})
		assert.Error(t, err)
	})
}

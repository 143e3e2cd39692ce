package testing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const PGImage = "postgres:17.5"

type PGContainer struct {
	Container  testcontainers.Container
	ConnString string
}

// PGConfig holds database credentials. Empty fields fall back to the
// calc_test defaults.
type PGConfig struct {
	Database string
	Username string
	Password string
}

func (c PGConfig) withDefaults() PGConfig {
	if c.Database == "" {
		c.Database = "calc_test_db"
	}
	if c.Username == "" {
		c.Username = "test"
	}
	if c.Password == "" {
		c.Password = "test"
	}
	return c
}

// NewPGContainer starts an empty Postgres; callers apply the schema with goose.
func NewPGContainer(ctx context.Context, cfg PGConfig) (*PGContainer, error) {
	cfg = cfg.withDefaults()

	c, err := postgres.Run(ctx, PGImage,
		postgres.WithDatabase(cfg.Database),
		postgres.WithUsername(cfg.Username),
		postgres.WithPassword(cfg.Password),
		testcontainers.WithWaitStrategy(
			// postgres logs readiness twice: once for the init run, once for the real server
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	connStr, err := c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = testcontainers.TerminateContainer(c)
		return nil, fmt.Errorf("postgres connection string: %w", err)
	}

	return &PGContainer{Container: c, ConnString: connStr}, nil
}

// Terminate stops and removes the container.
func (c *PGContainer) Terminate() error {
	return testcontainers.TerminateContainer(c.Container)
}

// NewPGContainerWithCleanup starts a container terminated at the end of the
// test. It skips the calling test in -short mode.
func NewPGContainerWithCleanup(ctx context.Context, tb testing.TB) *PGContainer {
	tb.Helper()

	if testing.Short() {
		tb.Skip("skipping postgres container in short mode")
	}

	c, err := NewPGContainer(ctx, PGConfig{})
	if err != nil {
		tb.Fatalf("postgres container: %v", err)
	}
	tb.Cleanup(func() {
		if err := c.Terminate(); err != nil {
			tb.Logf("terminate postgres container: %v", err)
		}
	})

	return c
}

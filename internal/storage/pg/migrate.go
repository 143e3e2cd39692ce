package pg

import (
	"fmt"

	"github.com/DjordjeVuckovic/safe-calc/internal/storage/migrations"
	"github.com/jackc/pgx/v5/stdlib"
)

// Migrate applies the history schema through a database/sql view of the pool.
func (p *ConnectionPool) Migrate() error {
	db := stdlib.OpenDBFromPool(p.conn)
	defer db.Close()

	if err := migrations.Up(db, migrations.Postgres); err != nil {
		return fmt.Errorf("failed to migrate postgres: %w", err)
	}
	return nil
}

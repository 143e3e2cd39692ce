// Package sqlite keeps calculation history in a SQLite database using the
// pure-Go modernc driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/safe-calc/internal/domain"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage/migrations"
	"github.com/DjordjeVuckovic/safe-calc/pkg/pagination"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Fixed width so that text ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

type Config struct {
	Path string
}

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at cfg.Path and migrates it.
// Use ":memory:" for a private in-memory database.
func Open(ctx context.Context, cfg Config) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// one writer at a time; this also keeps ":memory:" on a single database
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if err := migrations.Up(db, migrations.SQLite); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// NewStore wraps an already migrated database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Save(ctx context.Context, calc domain.Calculation) error {
	if calc.ID == uuid.Nil {
		calc.ID = uuid.New()
	}

	var userID sql.NullString
	if calc.UserID != nil {
		userID = sql.NullString{String: *calc.UserID, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO calculations (id, expression, result, calculated_at, user_id, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		calc.ID.String(),
		calc.Expression,
		calc.Result,
		formatTime(calc.Timestamp),
		userID,
		formatTime(calc.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert calculation: %w", err)
	}

	return nil
}

func (s *Store) List(ctx context.Context, q storage.HistoryQuery) (*storage.HistoryPage, error) {
	q.Normalize()

	where, args := buildWhere(q)

	var total int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM calculations "+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count calculations: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, expression, result, calculated_at, user_id, created_at FROM calculations "+where+
			" ORDER BY calculated_at DESC, id DESC LIMIT ? OFFSET ?",
		append(args, q.Limit, q.Offset)...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculations: %w", err)
	}
	defer rows.Close()

	var items []domain.Calculation
	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	slog.Debug("Listed sqlite calculations", "total", total, "returned", len(items), "offset", q.Offset)

	return pagination.NewOffsetResult(items, total, q.Limit, q.Offset), nil
}

func (s *Store) Healthy(ctx context.Context) bool {
	return s.db.PingContext(ctx) == nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func buildWhere(q storage.HistoryQuery) (string, []any) {
	var conds []string
	var args []any

	if q.Since != nil {
		conds = append(conds, "calculated_at > ?")
		args = append(args, formatTime(*q.Since))
	}
	if q.UserID != "" {
		conds = append(conds, "user_id = ?")
		args = append(args, q.UserID)
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func scanCalculation(rows *sql.Rows) (domain.Calculation, error) {
	var (
		c                 domain.Calculation
		id, calcAt, crtAt string
		userID            sql.NullString
	)

	if err := rows.Scan(&id, &c.Expression, &c.Result, &calcAt, &userID, &crtAt); err != nil {
		return c, fmt.Errorf("failed to scan calculation: %w", err)
	}

	var err error
	if c.ID, err = uuid.Parse(id); err != nil {
		return c, fmt.Errorf("invalid calculation id %q: %w", id, err)
	}
	if c.Timestamp, err = time.Parse(timeLayout, calcAt); err != nil {
		return c, fmt.Errorf("invalid calculated_at %q: %w", calcAt, err)
	}
	if c.CreatedAt, err = time.Parse(timeLayout, crtAt); err != nil {
		return c, fmt.Errorf("invalid created_at %q: %w", crtAt, err)
	}
	if userID.Valid {
		c.UserID = &userID.String
	}

	return c, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

var _ storage.Store = (*Store)(nil)

package pg

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DjordjeVuckovic/safe-calc/internal/domain"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage"
	"github.com/DjordjeVuckovic/safe-calc/pkg/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Store struct {
	pool *ConnectionPool
}

func NewStore(pool *ConnectionPool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Save(ctx context.Context, calc domain.Calculation) error {
	if calc.ID == uuid.Nil {
		calc.ID = uuid.New()
	}

	ctx, cancel := s.pool.newQueryCtx(ctx)
	defer cancel()

	cmd := `
		INSERT INTO calculations (id, expression, result, calculated_at, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.pool.conn.Exec(ctx, cmd,
		calc.ID,
		calc.Expression,
		calc.Result,
		calc.Timestamp,
		calc.UserID,
		calc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert calculation: %w", err)
	}

	return nil
}

func (s *Store) List(ctx context.Context, q storage.HistoryQuery) (*storage.HistoryPage, error) {
	q.Normalize()

	ctx, cancel := s.pool.newQueryCtx(ctx)
	defer cancel()

	where, args := buildWhere(q)

	var total int64
	countSQL := "SELECT COUNT(*) FROM calculations " + where
	if err := s.pool.conn.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count calculations: %w", err)
	}

	dataSQL := fmt.Sprintf(`
		SELECT id, expression, result, calculated_at, user_id, created_at
		FROM calculations %s
		ORDER BY calculated_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	rows, err := s.pool.conn.Query(ctx, dataSQL, append(args, q.Limit, q.Offset)...)
	if err != nil {
		return nil, fmt.Errorf("failed to query calculations: %w", err)
	}

	items, err := pgx.CollectRows(rows, scanCalculation)
	if err != nil {
		return nil, fmt.Errorf("failed to scan calculations: %w", err)
	}

	slog.Debug("Listed pg calculations", "total", total, "returned", len(items), "offset", q.Offset)

	return pagination.NewOffsetResult(items, total, q.Limit, q.Offset), nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func buildWhere(q storage.HistoryQuery) (string, []any) {
	var conds []string
	var args []any

	if q.Since != nil {
		args = append(args, *q.Since)
		conds = append(conds, fmt.Sprintf("calculated_at > $%d", len(args)))
	}
	if q.UserID != "" {
		args = append(args, q.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

func scanCalculation(row pgx.CollectableRow) (domain.Calculation, error) {
	var c domain.Calculation
	err := row.Scan(&c.ID, &c.Expression, &c.Result, &c.Timestamp, &c.UserID, &c.CreatedAt)
	if err != nil {
		return domain.Calculation{}, err
	}

	c.Timestamp = c.Timestamp.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
	return c, nil
}

var _ storage.Store = (*Store)(nil)

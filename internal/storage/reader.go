package storage

import (
	"context"
	"time"

	"github.com/DjordjeVuckovic/safe-calc/internal/domain"
	"github.com/DjordjeVuckovic/safe-calc/pkg/pagination"
)

// HistoryQuery filters and pages stored calculations.
// Since is exclusive; an empty UserID matches every user.
type HistoryQuery struct {
	Since  *time.Time
	UserID string
	pagination.OffsetRequest
}

// HistoryPage holds one page of calculations, newest first, with the total
// number of matches across all pages.
type HistoryPage = pagination.OffsetResult[domain.Calculation]

type Reader interface {
	// List returns calculations matching q ordered by timestamp descending.
	// q is normalized before use.
	List(ctx context.Context, q HistoryQuery) (*HistoryPage, error)
}

package dto

import (
	"time"

	"github.com/DjordjeVuckovic/safe-calc/internal/domain"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage"
	"github.com/google/uuid"
)

type CalculateRequest struct {
	Expression string `json:"expression" validate:"required" example:"2 + 3 * (4 - 1)"`
	UserID     string `json:"user_id,omitempty" validate:"omitempty,max=128" example:"user-42"`
}

type CalculateResponse struct {
	Result     float64   `json:"result" example:"11"`
	Expression string    `json:"expression" example:"2 + 3 * (4 - 1)"`
	Timestamp  time.Time `json:"timestamp" example:"2026-01-02T15:04:05Z"`
}

type CalculationItem struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Result     float64   `json:"result"`
	Timestamp  time.Time `json:"timestamp"`
	UserID     string    `json:"user_id,omitempty"`
}

type HistoryResponse struct {
	Calculations []CalculationItem `json:"calculations"`
	Total        int64             `json:"total"`
	HasMore      bool              `json:"hasMore"`
}

func NewCalculateResponse(c domain.Calculation) CalculateResponse {
	return CalculateResponse{
		Result:     c.Result,
		Expression: c.Expression,
		Timestamp:  c.Timestamp,
	}
}

func NewHistoryResponse(page *storage.HistoryPage) HistoryResponse {
	items := make([]CalculationItem, 0, len(page.Items))
	for _, c := range page.Items {
		items = append(items, CalculationItem{
			ID:         c.ID,
			Expression: c.Expression,
			Result:     c.Result,
			Timestamp:  c.Timestamp,
			UserID:     c.Owner(),
		})
	}

	return HistoryResponse{
		Calculations: items,
		Total:        page.Total,
		HasMore:      page.HasMore,
	}
}

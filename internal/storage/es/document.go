package es

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/safe-calc/internal/domain"
	"github.com/google/uuid"
)

// Document is the indexed shape of a calculation.
type Document struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     float64   `json:"result"`
	Timestamp  time.Time `json:"timestamp"`
	UserID     *string   `json:"user_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toDocument(c domain.Calculation) Document {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return Document{
		ID:         c.ID.String(),
		Expression: c.Expression,
		Result:     c.Result,
		Timestamp:  c.Timestamp.UTC(),
		UserID:     c.UserID,
		CreatedAt:  c.CreatedAt.UTC(),
	}
}

func (d Document) toDomain() (domain.Calculation, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Calculation{}, fmt.Errorf("invalid document id %q: %w", d.ID, err)
	}
	return domain.Calculation{
		ID:         id,
		Expression: d.Expression,
		Result:     d.Result,
		Timestamp:  d.Timestamp,
		UserID:     d.UserID,
		CreatedAt:  d.CreatedAt,
	}, nil
}

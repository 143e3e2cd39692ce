package domain

import (
	"time"

	"github.com/google/uuid"
)

// Calculation is one successfully evaluated expression kept in history.
type Calculation struct {
	ID         uuid.UUID `json:"id"`
	Expression string    `json:"expression"`
	Result     float64   `json:"result"`
	Timestamp  time.Time `json:"timestamp"`
	UserID     *string   `json:"user_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewCalculation stamps a new calculation with a fresh ID and the current UTC time.
// An empty userID is stored as absent.
func NewCalculation(expression string, result float64, userID string) Calculation {
	now := time.Now().UTC()

	c := Calculation{
		ID:         uuid.New(),
		Expression: expression,
		Result:     result,
		Timestamp:  now,
		CreatedAt:  now,
	}
	if userID != "" {
		c.UserID = &userID
	}

	return c
}

// Owner returns the user ID or "" for anonymous calculations.
func (c Calculation) Owner() string {
	if c.UserID == nil {
		return ""
	}
	return *c.UserID
}

package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/DjordjeVuckovic/safe-calc/internal/domain"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage"
	"github.com/DjordjeVuckovic/safe-calc/pkg/pagination"
	"github.com/google/uuid"
)

type InMemStore struct {
	storageLock sync.RWMutex
	storage     []domain.Calculation
}

func NewInMemStore() *InMemStore {
	return &InMemStore{}
}

func (s *InMemStore) Save(ctx context.Context, calc domain.Calculation) error {
	if calc.ID == uuid.Nil {
		calc.ID = uuid.New()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	s.storage = append(s.storage, calc)
	slog.Debug("Saved calculation to in-memory storage", "id", calc.ID, "expression", calc.Expression)
	return nil
}

func (s *InMemStore) List(ctx context.Context, q storage.HistoryQuery) (*storage.HistoryPage, error) {
	q.Normalize()

	s.storageLock.RLock()
	matches := make([]domain.Calculation, 0, len(s.storage))
	for _, c := range s.storage {
		if q.Since != nil && !c.Timestamp.After(*q.Since) {
			continue
		}
		if q.UserID != "" && c.Owner() != q.UserID {
			continue
		}
		matches = append(matches, c)
	}
	s.storageLock.RUnlock()

	// newest first, ties by id descending like the SQL stores
	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.After(b.Timestamp)
		}
		return a.ID.String() > b.ID.String()
	})

	total := int64(len(matches))
	start := min(q.Offset, len(matches))
	end := min(start+q.Limit, len(matches))

	return pagination.NewOffsetResult(matches[start:end], total, q.Limit, q.Offset), nil
}

func (s *InMemStore) Close() error {
	return nil
}

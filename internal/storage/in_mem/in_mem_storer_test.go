package in_mem

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/safe-calc/internal/domain"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage"
	"github.com/DjordjeVuckovic/safe-calc/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *InMemStore, base time.Time) {
	t.Helper()
	ctx := context.Background()

	for i, user := range []string{"alice", "bob", "", "alice", "bob"} {
		c := domain.NewCalculation("1+1", float64(i), user)
		c.Timestamp = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, s.Save(ctx, c))
	}
}

func TestInMemStore_List(t *testing.T) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewInMemStore()
	seed(t, s, base)

	t.Run("newest first with total", func(t *testing.T) {
		page, err := s.List(context.Background(), storage.HistoryQuery{})
		require.NoError(t, err)

		assert.Equal(t, int64(5), page.Total)
		require.Len(t, page.Items, 5)
		assert.Equal(t, 4.0, page.Items[0].Result)
		assert.Equal(t, 0.0, page.Items[4].Result)
		assert.False(t, page.HasMore)
	})

	t.Run("filters by user", func(t *testing.T) {
		page, err := s.List(context.Background(), storage.HistoryQuery{UserID: "alice"})
		require.NoError(t, err)

		assert.Equal(t, int64(2), page.Total)
		for _, c := range page.Items {
			assert.Equal(t, "alice", c.Owner())
		}
	})

	t.Run("since is exclusive", func(t *testing.T) {
		since := base.Add(2 * time.Minute)
		page, err := s.List(context.Background(), storage.HistoryQuery{Since: &since})
		require.NoError(t, err)

		assert.Equal(t, int64(2), page.Total)
		assert.Equal(t, []float64{4, 3}, []float64{page.Items[0].Result, page.Items[1].Result})
	})

	t.Run("pages with offset", func(t *testing.T) {
		page, err := s.List(context.Background(), storage.HistoryQuery{
			OffsetRequest: pagination.OffsetRequest{Limit: 2, Offset: 2},
		})
		require.NoError(t, err)

		assert.Equal(t, int64(5), page.Total)
		require.Len(t, page.Items, 2)
		assert.Equal(t, 2.0, page.Items[0].Result)
		assert.True(t, page.HasMore)
	})

	t.Run("offset past the end", func(t *testing.T) {
		page, err := s.List(context.Background(), storage.HistoryQuery{
			OffsetRequest: pagination.OffsetRequest{Limit: 10, Offset: 50},
		})
		require.NoError(t, err)

		assert.Empty(t, page.Items)
		assert.Equal(t, int64(5), page.Total)
	})
}

func TestInMemStore_ListBreaksTimestampTiesByID(t *testing.T) {
	ts := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	low := domain.Calculation{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Expression: "1", Result: 1, Timestamp: ts}
	high := domain.Calculation{ID: uuid.MustParse("ffffffff-0000-0000-0000-000000000000"), Expression: "2", Result: 2, Timestamp: ts}

	s := NewInMemStore()
	require.NoError(t, s.Save(context.Background(), low))
	require.NoError(t, s.Save(context.Background(), high))

	page, err := s.List(context.Background(), storage.HistoryQuery{})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, high.ID, page.Items[0].ID)
	assert.Equal(t, low.ID, page.Items[1].ID)
}

func TestInMemStore_SaveAssignsID(t *testing.T) {
	s := NewInMemStore()
	require.NoError(t, s.Save(context.Background(), domain.Calculation{Expression: "2*2", Result: 4}))

	page, err := s.List(context.Background(), storage.HistoryQuery{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", page.Items[0].ID.String())
}

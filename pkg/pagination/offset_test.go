package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetRequest_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   OffsetRequest
		want OffsetRequest
	}{
		{name: "defaults", in: OffsetRequest{}, want: OffsetRequest{Limit: 10, Offset: 0}},
		{name: "keeps valid values", in: OffsetRequest{Limit: 25, Offset: 50}, want: OffsetRequest{Limit: 25, Offset: 50}},
		{name: "caps limit", in: OffsetRequest{Limit: 1000}, want: OffsetRequest{Limit: 100}},
		{name: "negative offset", in: OffsetRequest{Limit: 5, Offset: -3}, want: OffsetRequest{Limit: 5, Offset: 0}},
		{name: "negative limit", in: OffsetRequest{Limit: -1}, want: OffsetRequest{Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.in
			req.Normalize()
			assert.Equal(t, tt.want, req)
		})
	}
}

func TestNewOffsetResult(t *testing.T) {
	t.Run("has more", func(t *testing.T) {
		r := NewOffsetResult([]int{1, 2}, 5, 2, 0)
		assert.True(t, r.HasMore)
		assert.Equal(t, int64(5), r.Total)
	})

	t.Run("last page", func(t *testing.T) {
		r := NewOffsetResult([]int{5}, 5, 2, 4)
		assert.False(t, r.HasMore)
	})

	t.Run("exact boundary", func(t *testing.T) {
		r := NewOffsetResult([]int{3, 4}, 4, 2, 2)
		assert.False(t, r.HasMore)
	})

	t.Run("nil items become empty", func(t *testing.T) {
		r := NewOffsetResult[string](nil, 0, 10, 0)
		assert.NotNil(t, r.Items)
		assert.Empty(t, r.Items)
	})
}

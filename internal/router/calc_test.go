package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/safe-calc/internal/apperr"
	"github.com/DjordjeVuckovic/safe-calc/internal/calc"
	"github.com/DjordjeVuckovic/safe-calc/internal/domain"
	"github.com/DjordjeVuckovic/safe-calc/internal/dto"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/safe-calc/pkg/validation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEcho(store storage.Store, opts ...CalcRouterOption) *echo.Echo {
	e := echo.New()
	e.Validator = validation.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	NewCalcRouter(e, store, opts...).Bind()
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apperr.Response {
	t.Helper()
	var body apperr.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCalculate_Success(t *testing.T) {
	store := in_mem.NewInMemStore()
	e := newTestEcho(store)

	rec := doJSON(e, http.MethodPost, "/api/calculate", `{"expression":"  2 + 3 * (4 - 1) ","user_id":"alice"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CalculateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 11.0, resp.Result)
	assert.Equal(t, "2 + 3 * (4 - 1)", resp.Expression)
	assert.WithinDuration(t, time.Now(), resp.Timestamp, time.Minute)

	page, err := store.List(context.Background(), storage.HistoryQuery{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "alice", page.Items[0].Owner())
	assert.Equal(t, "2 + 3 * (4 - 1)", page.Items[0].Expression)
}

func TestCalculate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{name: "malformed json", body: `{"expression":`, wantCode: "INVALID_JSON"},
		{name: "missing expression", body: `{}`, wantCode: "INVALID_INPUT"},
		{name: "empty expression", body: `{"expression":""}`, wantCode: "INVALID_INPUT"},
		{name: "non string expression", body: `{"expression":42}`, wantCode: "INVALID_INPUT"},
		{name: "blank expression", body: `{"expression":"   "}`, wantCode: "INVALID_EXPRESSION"},
		{name: "illegal character", body: `{"expression":"2+a"}`, wantCode: "INVALID_EXPRESSION"},
		{name: "unbalanced", body: `{"expression":"(1+2"}`, wantCode: "INVALID_EXPRESSION"},
		{name: "banned sequence", body: `{"expression":"2**3"}`, wantCode: "INVALID_EXPRESSION"},
		{name: "literal division by zero", body: `{"expression":"5/0"}`, wantCode: "DIVISION_BY_ZERO"},
		{name: "computed division by zero", body: `{"expression":"5/(2-2)"}`, wantCode: "DIVISION_BY_ZERO"},
		{name: "trailing tokens", body: `{"expression":"3 4"}`, wantCode: "EVALUATION_ERROR"},
		{name: "dangling operator", body: `{"expression":"1+"}`, wantCode: "EVALUATION_ERROR"},
		{name: "empty parentheses", body: `{"expression":"()"}`, wantCode: "EVALUATION_ERROR"},
		{name: "too many decimal points", body: `{"expression":"1.2.3"}`, wantCode: "EVALUATION_ERROR"},
		{name: "overflow", body: fmt.Sprintf(`{"expression":"%s*%s"}`, huge(), huge()), wantCode: "INVALID_RESULT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := in_mem.NewInMemStore()
			e := newTestEcho(store)

			rec := doJSON(e, http.MethodPost, "/api/calculate", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)

			page, err := store.List(context.Background(), storage.HistoryQuery{})
			require.NoError(t, err)
			assert.Zero(t, page.Total, "rejected expressions are not stored")
		})
	}
}

func TestCalculate_MaxLength(t *testing.T) {
	e := newTestEcho(in_mem.NewInMemStore(), WithMaxExpressionLength(5))

	rec := doJSON(e, http.MethodPost, "/api/calculate", `{"expression":"1+2+3"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/calculate", `{"expression":"1+2+34"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Code)
}

func TestCalculate_CustomEngine(t *testing.T) {
	e := newTestEcho(in_mem.NewInMemStore(), WithEngine(calc.New(calc.WithMaxDepth(2))))

	rec := doJSON(e, http.MethodPost, "/api/calculate", `{"expression":"(((1)))"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "EVALUATION_ERROR", decodeError(t, rec).Code)
}

type failingStore struct {
	*in_mem.InMemStore
}

func (failingStore) Save(context.Context, domain.Calculation) error {
	return errors.New("disk full")
}

func (failingStore) List(context.Context, storage.HistoryQuery) (*storage.HistoryPage, error) {
	return nil, errors.New("connection reset")
}

func TestStoreFailures(t *testing.T) {
	e := newTestEcho(failingStore{in_mem.NewInMemStore()})

	rec := doJSON(e, http.MethodPost, "/api/calculate", `{"expression":"1+1"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decodeError(t, rec).Code)

	rec = doJSON(e, http.MethodGet, "/api/history", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func seedHistory(t *testing.T, store *in_mem.InMemStore, base time.Time, users ...string) {
	t.Helper()
	for i, user := range users {
		c := domain.NewCalculation(fmt.Sprintf("%d+0", i), float64(i), user)
		c.Timestamp = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.Save(context.Background(), c))
	}
}

func TestHistory(t *testing.T) {
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	store := in_mem.NewInMemStore()
	users := make([]string, 0, 15)
	for i := 0; i < 15; i++ {
		if i%3 == 0 {
			users = append(users, "alice")
		} else {
			users = append(users, "")
		}
	}
	seedHistory(t, store, base, users...)
	e := newTestEcho(store)

	tests := []struct {
		name      string
		query     string
		wantLen   int
		wantTotal int64
		wantMore  bool
		wantFirst string
	}{
		{name: "defaults", query: "", wantLen: 10, wantTotal: 15, wantMore: true, wantFirst: "14+0"},
		{name: "invalid limit falls back", query: "?limit=abc", wantLen: 10, wantTotal: 15, wantMore: true},
		{name: "limit capped", query: "?limit=500", wantLen: 15, wantTotal: 15},
		{name: "negative offset", query: "?offset=-4&limit=5", wantLen: 5, wantTotal: 15, wantMore: true, wantFirst: "14+0"},
		{name: "second page", query: "?limit=10&offset=10", wantLen: 5, wantTotal: 15, wantFirst: "4+0"},
		{name: "user filter", query: "?user_id=alice", wantLen: 5, wantTotal: 5, wantFirst: "12+0"},
		{name: "since", query: "?since=2026-02-01T09:12:00Z", wantLen: 2, wantTotal: 2, wantFirst: "14+0"},
		{name: "since with offset zone", query: "?since=2026-02-01T10:12:00%2B01:00", wantLen: 2, wantTotal: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(e, http.MethodGet, "/api/history"+tt.query, "")
			require.Equal(t, http.StatusOK, rec.Code)

			var resp dto.HistoryResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Len(t, resp.Calculations, tt.wantLen)
			assert.Equal(t, tt.wantTotal, resp.Total)
			assert.Equal(t, tt.wantMore, resp.HasMore)
			if tt.wantFirst != "" {
				assert.Equal(t, tt.wantFirst, resp.Calculations[0].Expression)
			}
		})
	}
}

func TestHistory_InvalidSince(t *testing.T) {
	e := newTestEcho(in_mem.NewInMemStore())

	rec := doJSON(e, http.MethodGet, "/api/history?since=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_SINCE_FORMAT", decodeError(t, rec).Code)
}

func TestHistory_EmptyIsArray(t *testing.T) {
	e := newTestEcho(in_mem.NewInMemStore())

	rec := doJSON(e, http.MethodGet, "/api/history", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"calculations":[],"total":0,"hasMore":false}`, rec.Body.String())
}

func huge() string {
	return "1" + strings.Repeat("0", 200)
}

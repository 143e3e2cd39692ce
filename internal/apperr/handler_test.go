package apperr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/safe-calc/internal/apperr"
	"github.com/DjordjeVuckovic/safe-calc/internal/calc"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalErrorHandler(t *testing.T) {
	_, divErr := calc.Evaluate("1/(2-2)")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "calc error", err: divErr, wantStatus: http.StatusBadRequest, wantCode: "DIVISION_BY_ZERO"},
		{name: "wrapped calc error", err: fmt.Errorf("calculate: %w", divErr), wantStatus: http.StatusBadRequest, wantCode: "DIVISION_BY_ZERO"},
		{name: "validation", err: apperr.NewValidation("bad"), wantStatus: http.StatusBadRequest, wantCode: "INVALID_INPUT"},
		{name: "validation with code", err: apperr.NewValidationCode("INVALID_JSON", "bad json"), wantStatus: http.StatusBadRequest, wantCode: "INVALID_JSON"},
		{name: "not found", err: echo.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	e := echo.New()
	handler := apperr.GlobalErrorHandler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			handler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body apperr.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestGlobalErrorHandler_SkipsCommitted(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	apperr.GlobalErrorHandler()(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

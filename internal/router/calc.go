package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/safe-calc/internal/apperr"
	"github.com/DjordjeVuckovic/safe-calc/internal/calc"
	"github.com/DjordjeVuckovic/safe-calc/internal/domain"
	"github.com/DjordjeVuckovic/safe-calc/internal/dto"
	"github.com/DjordjeVuckovic/safe-calc/internal/storage"
	"github.com/DjordjeVuckovic/safe-calc/pkg/pagination"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	DefaultMaxExpressionLength = 1000

	codeInvalidJSON   = "INVALID_JSON"
	codeInvalidSince  = "INVALID_SINCE_FORMAT"
	requestBodyLimit  = "64K"
	calculatePath     = "/calculate"
	historyPath       = "/history"
	routerGroupPrefix = "/api"
)

type CalcRouter struct {
	e         *echo.Echo
	engine    *calc.Engine
	store     storage.Store
	maxLength int
}

type CalcRouterOption func(*CalcRouter)

func WithEngine(engine *calc.Engine) CalcRouterOption {
	return func(r *CalcRouter) {
		r.engine = engine
	}
}

// WithMaxExpressionLength caps the trimmed expression length in characters.
func WithMaxExpressionLength(n int) CalcRouterOption {
	return func(r *CalcRouter) {
		if n > 0 {
			r.maxLength = n
		}
	}
}

func NewCalcRouter(e *echo.Echo, store storage.Store, opts ...CalcRouterOption) *CalcRouter {
	r := &CalcRouter{
		e:         e,
		engine:    calc.New(),
		store:     store,
		maxLength: DefaultMaxExpressionLength,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *CalcRouter) Bind() {
	g := r.e.Group(routerGroupPrefix, middleware.BodyLimit(requestBodyLimit))
	g.POST(calculatePath, r.calculate)
	g.GET(historyPath, r.history)
}

// calculate godoc
// @Summary Evaluate an arithmetic expression
// @Description Evaluates + - * / with parentheses and unary signs, then stores the result in history.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body dto.CalculateRequest true "Expression to evaluate"
// @Success 200 {object} dto.CalculateResponse
// @Failure 400 {object} apperr.Response
// @Failure 500 {object} apperr.Response
// @Router /api/calculate [post]
func (r *CalcRouter) calculate(c echo.Context) error {
	var req dto.CalculateRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return apperr.NewValidation("Expression is required and must be a string")
	}

	expression := strings.TrimSpace(req.Expression)
	if n := utf8.RuneCountInString(expression); n > r.maxLength {
		return apperr.NewValidation(fmt.Sprintf("expression is %d characters long, the limit is %d", n, r.maxLength))
	}

	result, err := r.engine.Evaluate(expression)
	if err != nil {
		slog.Debug("Expression rejected", "expression", expression, "kind", calc.KindOf(err), "error", err)
		return err
	}

	calculation := domain.NewCalculation(expression, result, req.UserID)
	if err := r.store.Save(c.Request().Context(), calculation); err != nil {
		return fmt.Errorf("failed to save calculation: %w", err)
	}

	return c.JSON(http.StatusOK, dto.NewCalculateResponse(calculation))
}

// history godoc
// @Summary List past calculations
// @Description Most recent first, with offset pagination and optional since/user filters.
// @Tags calculator
// @Produce json
// @Param limit query int false "Page size (default 10, max 100)"
// @Param offset query int false "Number of items to skip"
// @Param since query string false "Only calculations strictly after this RFC3339 time"
// @Param user_id query string false "Only calculations of this user"
// @Success 200 {object} dto.HistoryResponse
// @Failure 400 {object} apperr.Response
// @Failure 500 {object} apperr.Response
// @Router /api/history [get]
func (r *CalcRouter) history(c echo.Context) error {
	q := storage.HistoryQuery{
		UserID: c.QueryParam("user_id"),
		OffsetRequest: pagination.OffsetRequest{
			Limit:  intParam(c, "limit", pagination.PageDefaultSize),
			Offset: intParam(c, "offset", 0),
		},
	}
	q.Normalize()

	if raw := c.QueryParam("since"); raw != "" {
		since, err := parseSince(raw)
		if err != nil {
			return apperr.NewValidationCode(codeInvalidSince, "Invalid since parameter format. Use ISO 8601 format.")
		}
		q.Since = &since
	}

	page, err := r.store.List(c.Request().Context(), q)
	if err != nil {
		return fmt.Errorf("failed to list calculations: %w", err)
	}

	return c.JSON(http.StatusOK, dto.NewHistoryResponse(page))
}

// bindError separates a body that is not JSON (or not declared as JSON) from
// JSON carrying the wrong types.
func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return apperr.NewValidation("Expression is required and must be a string")
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == http.StatusRequestEntityTooLarge {
		return err
	}
	return apperr.NewValidationCode(codeInvalidJSON, "Invalid JSON in request body")
}

func intParam(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

var sinceLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

func parseSince(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range sinceLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

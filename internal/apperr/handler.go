package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/safe-calc/internal/calc"
	"github.com/labstack/echo/v4"
)

// Response is the body of every error reply.
type Response struct {
	Error string `json:"error" example:"division by zero"`
	Code  string `json:"code" example:"DIVISION_BY_ZERO"`
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ce *calc.Error
		if errors.As(err, &ce) {
			_ = c.JSON(http.StatusBadRequest, Response{Error: ce.Error(), Code: ce.Kind.Code()})
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			code := ve.Code
			if code == "" {
				code = CodeInvalidInput
			}
			_ = c.JSON(http.StatusBadRequest, Response{Error: ve.Message, Code: code})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, Response{Error: msg, Code: httpCode(he.Code)})
			return
		}

		slog.Error("Unhandled error", "error", err, "path", c.Path())
		_ = c.JSON(http.StatusInternalServerError, Response{Error: "internal server error", Code: "INTERNAL_ERROR"})
	}
}

func httpCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusBadRequest:
		return CodeInvalidInput
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case http.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

package handlers

import (
	stderrors "errors"
	"net/http"

	"credit-tracker/internal/errors"
	"credit-tracker/internal/services"
	"credit-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// Error responses go through SendError (client and business rule errors) or
// SendSystemError (anything that must not leak internals). Never return
// echo.NewHTTPError or write an error body with c.JSON directly.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendValidationError reports request validation failures field by field
func SendValidationError(c echo.Context, err error) error {
	errorResponse := errors.NewValidationErrorFromList(validation.Details(err), getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// sendServiceError maps account service errors onto the error catalogue
func sendServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrAccountNotFound):
		return SendError(c, errors.AccountNotFound)
	case stderrors.Is(err, services.ErrCannotMove):
		return SendError(c, errors.AccountCannotMove)
	case stderrors.Is(err, services.ErrNothingToMigrate):
		return SendError(c, errors.AccountMigrationEmpty)
	case stderrors.Is(err, services.ErrInvalidAccount):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}

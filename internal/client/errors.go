package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apierrors "credit-tracker/internal/errors"
)

var (
	// ErrRemoteUnavailable covers transport failures, timeouts, 5xx responses and an open breaker
	ErrRemoteUnavailable = errors.New("record store unavailable")
	ErrNotFound          = errors.New("account not found")
	ErrCannotMove        = errors.New("cannot move account in that direction")
	// ErrRejected is any other 4xx answer, typically a validation failure
	ErrRejected = errors.New("record store rejected the request")
)

// APIError is a non-2xx answer from the record store
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    []string
	TraceID    string
	kind       error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if len(e.Details) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(e.Details, "; "))
	}
	return fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.kind
}

func newAPIError(status int, envelope *apierrors.ErrorResponse) *APIError {
	e := &APIError{StatusCode: status}
	if envelope != nil {
		e.Code = envelope.Error.Code
		e.Message = envelope.Error.Message
		e.Details = envelope.Error.Details
		e.TraceID = envelope.Error.TraceID
	}

	switch {
	case status >= http.StatusInternalServerError, status == http.StatusTooManyRequests:
		e.kind = ErrRemoteUnavailable
	case status == http.StatusNotFound:
		e.kind = ErrNotFound
	case e.Code == string(apierrors.AccountCannotMove),
		strings.EqualFold(e.Message, apierrors.GetErrorMessage(apierrors.AccountCannotMove)):
		e.kind = ErrCannotMove
	default:
		e.kind = ErrRejected
	}
	return e
}

// IsUnavailable reports whether err means the store could not be reached
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrRemoteUnavailable)
}

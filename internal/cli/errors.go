package cli

import (
	"errors"
	"fmt"

	"credit-tracker/internal/client"
	"credit-tracker/internal/datasync"
	"credit-tracker/internal/validation"
)

// storeError turns a facade error into the message shown to the user
func storeError(action string, err error) error {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, datasync.ErrNotFound):
		return WrapExitError(ExitFailure, action, errors.New("account not found"))
	case errors.Is(err, datasync.ErrCannotMove):
		return WrapExitError(ExitFailure, action, errors.New("cannot move account in that direction"))
	case errors.Is(err, datasync.ErrRemoteUnavailable):
		return WrapExitError(ExitFailure, action, errors.New("record store is unavailable, try again later"))
	case errors.Is(err, datasync.ErrInvalidAmount):
		return WrapExitError(ExitUsage, action, datasync.ErrInvalidAmount)
	case errors.As(err, &apiErr):
		return WrapExitError(ExitFailure, action, apiErr)
	default:
		return WrapExitError(ExitFailure, action, err)
	}
}

// formError reports invalid form input field by field
func formError(err error) error {
	details := validation.Details(err)
	msg := "invalid input"
	for _, d := range details {
		msg += fmt.Sprintf("\n  %s", d)
	}
	return NewExitError(ExitUsage, msg)
}

package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var allCodes = []ErrorCode{
	ValidationGeneral,
	ValidationInvalidFormat,
	ValidationOutOfRange,
	AccountNotFound,
	AccountCannotMove,
	AccountInvalidDirection,
	AccountInvalidID,
	AccountMigrationEmpty,
	SystemInternalError,
	SystemDatabaseError,
	SystemServiceUnavailable,
	SystemUnexpectedError,
	SystemRateLimitExceeded,
}

func TestGetErrorMessage(t *testing.T) {
	tests := map[ErrorCode]string{
		ValidationGeneral:       "Validation failed",
		AccountNotFound:         "Account not found",
		AccountCannotMove:       "Cannot move account in that direction",
		AccountInvalidDirection: "Direction must be 'up' or 'down'",
		SystemInternalError:     "An unexpected error occurred. Please contact support with trace ID",
		"ACCOUNT_999":           "An error occurred",
		"":                      "An error occurred",
	}

	for code, want := range tests {
		assert.Equal(t, want, GetErrorMessage(code), "code %q", code)
	}
}

func TestErrorCodes_HaveMessages(t *testing.T) {
	for _, code := range allCodes {
		_, ok := errorMessages[code]
		assert.True(t, ok, "no default message for %s", code)
	}
	assert.Len(t, errorMessages, len(allCodes))
}

func TestErrorCodes_UniqueAndPrefixed(t *testing.T) {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes {
		assert.False(t, seen[code], "duplicate error code %s", code)
		seen[code] = true

		valid := strings.HasPrefix(string(code), "VALIDATION_") ||
			strings.HasPrefix(string(code), "ACCOUNT_") ||
			strings.HasPrefix(string(code), "SYSTEM_")
		assert.True(t, valid, "unexpected prefix for %s", code)
	}
}

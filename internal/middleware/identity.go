package middleware

import (
	"strings"

	"credit-tracker/internal/handlers"

	"github.com/labstack/echo/v4"
)

// UserIDHeader lets a trusted caller pick the account owner
const UserIDHeader = "X-User-ID"

// FixedIdentity attaches the account owner to every request. The tracker has no
// authentication: requests belong to defaultUserID unless X-User-ID names
// another owner.
func FixedIdentity(defaultUserID string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
			if userID == "" {
				userID = defaultUserID
			}
			c.Set(handlers.UserIDContextKey, userID)
			return next(c)
		}
	}
}

package handlers

import (
	"fmt"

	"credit-tracker/internal/models"

	"github.com/labstack/echo/v4"
)

// UserIDContextKey is where the identity middleware stores the account owner
const UserIDContextKey = "user_id"

// getUserID returns the owner set by the identity middleware, falling back to
// the single default user
func getUserID(c echo.Context) string {
	if userID, ok := c.Get(UserIDContextKey).(string); ok && userID != "" {
		return userID
	}
	return models.DefaultUserID
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

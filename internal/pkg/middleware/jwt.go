package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// UserIDFromContext returns the authenticated user id set by the JWT
// middleware, or an empty string when the request is unauthenticated.
func UserIDFromContext(c echo.Context) string {
	if v := c.Get("user_id"); v != nil {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/prasetya/kumpul/internal/pkg/logger"
	"github.com/prasetya/kumpul/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack trace
// and returns a 500 without leaking internals to the client.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					userID := "anonymous"
					if uid := c.Get("user_id"); uid != nil {
						userID = fmt.Sprintf("%v", uid)
					}

					zapLogger.Error("Panic recovered",
						logger.Any("panic_value", r),
						logger.String("panic_type", fmt.Sprintf("%T", r)),
						logger.String("stack_trace", string(debug.Stack())),
						logger.String("method", c.Request().Method),
						logger.String("path", c.Request().URL.Path),
						logger.String("client_ip", c.RealIP()),
						logger.String("user_id", userID),
						logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)))

					if !c.Response().Committed {
						_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
					}
				}
			}()

			return next(c)
		}
	}
}

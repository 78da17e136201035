package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// Recovery returns middleware that converts a handler panic into a logged
// 500 response instead of tearing down the server. The resulting HTTPError
// flows through the app error handler, so the client sees the same JSON
// error shape as any other failure.
func Recovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (returnErr error) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("recovered handler panic",
						slog.Any("panic", r),
						slog.String("method", c.Request().Method),
						slog.String("path", c.Request().URL.Path),
						slog.String("stack", string(debug.Stack())),
					)

					returnErr = echo.NewHTTPError(http.StatusInternalServerError)
				}
			}()

			return next(c)
		}
	}
}

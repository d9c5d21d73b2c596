package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/unistep/loyalty-backend/internal/pkg/logger"
	"github.com/unistep/loyalty-backend/internal/utils"
)

// PanicRecoveryMiddleware converts handler panics into 500 responses so a
// single bad request cannot take the process down
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Recovered from panic",
						logger.String("panic", fmt.Sprintf("%v", r)),
						logger.String("path", c.Request().URL.Path),
						logger.String("stack", string(debug.Stack())),
					)
					err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
				}
			}()
			return next(c)
		}
	}
}

package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/unistep/loyalty-backend/internal/pkg/models"
	"github.com/unistep/loyalty-backend/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey guards the ops listing endpoints. The expected key comes
// from the config struct handed in at wiring time, not from ambient
// process state.
func ValidateAPIKey(cfg models.APIKeyConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if cfg.OpsKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(cfg.OpsKey)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}

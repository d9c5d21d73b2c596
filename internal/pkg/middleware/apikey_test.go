package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unistep/loyalty-backend/internal/pkg/models"
)

func callWithAPIKey(t *testing.T, cfg models.APIKeyConfig, key string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/internal/users", nil)
	if key != "" {
		req.Header.Set(APIKeyHeader, key)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := ValidateAPIKey(cfg)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))
	return rec
}

func TestValidateAPIKey_Accepts(t *testing.T) {
	rec := callWithAPIKey(t, models.APIKeyConfig{OpsKey: "ops-secret"}, "ops-secret")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestValidateAPIKey_MissingHeader(t *testing.T) {
	rec := callWithAPIKey(t, models.APIKeyConfig{OpsKey: "ops-secret"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestValidateAPIKey_WrongKey(t *testing.T) {
	rec := callWithAPIKey(t, models.APIKeyConfig{OpsKey: "ops-secret"}, "guess")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestValidateAPIKey_UnconfiguredKeyRejectsEverything(t *testing.T) {
	rec := callWithAPIKey(t, models.APIKeyConfig{}, "anything")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/unistep/loyalty-backend/internal/pkg/database"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresHealthChecker checks PostgreSQL connection health
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

// NewPostgresHealthChecker creates a new PostgreSQL health checker
func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

// CheckHealth checks if PostgreSQL is healthy
func (p *PostgresHealthChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisHealthChecker checks Redis connection health
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// CheckHealth checks if Redis is healthy
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Client.Ping(ctx).Err()
}

type checkResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type healthResponse struct {
	Service string                 `json:"service"`
	Status  string                 `json:"status"`
	Checks  map[string]checkResult `json:"checks,omitempty"`
}

// RegisterHealthEndpoints registers liveness and readiness endpoints.
// Liveness only reports the process is up; readiness pings dependencies.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, checkers map[string]HealthChecker) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthResponse{
			Service: serviceName,
			Status:  "ok",
		})
	})

	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		resp := healthResponse{
			Service: serviceName,
			Status:  "ok",
			Checks:  make(map[string]checkResult, len(checkers)),
		}
		statusCode := http.StatusOK

		for name, checker := range checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				resp.Checks[name] = checkResult{Status: "unhealthy", Error: err.Error()}
				resp.Status = "degraded"
				statusCode = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = checkResult{Status: "ok"}
		}

		return c.JSON(statusCode, resp)
	})
}

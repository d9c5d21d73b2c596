package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/unistep/loyalty-backend/internal/pkg/middleware"
	"github.com/unistep/loyalty-backend/internal/pkg/models"
	"github.com/unistep/loyalty-backend/services/loyalty"
)

// UserHandler handles HTTP requests for loyalty operations
type UserHandler struct {
	userUC loyalty.UserUC
}

// NewUserHandler creates a new loyalty handler
func NewUserHandler(userUC loyalty.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// RegisterRoutes registers the loyalty API routes
func (h *UserHandler) RegisterRoutes(e *echo.Echo, cfg models.APIKeyConfig) {
	// Public routes
	e.POST("/auth/otp/generate", h.GenerateOTP) // Sends OTP via SMS
	e.POST("/auth/otp/verify", h.VerifyOTP)     // Validates OTP and issues JWT
	e.POST("/users", h.RegisterUser)

	// Member routes
	e.GET("/users/:id", h.GetUser)
	e.PUT("/users/:id", h.UpdateUser)

	// Ops routes (API key authentication)
	opsRoutes := e.Group("/internal")
	opsRoutes.Use(middleware.ValidateAPIKey(cfg))
	opsRoutes.GET("/users", h.ListUsers)
	opsRoutes.GET("/users/by-registration-date", h.GetUsersByRegistrationDate)
	opsRoutes.GET("/users/by-update-date", h.GetUsersByUpdateDate)
}

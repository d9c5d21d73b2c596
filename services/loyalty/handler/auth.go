package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/unistep/loyalty-backend/internal/pkg/models"
	"github.com/unistep/loyalty-backend/internal/pkg/otperr"
	"github.com/unistep/loyalty-backend/internal/utils"
)

// GenerateOTP handles OTP generation requests
func (h *UserHandler) GenerateOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Phone number is required")
	}

	err := h.userUC.GenerateOTP(c.Request().Context(), req.PhoneNumber)
	switch {
	case err == nil:
		return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", nil)
	case errors.Is(err, otperr.ErrInvalidInput):
		return utils.BadRequestResponse(c, "Phone number is required")
	case errors.Is(err, otperr.ErrDeliveryFailed):
		return utils.BadGatewayResponse(c, "Failed to send verification code")
	default:
		return utils.InternalServerErrorResponse(c, "Failed to generate verification code")
	}
}

// VerifyOTP handles OTP verification requests. All rejection reasons map to
// the same 400 shape so a caller cannot probe which phone numbers have
// outstanding challenges.
func (h *UserHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Phone number and code are required")
	}

	auth, err := h.userUC.VerifyOTP(c.Request().Context(), req.PhoneNumber, req.Code)
	switch {
	case err == nil:
		return utils.SuccessResponse(c, http.StatusOK, "Phone number verified", auth)
	case errors.Is(err, otperr.ErrInvalidInput):
		return utils.BadRequestResponse(c, "Phone number and code are required")
	case errors.Is(err, otperr.ErrNotFound):
		return utils.BadRequestResponse(c, "No verification code found for this number")
	case errors.Is(err, otperr.ErrExpired):
		return utils.BadRequestResponse(c, "Verification code has expired")
	case errors.Is(err, otperr.ErrMismatch):
		return utils.BadRequestResponse(c, "Invalid verification code")
	default:
		return utils.InternalServerErrorResponse(c, "Failed to verify code")
	}
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/unistep/loyalty-backend/internal/pkg/apexerr"
	"github.com/unistep/loyalty-backend/internal/pkg/models"
	"github.com/unistep/loyalty-backend/internal/utils"
	"github.com/unistep/loyalty-backend/services/loyalty"
)

// RegisterUser handles loyalty registration requests
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req models.RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	user, err := h.userUC.RegisterUser(c.Request().Context(), &req)
	if err != nil {
		return apexFailureResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", user)
}

// UpdateUser handles partial profile update requests
func (h *UserHandler) UpdateUser(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), userID, &req)
	if err != nil {
		if errors.Is(err, loyalty.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		return apexFailureResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "User updated successfully", user)
}

// GetUser handles user retrieval requests
func (h *UserHandler) GetUser(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	user, err := h.userUC.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, loyalty.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to retrieve user")
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// ListUsers handles paginated listing requests
func (h *UserHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	users, err := h.userUC.ListUsers(c.Request().Context(), page, limit)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list users")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", users)
}

// GetUsersByRegistrationDate handles day-window listing by registration date
func (h *UserHandler) GetUsersByRegistrationDate(c echo.Context) error {
	return h.usersByDate(c, h.userUC.GetUsersByRegistrationDate)
}

// GetUsersByUpdateDate handles day-window listing by last update date
func (h *UserHandler) GetUsersByUpdateDate(c echo.Context) error {
	return h.usersByDate(c, h.userUC.GetUsersByUpdateDate)
}

func (h *UserHandler) usersByDate(c echo.Context, lookup func(ctx context.Context, date string) ([]models.User, error)) error {
	date := c.QueryParam("date")
	if date == "" {
		return utils.BadRequestResponse(c, "Date is required")
	}

	users, err := lookup(c.Request().Context(), date)
	if err != nil {
		if errors.Is(err, loyalty.ErrInvalidDate) {
			return utils.BadRequestResponse(c, "Invalid date, expected YYYY-MM-DD")
		}
		return utils.InternalServerErrorResponse(c, "Failed to list users")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Users retrieved successfully", users)
}

// apexFailureResponse maps Apex outcomes to client-facing status codes.
// Business rejections carry the caller's fault (400/409); transport
// failures surface as gateway errors so the client knows the ERP, not this
// service, misbehaved.
func apexFailureResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loyalty.ErrCardNotFound):
		return utils.BadRequestResponse(c, "Card does not exist")
	case errors.Is(err, loyalty.ErrCardAlreadyUsed):
		return utils.ConflictResponse(c, "Card already used")
	case errors.Is(err, loyalty.ErrApexRejected):
		return utils.BadGatewayResponse(c, "Loyalty system rejected the request")
	}

	var gatewayErr *apexerr.Error
	if errors.As(err, &gatewayErr) {
		switch gatewayErr.Kind {
		case apexerr.KindConfig:
			return utils.InternalServerErrorResponse(c, "Loyalty system is not configured")
		case apexerr.KindTimeout:
			return utils.GatewayTimeoutResponse(c, "Loyalty system timed out")
		default:
			return utils.BadGatewayResponse(c, "Loyalty system is unavailable")
		}
	}

	return utils.InternalServerErrorResponse(c, "Failed to process request")
}

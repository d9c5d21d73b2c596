package loyalty

import (
	"context"

	"github.com/unistep/loyalty-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/unistep/loyalty-backend/services/loyalty UserUC

// UserUC represents the loyalty usecase interface
type UserUC interface {
	// registration and updates, synced through Apex
	RegisterUser(ctx context.Context, req *models.RegisterUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)

	// listing surface
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context, page, limit int) (*models.UserPage, error)
	GetUsersByRegistrationDate(ctx context.Context, date string) ([]models.User, error)
	GetUsersByUpdateDate(ctx context.Context, date string) ([]models.User, error)

	// phone ownership verification
	GenerateOTP(ctx context.Context, phoneNumber string) error
	VerifyOTP(ctx context.Context, phoneNumber, code string) (*models.AuthResponse, error)
}

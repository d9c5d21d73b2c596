package loyalty

import (
	"context"
	"time"

	"github.com/unistep/loyalty-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/unistep/loyalty-backend/services/loyalty UserRepo,OTPRepo

// UserRepo defines the persistent user store
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context, page, limit int) ([]models.User, int, error)
	GetUsersByCreatedRange(ctx context.Context, from, to time.Time) ([]models.User, error)
	GetUsersByUpdatedRange(ctx context.Context, from, to time.Time) ([]models.User, error)
}

// OTPRepo defines the persistent OTP challenge store. UpsertChallenge must
// be a single atomic write: a re-issue for the same phone replaces the
// prior challenge without a read-modify-write window.
type OTPRepo interface {
	UpsertChallenge(ctx context.Context, challenge *models.OTPChallenge) error
	GetChallenge(ctx context.Context, phoneNumber string) (*models.OTPChallenge, error)
	DeleteChallenge(ctx context.Context, phoneNumber string) error
}

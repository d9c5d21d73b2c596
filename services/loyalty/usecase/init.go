package usecase

import (
	"github.com/unistep/loyalty-backend/internal/pkg/models"
	"github.com/unistep/loyalty-backend/services/loyalty"
)

// UserUC implements the loyalty usecase on top of the persistent stores
// and the outbound gateways
type UserUC struct {
	userRepo loyalty.UserRepo
	otpRepo  loyalty.OTPRepo
	apexGW   loyalty.ApexGW
	smsGW    loyalty.SMSGW
	cfg      *models.Config
}

// NewUserUC creates a new loyalty usecase instance
func NewUserUC(
	userRepo loyalty.UserRepo,
	otpRepo loyalty.OTPRepo,
	apexGW loyalty.ApexGW,
	smsGW loyalty.SMSGW,
	cfg *models.Config,
) *UserUC {
	return &UserUC{
		userRepo: userRepo,
		otpRepo:  otpRepo,
		apexGW:   apexGW,
		smsGW:    smsGW,
		cfg:      cfg,
	}
}

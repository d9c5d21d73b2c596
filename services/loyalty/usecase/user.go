package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/unistep/loyalty-backend/internal/pkg/logger"
	"github.com/unistep/loyalty-backend/internal/pkg/models"
	"github.com/unistep/loyalty-backend/internal/utils"
	"github.com/unistep/loyalty-backend/services/loyalty"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// RegisterUser activates a loyalty card in Apex and, only when the ERP
// accepts it, persists the member locally with the timestamps Apex reported.
func (uc *UserUC) RegisterUser(ctx context.Context, req *models.RegisterUserRequest) (*models.User, error) {
	card := utils.NormalizeCardNumber(req.CardNumber)
	phone := utils.NormalizePhoneNumber(req.PhoneNumber)

	payload := &models.ApexRegisterPayload{
		Branch:        req.Branch,
		Gender:        req.Gender,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DateOfBirth:   req.DateOfBirth,
		Address:       req.Address,
		City:          req.City,
		Country:       req.Country,
		Email:         req.Email,
		CardNumber:    card,
		PhoneCode:     req.PhoneCode,
		PhoneNumber:   phone,
		TermsAccepted: req.TermsAccepted,
		PromoChannels: req.PromoChannels,
	}

	result, err := uc.apexGW.SyncRegister(ctx, payload)
	if err != nil {
		return nil, err
	}

	if err := mapApexStatus(result.Status); err != nil {
		logger.Info("Apex rejected registration",
			logger.String("card_number", card),
			logger.String("status", result.Status))
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:            uuid.New(),
		Branch:        req.Branch,
		Gender:        req.Gender,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DateOfBirth:   req.DateOfBirth,
		Address:       req.Address,
		City:          req.City,
		Country:       req.Country,
		Email:         req.Email,
		CardNumber:    card,
		PhoneCode:     req.PhoneCode,
		PhoneNumber:   phone,
		TermsAccepted: req.TermsAccepted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	user.PromoChannels.SMS.Enabled = req.PromoChannels.SMS.Enabled
	user.PromoChannels.Email.Enabled = req.PromoChannels.Email.Enabled
	applyApexTimestamps(user, result)

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to persist user: %w", err)
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("card_number", card))

	return user, nil
}

// UpdateUser forwards the submitted fields to Apex under the member's stored
// card number and applies them locally only after the ERP accepts the change.
func (uc *UserUC) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payload := &models.ApexUpdatePayload{
		CardNumber:    user.CardNumber,
		Branch:        req.Branch,
		Gender:        req.Gender,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DateOfBirth:   req.DateOfBirth,
		Address:       req.Address,
		City:          req.City,
		Country:       req.Country,
		Email:         req.Email,
		PhoneCode:     req.PhoneCode,
		PhoneNumber:   req.PhoneNumber,
		PromoChannels: req.PromoChannels,
	}

	result, err := uc.apexGW.SyncUpdate(ctx, payload)
	if err != nil {
		return nil, err
	}

	if result.Status != models.ApexStatusOK {
		logger.Info("Apex rejected update",
			logger.String("user_id", id),
			logger.String("status", result.Status))
		return nil, fmt.Errorf("%w: %s", loyalty.ErrApexRejected, result.Status)
	}

	applyUpdateFields(user, req)
	user.UpdatedAt = time.Now()
	applyApexTimestamps(user, result)

	if err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to persist user update: %w", err)
	}

	logger.Info("User updated",
		logger.String("user_id", id))

	return user, nil
}

// GetUserByID retrieves a single member record
func (uc *UserUC) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, id)
}

// ListUsers returns one page of members, newest first
func (uc *UserUC) ListUsers(ctx context.Context, page, limit int) (*models.UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	users, total, err := uc.userRepo.ListUsers(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	return &models.UserPage{
		Page:       page,
		Limit:      limit,
		TotalUsers: total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		Users:      users,
	}, nil
}

// GetUsersByRegistrationDate returns members registered on a calendar day
func (uc *UserUC) GetUsersByRegistrationDate(ctx context.Context, date string) ([]models.User, error) {
	from, to, err := dayWindow(date)
	if err != nil {
		return nil, err
	}
	return uc.userRepo.GetUsersByCreatedRange(ctx, from, to)
}

// GetUsersByUpdateDate returns members last updated on a calendar day
func (uc *UserUC) GetUsersByUpdateDate(ctx context.Context, date string) ([]models.User, error) {
	from, to, err := dayWindow(date)
	if err != nil {
		return nil, err
	}
	return uc.userRepo.GetUsersByUpdatedRange(ctx, from, to)
}

// mapApexStatus translates the ERP's business status into domain errors.
// OK maps to nil; anything the service does not recognize is a rejection.
func mapApexStatus(status string) error {
	switch status {
	case models.ApexStatusOK:
		return nil
	case models.ApexStatusCardNotFound:
		return loyalty.ErrCardNotFound
	case models.ApexStatusCardAlreadyUsed:
		return loyalty.ErrCardAlreadyUsed
	default:
		return fmt.Errorf("%w: %s", loyalty.ErrApexRejected, status)
	}
}

// applyUpdateFields copies the submitted fields onto the stored record.
// Nil pointers were not submitted and leave the stored value untouched.
func applyUpdateFields(user *models.User, req *models.UpdateUserRequest) {
	if req.Branch != nil {
		user.Branch = *req.Branch
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.DateOfBirth != nil {
		user.DateOfBirth = *req.DateOfBirth
	}
	if req.Address != nil {
		user.Address = *req.Address
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.Country != nil {
		user.Country = *req.Country
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.PhoneCode != nil {
		user.PhoneCode = *req.PhoneCode
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = utils.NormalizePhoneNumber(*req.PhoneNumber)
	}
	if req.PromoChannels != nil {
		if req.PromoChannels.SMS != nil {
			user.PromoChannels.SMS.Enabled = req.PromoChannels.SMS.Enabled
		}
		if req.PromoChannels.Email != nil {
			user.PromoChannels.Email.Enabled = req.PromoChannels.Email.Enabled
		}
	}
}

// applyApexTimestamps copies the timestamps the ERP reported onto the local
// record, keeping it time-aligned with Apex. Absent or unparseable values
// leave the local ones in place.
func applyApexTimestamps(user *models.User, result *models.ApexResult) {
	if t := parseApexTime(result.CreatedAt); t != nil {
		user.CreatedAt = *t
	}
	if t := parseApexTime(result.UpdatedAt); t != nil {
		user.UpdatedAt = *t
	}

	if result.PromoChannels == nil {
		return
	}
	if ch := result.PromoChannels.SMS; ch != nil {
		if t := parseApexTime(ch.CreatedAt); t != nil {
			user.PromoChannels.SMS.CreatedAt = t
		}
		if t := parseApexTime(ch.UpdatedAt); t != nil {
			user.PromoChannels.SMS.UpdatedAt = t
		}
	}
	if ch := result.PromoChannels.Email; ch != nil {
		if t := parseApexTime(ch.CreatedAt); t != nil {
			user.PromoChannels.Email.CreatedAt = t
		}
		if t := parseApexTime(ch.UpdatedAt); t != nil {
			user.PromoChannels.Email.UpdatedAt = t
		}
	}
}

func parseApexTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		logger.Warn("Skipping unparseable Apex timestamp",
			logger.String("value", value),
			logger.Err(err))
		return nil
	}
	return &t
}

// dayWindow expands a YYYY-MM-DD date into the whole-day UTC interval
func dayWindow(date string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, loyalty.ErrInvalidDate
	}
	from := day
	to := day.Add(24*time.Hour - time.Nanosecond)
	return from, to, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// PromoChannel tracks one opt-in channel with the timestamps Apex reported
type PromoChannel struct {
	Enabled   bool       `json:"enabled"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// PromoChannels groups the sms and email opt-in channels
type PromoChannels struct {
	SMS   PromoChannel `json:"sms"`
	Email PromoChannel `json:"email"`
}

// User represents a loyalty-program member. CreatedAt/UpdatedAt and the
// per-channel timestamps come from Apex on a successful sync, keeping the
// local record time-aligned with the ERP.
type User struct {
	ID            uuid.UUID     `json:"id"`
	Branch        string        `json:"branch"`
	Gender        string        `json:"gender"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	DateOfBirth   string        `json:"date_of_birth"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	Country       string        `json:"country"`
	Email         string        `json:"email"`
	CardNumber    string        `json:"card_number"`
	PhoneCode     string        `json:"phone_code"`
	PhoneNumber   string        `json:"phone_number"`
	TermsAccepted bool          `json:"terms_accepted"`
	PromoChannels PromoChannels `json:"promo_channels"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// RegisterUserRequest represents a registration request body
type RegisterUserRequest struct {
	Branch        string         `json:"branch" validate:"required,oneof=tbilisi batumi"`
	Gender        string         `json:"gender" validate:"required,oneof=female male other"`
	FirstName     string         `json:"first_name" validate:"required"`
	LastName      string         `json:"last_name" validate:"required"`
	DateOfBirth   string         `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Address       string         `json:"address"`
	City          string         `json:"city"`
	Country       string         `json:"country"`
	Email         string         `json:"email" validate:"omitempty,email"`
	CardNumber    string         `json:"card_number" validate:"required,min=5"`
	PhoneCode     string         `json:"phone_code" validate:"required"`
	PhoneNumber   string         `json:"phone_number" validate:"required,min=5"`
	TermsAccepted bool           `json:"terms_accepted" validate:"required,eq=true"`
	PromoChannels ApexPromoFlags `json:"promo_channels"`
}

// UpdateUserRequest represents a partial update request body. Nil means the
// field was not submitted and must not be forwarded to Apex.
type UpdateUserRequest struct {
	Branch        *string                `json:"branch,omitempty" validate:"omitempty,oneof=tbilisi batumi"`
	Gender        *string                `json:"gender,omitempty" validate:"omitempty,oneof=female male other"`
	FirstName     *string                `json:"first_name,omitempty" validate:"omitempty,min=1"`
	LastName      *string                `json:"last_name,omitempty" validate:"omitempty,min=1"`
	DateOfBirth   *string                `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Address       *string                `json:"address,omitempty"`
	City          *string                `json:"city,omitempty"`
	Country       *string                `json:"country,omitempty"`
	Email         *string                `json:"email,omitempty" validate:"omitempty,email"`
	PhoneCode     *string                `json:"phone_code,omitempty" validate:"omitempty,min=1"`
	PhoneNumber   *string                `json:"phone_number,omitempty" validate:"omitempty,min=5"`
	PromoChannels *ApexPartialPromoFlags `json:"promo_channels,omitempty"`
}

// UserPage is one page of users for the ops listing endpoints
type UserPage struct {
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalUsers int    `json:"total_users"`
	TotalPages int    `json:"total_pages"`
	Users      []User `json:"users"`
}

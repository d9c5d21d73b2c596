package models

import (
	"time"
)

// OTPChallenge represents one outstanding phone verification attempt.
// Only the SHA-256 digest of the code is ever stored; the plaintext lives
// exactly as long as the SMS dispatch call.
type OTPChallenge struct {
	PhoneNumber string    `json:"phone_number"`
	CodeDigest  string    `json:"code_digest"`
	IssuedAt    time.Time `json:"issued_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// SendOTPRequest represents a request to issue an OTP for a phone number
type SendOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// VerifyOTPRequest represents a request to verify a submitted OTP code
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Code        string `json:"code" validate:"required"`
}

// AuthResponse represents the response after successful phone verification
type AuthResponse struct {
	Token       string `json:"token"`
	PhoneNumber string `json:"phone_number"`
	ExpiresAt   int64  `json:"expires_at"`
}

package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/unistep/loyalty-backend/internal/pkg/jwt"
	"github.com/unistep/loyalty-backend/internal/pkg/logger"
	"github.com/unistep/loyalty-backend/internal/pkg/models"
	"github.com/unistep/loyalty-backend/internal/pkg/otperr"
	"github.com/unistep/loyalty-backend/internal/utils"
)

const (
	otpTTL     = 5 * time.Minute
	otpCodeMin = 1000
	otpCodeMax = 9999
)

// GenerateOTP issues a fresh verification code for a phone number and
// dispatches it over SMS. A previous outstanding challenge for the same
// number is replaced, so only the newest code can verify.
func (uc *UserUC) GenerateOTP(ctx context.Context, phoneNumber string) error {
	phone := utils.NormalizePhoneNumber(phoneNumber)
	if phone == "" {
		return otperr.ErrInvalidInput
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	now := time.Now()
	challenge := &models.OTPChallenge{
		PhoneNumber: phone,
		CodeDigest:  hashCode(code),
		IssuedAt:    now,
		ExpiresAt:   now.Add(otpTTL),
	}

	if err := uc.otpRepo.UpsertChallenge(ctx, challenge); err != nil {
		return fmt.Errorf("failed to store OTP challenge: %w", err)
	}

	message := fmt.Sprintf(
		"Your UniStep verification code is %s. It expires in 5 minutes.",
		code,
	)
	if err := uc.smsGW.SendSMS(ctx, phone, message); err != nil {
		// The challenge stays behind so a code that did arrive late can
		// still verify within its window.
		logger.Warn("OTP SMS dispatch failed",
			logger.String("phone_number", phone),
			logger.Err(err))
		return fmt.Errorf("%w: %v", otperr.ErrDeliveryFailed, err)
	}

	logger.Info("OTP challenge issued",
		logger.String("phone_number", phone),
		logger.Any("expires_at", challenge.ExpiresAt))

	return nil
}

// VerifyOTP checks a submitted code against the outstanding challenge and,
// on success, consumes the challenge and returns a registration token.
func (uc *UserUC) VerifyOTP(ctx context.Context, phoneNumber, code string) (*models.AuthResponse, error) {
	phone := utils.NormalizePhoneNumber(phoneNumber)
	if phone == "" || code == "" {
		return nil, otperr.ErrInvalidInput
	}

	challenge, err := uc.otpRepo.GetChallenge(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to load OTP challenge: %w", err)
	}
	if challenge == nil {
		return nil, otperr.ErrNotFound
	}

	if time.Now().After(challenge.ExpiresAt) {
		// An expired challenge can never become valid again, drop it now
		// rather than waiting for the store TTL.
		if err := uc.otpRepo.DeleteChallenge(ctx, phone); err != nil {
			logger.Warn("Failed to delete expired OTP challenge",
				logger.String("phone_number", phone),
				logger.Err(err))
		}
		return nil, otperr.ErrExpired
	}

	if subtle.ConstantTimeCompare([]byte(hashCode(code)), []byte(challenge.CodeDigest)) != 1 {
		// The challenge survives a wrong guess, the client may retry
		// until it expires.
		return nil, otperr.ErrMismatch
	}

	// Consume before issuing the token, a code must never verify twice.
	if err := uc.otpRepo.DeleteChallenge(ctx, phone); err != nil {
		return nil, fmt.Errorf("failed to consume OTP challenge: %w", err)
	}

	token, expiresAt, err := jwt.GenerateToken(phone, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Phone number verified",
		logger.String("phone_number", phone))

	return &models.AuthResponse{
		Token:       token,
		PhoneNumber: phone,
		ExpiresAt:   expiresAt,
	}, nil
}

// generateCode draws a uniform 4-digit code from crypto/rand
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpCodeMax-otpCodeMin+1))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", otpCodeMin+n.Int64()), nil
}

func hashCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

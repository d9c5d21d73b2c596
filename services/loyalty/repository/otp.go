package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/unistep/loyalty-backend/internal/pkg/constants"
	"github.com/unistep/loyalty-backend/internal/pkg/models"
)

// UpsertChallenge stores a challenge keyed by phone number. A single SET
// with TTL replaces any prior challenge atomically, so concurrent
// issuances for the same phone resolve to last-writer-wins with no
// half-written record. The TTL also acts as the store-side sweep for
// challenges nobody ever verifies.
func (r *UserRepo) UpsertChallenge(ctx context.Context, challenge *models.OTPChallenge) error {
	payload, err := json.Marshal(challenge)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP challenge: %w", err)
	}

	ttl := time.Until(challenge.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("OTP challenge already expired")
	}

	key := fmt.Sprintf(constants.KeyOTPChallenge, challenge.PhoneNumber)
	if err := r.redisClient.Set(ctx, key, payload, ttl); err != nil {
		return fmt.Errorf("failed to store OTP challenge in Redis: %w", err)
	}

	return nil
}

// GetChallenge retrieves the challenge for a phone number, or nil when
// none exists
func (r *UserRepo) GetChallenge(ctx context.Context, phoneNumber string) (*models.OTPChallenge, error) {
	key := fmt.Sprintf(constants.KeyOTPChallenge, phoneNumber)

	val, err := r.redisClient.Get(ctx, key)
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get OTP challenge from Redis: %w", err)
	}

	var challenge models.OTPChallenge
	if err := json.Unmarshal([]byte(val), &challenge); err != nil {
		return nil, fmt.Errorf("failed to unmarshal OTP challenge: %w", err)
	}

	return &challenge, nil
}

// DeleteChallenge removes the challenge for a phone number
func (r *UserRepo) DeleteChallenge(ctx context.Context, phoneNumber string) error {
	key := fmt.Sprintf(constants.KeyOTPChallenge, phoneNumber)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete OTP challenge: %w", err)
	}
	return nil
}

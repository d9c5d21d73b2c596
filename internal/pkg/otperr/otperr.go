// Package otperr defines the closed error set of the OTP manager,
// matched with errors.Is at the handler boundary.
package otperr

import "errors"

var (
	// ErrInvalidInput means the phone number was empty after normalization
	ErrInvalidInput = errors.New("phone number required")

	// ErrNotFound means no challenge exists for the phone number: never
	// issued, already consumed, or removed after expiry
	ErrNotFound = errors.New("otp challenge not found")

	// ErrExpired means the challenge outlived its deadline; it has been
	// deleted so the phone is free for re-issuance
	ErrExpired = errors.New("otp challenge expired")

	// ErrMismatch means the submitted code does not match the stored digest;
	// the challenge stays intact so a legitimate retry can still succeed
	ErrMismatch = errors.New("otp code mismatch")

	// ErrDeliveryFailed means the challenge was committed but the SMS
	// dispatch failed; distinct from storage failures because the code is
	// still verifiable if the prior message arrived, and a fresh issuance
	// simply overwrites it
	ErrDeliveryFailed = errors.New("otp delivery failed")
)

package constants

// Redis key formats
const (
	KeyOTPChallenge = "loyalty:otp:%s" // Format: loyalty:otp:{phone_number}
)

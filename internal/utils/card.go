package utils

import "strings"

// NormalizeCardNumber strips separators from a loyalty card number so the
// same physical card always maps to one identity key in Apex.
func NormalizeCardNumber(cardNumber string) string {
	stripped := strings.ReplaceAll(cardNumber, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")
	return strings.TrimSpace(stripped)
}

// NormalizePhoneNumber trims surrounding whitespace from a phone number.
// The OTP store keys challenges by this value.
func NormalizePhoneNumber(phoneNumber string) string {
	return strings.TrimSpace(phoneNumber)
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCardNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "700012345678", "700012345678"},
		{"dashed", "7000-1234-5678", "700012345678"},
		{"spaced", "7000 1234 5678", "700012345678"},
		{"mixed separators", " 7000-1234 5678 ", "700012345678"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCardNumber(tt.input))
		})
	}
}

func TestNormalizePhoneNumber(t *testing.T) {
	assert.Equal(t, "555123456", NormalizePhoneNumber("  555123456 "))
	assert.Equal(t, "", NormalizePhoneNumber("   "))
}

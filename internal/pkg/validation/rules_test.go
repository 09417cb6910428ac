package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{"simple address", "jane.doe@example.com", true},
		{"plus tag", "jane+tag@example.co.uk", true},
		{"digits and underscore", "user_01@mail.example.org", true},
		{"missing at sign", "jane.doe.example.com", false},
		{"missing domain", "jane@", false},
		{"missing tld", "jane@example", false},
		{"single letter tld", "jane@example.c", false},
		{"empty", "", false},
		{"spaces", "jane doe@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"seven digits", "1234567", true},
		{"fifteen digits", "123456789012345", true},
		{"with leading plus", "+905551112233", true},
		{"plus and seven digits", "+1234567", true},
		{"six digits too short", "123456", false},
		{"sixteen digits too long", "1234567890123456", false},
		{"plus only", "+", false},
		{"internal plus", "12+34567", false},
		{"letters", "555CALLME", false},
		{"dashes", "555-111-2233", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPhone(tt.phone))
		})
	}
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("Jan"))
	assert.True(t, IsValidName("Jane Doe"))
	assert.True(t, IsValidName(strings.Repeat("a", 50)))

	assert.False(t, IsValidName(""))
	assert.False(t, IsValidName("Jo"))
	assert.False(t, IsValidName(strings.Repeat("a", 51)))
}

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/expense-tracker/internal/errors"
)

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("groceries"))
	assert.Error(t, NotBlank.Validate("   "))
	assert.Error(t, NotBlank.Validate("\t\n"))
}

func TestEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last+tag@sub.example.org"}
	for _, email := range valid {
		assert.NoError(t, Email.Validate(email), email)
	}

	invalid := []string{"user", "user@", "@example.com", "user@example", "user @example.com"}
	for _, email := range invalid {
		assert.Error(t, Email.Validate(email), email)
	}
}

func TestUsername(t *testing.T) {
	assert.NoError(t, Username.Validate("john.doe-99"))
	assert.Error(t, Username.Validate("john doe"))
	assert.Error(t, Username.Validate("john@doe"))
}

func TestPasswordStrength(t *testing.T) {
	rule := PasswordStrength{
		MinLength:      8,
		RequireUpper:   true,
		RequireLower:   true,
		RequireNumber:  true,
		RequireSpecial: true,
	}

	assert.NoError(t, rule.Validate("Sup3r$ecret"))

	tests := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1$"},
		{"no uppercase", "sup3r$ecret"},
		{"no lowercase", "SUP3R$ECRET"},
		{"no number", "Super$ecret"},
		{"no special", "Sup3rSecret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, rule.Validate(tt.password))
		})
	}

	assert.Error(t, rule.Validate(12345), "non-string input must fail")
}

func TestWrapValidationError(t *testing.T) {
	assert.NoError(t, WrapValidationError(nil))

	err := WrapValidationError(NotBlank.Validate(" "))
	assert.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
}

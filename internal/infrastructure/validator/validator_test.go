package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateEmail("user@example.com"))
	assert.Error(t, v.ValidateEmail(""))
	assert.Error(t, v.ValidateEmail("not-an-email"))
}

func TestValidatePasswordStrength(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidatePasswordStrength("Password1"))
	assert.Error(t, v.ValidatePasswordStrength("short1A"))
	assert.Error(t, v.ValidatePasswordStrength("alllowercase1"))
	assert.Error(t, v.ValidatePasswordStrength("ALLUPPERCASE1"))
	assert.Error(t, v.ValidatePasswordStrength("NoNumbersHere"))
}

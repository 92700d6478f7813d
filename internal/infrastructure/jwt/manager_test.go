package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerifyToken_RoundTrip(t *testing.T) {
	mgr := NewJWTManager("test-secret", 15*time.Minute, 7*24*time.Hour)

	token, err := mgr.GenerateAccessToken("user-123")
	assert.NoError(t, err)

	claims, err := mgr.VerifyToken(token, "access")
	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "access", claims.TokenType)
}

func TestVerifyToken_RejectsWrongType(t *testing.T) {
	mgr := NewJWTManager("test-secret", 15*time.Minute, 7*24*time.Hour)

	token, err := mgr.GenerateRefreshToken("user-123")
	assert.NoError(t, err)

	_, err = mgr.VerifyToken(token, "access")
	assert.Error(t, err)
}

func TestVerifyToken_RejectsWrongSecret(t *testing.T) {
	mgr := NewJWTManager("test-secret", 15*time.Minute, 7*24*time.Hour)
	other := NewJWTManager("other-secret", 15*time.Minute, 7*24*time.Hour)

	token, err := mgr.GenerateAccessToken("user-123")
	assert.NoError(t, err)

	_, err = other.VerifyToken(token, "access")
	assert.Error(t, err)
}

func TestVerifyToken_RejectsExpired(t *testing.T) {
	mgr := NewJWTManager("test-secret", -time.Minute, 7*24*time.Hour)

	token, err := mgr.GenerateAccessToken("user-123")
	assert.NoError(t, err)

	_, err = mgr.VerifyToken(token, "access")
	assert.Error(t, err)
}

package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bloghub-backend/config"
)

func init() {
	config.AppConfig.JWTSecret = "test-secret"
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42)
	assert.NoError(t, err)

	userID, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)

	_, err = ValidateToken("")
	assert.Error(t, err)
}

func TestPurposeTokenRoundTrip(t *testing.T) {
	token, err := GeneratePurposeToken(7, "verify_email", time.Hour)
	assert.NoError(t, err)

	userID, err := ValidatePurposeToken(token, "verify_email")
	assert.NoError(t, err)
	assert.Equal(t, 7, userID)
}

func TestPurposeTokenRejectsWrongPurpose(t *testing.T) {
	token, err := GeneratePurposeToken(7, "verify_email", time.Hour)
	assert.NoError(t, err)

	// 验证令牌不能用来重置密码
	_, err = ValidatePurposeToken(token, "reset_password")
	assert.Error(t, err)
}

func TestTokenExpiry(t *testing.T) {
	token, err := GenerateToken(1)
	assert.NoError(t, err)

	expiry := TokenExpiry(token)
	assert.False(t, expiry.IsZero())
	assert.True(t, expiry.After(time.Now()))

	assert.True(t, TokenExpiry("garbage").IsZero())
}

package utils

import (
	"testing"
	"time"

	"brewhouse/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, accessTTL time.Duration) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig = &config.Config{
		JWTSecret:      "test-secret",
		AccessTokenTTL: accessTTL,
	}
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestGenerateAndValidateToken(t *testing.T) {
	setTestConfig(t, 15*time.Minute)

	token, err := GenerateToken(7, "dina@example.com", "admin")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "dina@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	setTestConfig(t, -time.Minute)

	token, err := GenerateToken(7, "dina@example.com", "customer")
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	setTestConfig(t, 15*time.Minute)

	token, err := GenerateToken(7, "dina@example.com", "customer")
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "another-secret"
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	setTestConfig(t, 15*time.Minute)

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

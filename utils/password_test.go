package utils

import (
	"strings"
	"testing"

	"brewhouse/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-brew")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-brew", hash)

	ok, err := VerifyPassword(hash, "s3cret-brew")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordUsesConfiguredCosts(t *testing.T) {
	prev := config.AppConfig
	config.AppConfig = &config.Config{
		Argon2TimeCost:  2,
		Argon2MemoryKiB: 32 * 1024,
	}
	t.Cleanup(func() { config.AppConfig = prev })

	hash, err := HashPassword("s3cret-brew")
	require.NoError(t, err)
	assert.True(t, strings.Contains(hash, "m=32768"), "hash: %s", hash)
	assert.True(t, strings.Contains(hash, "t=2"), "hash: %s", hash)

	// verification reads the costs from the hash itself
	ok, err := VerifyPassword(hash, "s3cret-brew")
	require.NoError(t, err)
	assert.True(t, ok)
}

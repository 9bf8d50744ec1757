package utils

import (
	"testing"
	"time"

	"tripwise/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "user@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "user@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	require.Error(t, err)
}

func TestTokenSignedWithConfiguredSecret(t *testing.T) {
	old := config.AppConfig.JWTSecret
	defer func() { config.AppConfig.JWTSecret = old }()

	config.AppConfig.JWTSecret = "first-secret"
	token, err := GenerateToken("user-1", "user@example.com", time.Hour)
	require.NoError(t, err)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)

	// A token signed under one secret must not verify under another.
	config.AppConfig.JWTSecret = "rotated-secret"
	_, err = ExtractIDFromToken(token)
	require.Error(t, err)
}

func TestHashTokenDeterministic(t *testing.T) {
	a := HashToken("abc")
	b := HashToken("abc")
	c := HashToken("abd")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

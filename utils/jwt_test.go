package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	tokenString, err := issuer.Generate("admin@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := issuer.Validate(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	email, err := issuer.ExtractEmail(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	tokenString, err := issuer.Generate("admin@example.com")
	require.NoError(t, err)

	_, err = issuer.Validate(tokenString)
	assert.Error(t, err)
}

func TestWrongSecretIsRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("different-secret", time.Hour)

	tokenString, err := issuer.Generate("admin@example.com")
	require.NoError(t, err)

	_, err = other.Validate(tokenString)
	assert.Error(t, err)
}

func TestGarbageTokenIsRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	_, err := issuer.Validate("not.a.token")
	assert.Error(t, err)
}

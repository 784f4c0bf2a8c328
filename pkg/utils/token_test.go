package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssueAndValidate(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 1)
	userID := uuid.New()

	token, expiresAt, err := issuer.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	subject, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	issuer := NewTokenIssuer("right-secret", 1)
	other := NewTokenIssuer("wrong-secret", 1)

	token, _, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestTokenMalformedRejected(t *testing.T) {
	issuer := NewTokenIssuer("secret", 1)

	_, err := issuer.Validate("not.a.token")
	assert.Error(t, err)

	_, err = issuer.Validate("")
	assert.Error(t, err)
}

func TestTokenDefaultExpiry(t *testing.T) {
	// A non-positive expiry falls back to 24 hours.
	issuer := NewTokenIssuer("secret", 0)

	_, expiresAt, err := issuer.Issue(uuid.New())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)
}

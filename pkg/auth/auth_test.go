package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate_RoundTrips(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	token, err := issuer.Issue("client-1")
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "client-1", claims.Subject)
}

func TestValidate_RejectsTokenFromDifferentSecret(t *testing.T) {
	issuer := NewIssuer("secret-a", time.Hour)
	token, err := issuer.Issue("client-1")
	require.NoError(t, err)

	other := NewIssuer("secret-b", time.Hour)
	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestValidate_RejectsExpiredToken(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)
	token, err := issuer.Issue("client-1")
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.Error(t, err)
}

package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)

	token, err := issuer.Issue("profile-1", "field_team")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	profileID, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "profile-1", profileID)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)
	other := NewTokenIssuer([]byte("other-secret"), time.Hour)

	token, err := issuer.Issue("profile-1", "field_team")
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), -time.Minute)

	token, err := issuer.Issue("profile-1", "field_team")
	require.NoError(t, err)

	_, err = issuer.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenZeroTTLDefaults(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), 0)

	token, err := issuer.Issue("profile-1", "field_team")
	require.NoError(t, err)

	profileID, err := issuer.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "profile-1", profileID)
}

func TestTokenGarbage(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret"), time.Hour)

	_, err := issuer.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

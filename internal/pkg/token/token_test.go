package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionToken(t *testing.T) {
	token := NewSessionToken()

	// Two uuids with dashes stripped
	assert.Len(t, token, 64)
	assert.False(t, strings.Contains(token, "-"))

	assert.NotEqual(t, token, NewSessionToken())
}

func TestActionTokenRoundTrip(t *testing.T) {
	secret := "test-secret"

	signed, err := GenerateActionToken(42, PurposeResetPassword, secret, 60)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := ValidateActionToken(signed, PurposeResetPassword, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, PurposeResetPassword, claims.Purpose)
	assert.Equal(t, "crewledger", claims.Issuer)
}

func TestActionTokenWrongPurpose(t *testing.T) {
	signed, err := GenerateActionToken(42, PurposeVerifyEmail, "test-secret", 60)
	require.NoError(t, err)

	_, err = ValidateActionToken(signed, PurposeResetPassword, "test-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestActionTokenWrongSecret(t *testing.T) {
	signed, err := GenerateActionToken(42, PurposeVerifyEmail, "test-secret", 60)
	require.NoError(t, err)

	_, err = ValidateActionToken(signed, PurposeVerifyEmail, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestActionTokenExpired(t *testing.T) {
	signed, err := GenerateActionToken(42, PurposeVerifyEmail, "test-secret", -1)
	require.NoError(t, err)

	_, err = ValidateActionToken(signed, PurposeVerifyEmail, "test-secret")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestActionTokenGarbage(t *testing.T) {
	_, err := ValidateActionToken("not.a.token", PurposeVerifyEmail, "test-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

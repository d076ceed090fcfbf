package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrms-backend/pkg/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("unit-test-secret", 8)

	token, err := tm.Generate("account-1", "Recruiter")
	require.NoError(t, err)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "account-1", claims.Subject)
	assert.Equal(t, "Recruiter", claims.Role)
}

func TestTokenWrongSecret(t *testing.T) {
	tm := auth.NewTokenManager("secret-one", 8)
	other := auth.NewTokenManager("secret-two", 8)

	token, err := tm.Generate("account-1", "client")
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestTokenGarbage(t *testing.T) {
	tm := auth.NewTokenManager("unit-test-secret", 8)

	_, err := tm.Parse("not.a.jwt")
	assert.Error(t, err)
}

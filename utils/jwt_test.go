package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJwtRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateJwt(secret, "user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ValidateJwt(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJwtWrongSecret(t *testing.T) {
	token, err := GenerateJwt([]byte("one"), "user-123")
	require.NoError(t, err)

	_, err = ValidateJwt([]byte("two"), token)
	assert.Error(t, err)
}

func TestJwtGarbage(t *testing.T) {
	_, err := ValidateJwt([]byte("secret"), "not.a.token")
	assert.Error(t, err)
}

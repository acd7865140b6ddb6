package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("64b0c1f2a1b2c3d4e5f60718", "alice@example.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "64b0c1f2a1b2c3d4e5f60718", claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("not-a-token")
	assert.Error(t, err)

	_, err = ParseJWT("")
	assert.Error(t, err)
}

func TestParseJWTRejectsTamperedToken(t *testing.T) {
	token, err := GenerateJWT("64b0c1f2a1b2c3d4e5f60718", "bob@example.com", false)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ParseJWT(tampered)
	assert.Error(t, err)
}

package jwthelper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	key := []byte("signing-key")

	token, err := GenerateToken(key, 42, "admin", "curl/8", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(key, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "curl/8", claims.UserAgent)
}

func TestParseToken_Rejects(t *testing.T) {
	key := []byte("signing-key")

	expired, err := GenerateToken(key, 42, "member", "", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(key, expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	valid, err := GenerateToken(key, 42, "member", "", time.Hour)
	require.NoError(t, err)
	_, err = ParseToken([]byte("other-key"), valid)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken(key, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

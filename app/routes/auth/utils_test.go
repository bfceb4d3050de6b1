package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("s3cret-pass", "not-a-hash"))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", false)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "assignmate", claims.Issuer)
}

func TestJWTRememberExtendsLifetime(t *testing.T) {
	short, err := GenerateJWT("user-1", false)
	require.NoError(t, err)
	long, err := GenerateJWT("user-1", true)
	require.NoError(t, err)

	shortClaims, err := ValidateJWT(short)
	require.NoError(t, err)
	longClaims, err := ValidateJWT(long)
	require.NoError(t, err)

	assert.InDelta(t, 24*time.Hour,
		time.Until(shortClaims.ExpiresAt.Time), float64(time.Minute))
	assert.InDelta(t, 30*24*time.Hour,
		time.Until(longClaims.ExpiresAt.Time), float64(time.Minute))
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)
}

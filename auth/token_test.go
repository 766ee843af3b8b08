package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndParseToken(t *testing.T) {
	tokenString, err := CreateToken("referee", []string{PermissionAdmin}, time.Hour)
	require.NoError(t, err)

	token, err := ParseToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	claims := &Claims{}
	require.NoError(t, claims.FromJWTClaims(token.Claims))
	assert.Equal(t, "referee", claims.Subject)
	assert.NoError(t, claims.Valid())
	assert.True(t, claims.HasAny([]string{"admin"}))
	assert.False(t, claims.HasAny([]string{"judge"}))
}

func TestExpiredToken(t *testing.T) {
	tokenString, err := CreateToken("referee", nil, -time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenWithOtherSecret(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	tokenString, err := token.SignedString([]byte("not-the-secret"))
	require.NoError(t, err)

	_, err = ParseToken(tokenString)
	assert.Error(t, err)
}

package jwt

import (
	"daily-diet-api/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	token, err := svc.GenerateSessionToken("session-1", "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sessionID, userID, err := svc.GetSessionByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-1", sessionID)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, time.Hour, svc.TTL())
}

func TestGetSessionByToken_Empty(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	_, _, err := svc.GetSessionByToken("")
	assert.ErrorIs(t, err, domain.ErrTokenNotFound)
}

func TestGetSessionByToken_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret", time.Hour).GenerateSessionToken("s", "u")
	require.NoError(t, err)

	_, _, err = NewJWTService("other", time.Hour).GetSessionByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetSessionByToken_Expired(t *testing.T) {
	svc := NewJWTService("secret", -time.Minute)
	token, err := svc.GenerateSessionToken("s", "u")
	require.NoError(t, err)

	_, _, err = svc.GetSessionByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestGetSessionByToken_Garbage(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)
	_, _, err := svc.GetSessionByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetSessionByToken_RejectsNoneAlgorithm(t *testing.T) {
	claims := jwtSessionClaim{SessionID: "s", UserID: "u"}
	claims.Issuer = "DAILY-DIET"
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = NewJWTService("secret", time.Hour).GetSessionByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

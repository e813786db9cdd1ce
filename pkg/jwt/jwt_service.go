package jwt

import (
	"daily-diet-api/domain"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type (
	// JWTService signs the value stored in the session cookie. The token only
	// binds a session id to a user id; the session itself lives on the user row.
	JWTService interface {
		GenerateSessionToken(sessionID string, userID string) (string, error)
		ValidateSessionToken(token string) (*jwt.Token, error)
		GetSessionByToken(token string) (string, string, error)
		TTL() time.Duration
	}

	jwtSessionClaim struct {
		SessionID string `json:"session_id"`
		UserID    string `json:"user_id"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		ttl       time.Duration
	}
)

func NewJWTService(secretKey string, ttl time.Duration) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    "DAILY-DIET",
		ttl:       ttl,
	}
}

func (j *jwtService) TTL() time.Duration {
	return j.ttl
}

func (j *jwtService) GenerateSessionToken(sessionID string, userID string) (string, error) {
	now := time.Now()
	claims := jwtSessionClaim{
		sessionID,
		userID,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateSessionToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtSessionClaim{}, j.parseToken)
}

// GetSessionByToken returns the session id and user id carried by token.
func (j *jwtService) GetSessionByToken(token string) (string, string, error) {
	if token == "" {
		return "", "", domain.ErrTokenNotFound
	}

	t_Token, err := j.ValidateSessionToken(token)
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*jwtSessionClaim)
	if !ok || claims.SessionID == "" || claims.Issuer != j.issuer {
		return "", "", domain.ErrTokenInvalid
	}

	return claims.SessionID, claims.UserID, nil
}

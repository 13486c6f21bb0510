package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers bad signatures, wrong algorithms and expired tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenTTL is the fixed lifetime of issued tokens. There is no refresh
// mechanism; clients log in again after expiry.
const TokenTTL = 24 * time.Hour

type TokenClaims struct {
	UserID int64  `json:"id"`
	Role   string `json:"role"`

	jwt.RegisteredClaims
}

func GenerateToken(secret string, userID int64, role string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func VerifyToken(secret, tokenString string) (*TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*TokenClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

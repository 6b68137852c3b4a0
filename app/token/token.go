// Package token issues and verifies the signed, expiring tokens used for
// access, refresh and password-reset credentials. Each token kind is signed
// with its own secret; the codec itself is stateless.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired reports a well-formed token past its expiry.
	ErrExpired = errors.New("token has expired")
	// ErrInvalid reports a malformed token or a bad signature.
	ErrInvalid = errors.New("invalid token")
)

type Claims struct {
	UserID uint64 `json:"id"`
	jwt.RegisteredClaims
}

// Issue signs a token carrying userID, valid for ttl from now.
func Issue(userID uint64, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Verify checks signature and expiry atomically and returns the claims.
// Expiry and all other failures are told apart so callers can choose the
// user-facing message; nothing else about the error is surfaced.
func Verify(tokenString, secret string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, ErrInvalid
	}

	return claims, nil
}

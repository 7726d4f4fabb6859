// Package auth issues and verifies the HS256 access tokens handed out by
// the user service.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/plantvision/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the registered claims plus the user id and whether the
// account is anonymous.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"uid"`
	Anonymous bool   `json:"anon,omitempty"`
}

// Identity is what the transport layer learns from a valid token.
type Identity struct {
	UserID    string
	Anonymous bool
}

func GenerateToken(id Identity, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID:    id.UserID,
		Anonymous: id.Anonymous,
	})

	return token.SignedString(secretKey)
}

// ParseToken verifies tokenString. Expired tokens yield
// common.ErrTokenExpired; anything else invalid yields
// common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, common.ErrTokenExpired
		}
		return Identity{}, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return Identity{}, common.ErrInvalidToken
	}

	return Identity{UserID: claims.UserID, Anonymous: claims.Anonymous}, nil
}

// GetUserIDFromToken is ParseToken for callers that only need the id.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	id, err := ParseToken(tokenString, secretKey)
	if err != nil {
		return "", err
	}
	return id.UserID, nil
}

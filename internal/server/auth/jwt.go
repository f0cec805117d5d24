// Package auth implements the credential primitives of the server:
// stateless signed tokens and one-way password hashing.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/teakeeper/internal/common"
)

// Claims is the set of assertions carried by an access token: the standard
// registered claims plus the durable account ID and the user-facing display ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"uid"`
	DisplayID int    `json:"display_id"`
}

// GenerateToken mints an HS256-signed token binding userID (and displayID)
// to an absolute expiry of now + validityDuration.
func GenerateToken(userID string, displayID int, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:    userID,
		DisplayID: displayID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates tokenString and returns its claims. Malformed
// encoding, a signature mismatch, and an expired timestamp all collapse into
// common.ErrInvalidToken so that callers cannot distinguish the cases.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

// Package token issues and verifies stateless bearer tokens. There is no
// server-side revocation list: logout is client-side token discard. Known
// scope limitation.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BrahmVanH/uw-pantry-service/internal/model"
)

// Claims represents JWT claims carrying the subject identity. The subject id
// travels in the registered "sub" claim; email is a custom claim.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWT issues and verifies bearer tokens backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
}

// NewJWT creates a new token issuer/verifier with the provided secret key.
func NewJWT(secretKey string) *JWT {
	return &JWT{secretKey: []byte(secretKey)}
}

const tokenTTL = 24 * time.Hour

// Issue creates a signed token embedding the subject id, email, and an
// absolute expiry 24 hours from now.
func (j *JWT) Issue(subjectID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		Email: email,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify checks signature and expiry and returns the embedded claims.
// Missing, tampered, or expired tokens yield model.ErrUnauthorized.
func (j *JWT) Verify(tokenString string) (Claims, error) {
	if tokenString == "" {
		return Claims{}, fmt.Errorf("%w: missing token", model.ErrUnauthorized)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: invalid token", model.ErrUnauthorized)
	}
	if !token.Valid {
		return Claims{}, fmt.Errorf("%w: invalid token", model.ErrUnauthorized)
	}
	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("%w: token has no subject", model.ErrUnauthorized)
	}

	return *claims, nil
}

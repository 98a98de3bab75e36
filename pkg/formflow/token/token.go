// Package token issues and validates the mock HS256 credentials used by
// the fixture's /token endpoint. These are test fixtures only: the signing
// secret is baked in and the tokens carry no real authority.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer is the iss claim on every minted token.
const Issuer = "formflow-fixture"

// signingKey is deliberately public. Do not reuse outside tests.
var signingKey = []byte("formflow-fixture-secret")

var (
	// ErrExpired means the token's exp claim is in the past.
	ErrExpired = errors.New("token has expired")
	// ErrInvalid means the token failed parsing or signature checks.
	ErrInvalid = errors.New("invalid token")
)

// Claims is the payload carried by a mock credential.
type Claims struct {
	jwt.RegisteredClaims
}

// Issue mints an HS256 token for subject, valid for ttl.
func Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate parses raw, verifies the signature and checks expiry.
func Validate(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return claims, nil
}

// Package jwtx signs and verifies the bearer tokens the service issues.
//
// Tokens are symmetric (HMAC family): any process holding the shared secret
// can verify tokens issued by any other, so no session state or key
// distribution is needed to scale horizontally.
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the reference token lifetime. Fixed at issuance;
// a token is never renewed, the caller re-authenticates instead.
const DefaultAccessTokenTTL = 400 * time.Minute

// Claims is the payload embedded in an access token. The subject carries the
// username the token asserts ownership of.
type Claims struct {
	jwt.RegisteredClaims
}

// NewAccessClaims builds minimally-correct claims for a subject.
func NewAccessClaims(subject, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

// ValidateIssuer checks the issuer when one is expected.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

package jwtx

import "errors"

// Verifier validates a token string and gives back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	// ErrMalformed reports a token that cannot be parsed at all.
	ErrMalformed = errors.New("jwtx: malformed token")

	// ErrInvalidSig reports a signature that does not match the secret, or a
	// token signed with an algorithm the verifier does not accept.
	ErrInvalidSig = errors.New("jwtx: invalid signature")

	// ErrExpired reports a token past its embedded expiry.
	ErrExpired = errors.New("jwtx: token expired")

	// ErrIssuer reports an issuer mismatch.
	ErrIssuer = errors.New("jwtx: issuer mismatch")

	// ErrUnsupportedAlg reports a configured algorithm outside the HMAC family.
	ErrUnsupportedAlg = errors.New("jwtx: unsupported signing algorithm")
)

// Package cryptox implements password hashing for stored credentials.
//
// Digests are PHC-format Argon2id strings that embed the algorithm version,
// cost parameters and salt, so the work factor can be raised later without
// invalidating digests already on disk.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for newly created digests. Verification always uses the
// parameters embedded in the digest being checked.
const (
	memory      = 19 * 1024 // KiB
	iterations  = 2
	parallelism = 1
	keyLength   = 32
	saltLength  = 16
)

// ErrPasswordMismatch is returned by VerifyPassword when the password does
// not match the digest. Malformed digests also verify as a mismatch; they are
// reported with a distinct error but callers should treat both the same.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword derives a PHC-format Argon2id digest with a fresh random salt,
// so hashing the same password twice yields different digests.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyPassword recomputes the hash using the parameters and salt embedded
// in encodedDigest and compares in constant time. It returns nil on match and
// an error otherwise; it never panics on attacker-supplied input.
func VerifyPassword(password, encodedDigest string) error {
	params, salt, want, err := decodeDigest(encodedDigest)
	if err != nil {
		return err
	}

	got := argon2.IDKey([]byte(password), salt, params.iterations, params.memory, params.parallelism, uint32(len(want)))
	if subtle.ConstantTimeCompare(got, want) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}

type digestParams struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
}

// decodeDigest splits a "$argon2id$v=19$m=..,t=..,p=..$salt$hash" string into
// its parameters, salt and raw hash.
func decodeDigest(encoded string) (digestParams, []byte, []byte, error) {
	var p digestParams

	parts := splitDollar(encoded)
	if len(parts) != 6 {
		return p, nil, nil, errors.New("cryptox: invalid digest: expected 6 parts")
	}
	if parts[1] != "argon2id" {
		return p, nil, nil, errors.New("cryptox: invalid digest: not argon2id")
	}
	if parts[2] != "v=19" {
		return p, nil, nil, errors.New("cryptox: invalid digest: wrong version")
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.iterations, &p.parallelism); err != nil {
		return p, nil, nil, fmt.Errorf("cryptox: invalid digest: parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("cryptox: invalid digest: salt: %w", err)
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("cryptox: invalid digest: hash: %w", err)
	}
	if len(hash) == 0 {
		return p, nil, nil, errors.New("cryptox: invalid digest: empty hash")
	}

	return p, salt, hash, nil
}

func splitDollar(s string) []string {
	parts := make([]string, 0, 6)
	start := 0
	for i := range len(s) {
		if s[i] == '$' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testIssuer = "emporium-test"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestPair(t *testing.T) (*HMACSigner, *HMACVerifier) {
	t.Helper()

	signer, err := NewSignerHMAC("HS256", testSecret)
	require.NoError(t, err)
	verifier, err := NewVerifierHMAC("HS256", testSecret, testIssuer)
	require.NoError(t, err)
	return signer, verifier
}

func TestSignVerifyRoundTrip(t *testing.T) {
	t.Parallel()
	signer, verifier := newTestPair(t)

	now := time.Now().UTC()
	token, err := signer.Sign(NewAccessClaims("alice", testIssuer, time.Hour, now))
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Len(t, strings.Split(token, "."), 3, "compact JWS form")

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Subject)
	require.WithinDuration(t, now.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()
	signer, verifier := newTestPair(t)

	// Issued far enough in the past that the TTL has already elapsed.
	issuedAt := time.Now().UTC().Add(-2 * time.Hour)
	token, err := signer.Sign(NewAccessClaims("alice", testIssuer, time.Hour, issuedAt))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerify_WrongKey(t *testing.T) {
	t.Parallel()
	_, verifier := newTestPair(t)

	other, err := NewSignerHMAC("HS256", []byte("a-completely-different-secret!!!"))
	require.NoError(t, err)

	token, err := other.Sign(NewAccessClaims("alice", testIssuer, time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()
	_, verifier := newTestPair(t)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d", "%%%.###.$$$"} {
		_, err := verifier.Verify(raw)
		require.ErrorIs(t, err, ErrMalformed, "input %q", raw)
	}
}

func TestVerify_RejectsForeignAlgorithm(t *testing.T) {
	t.Parallel()
	_, verifier := newTestPair(t)

	// Same secret, different HMAC variant: the verifier is pinned to HS256.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512,
		NewAccessClaims("alice", testIssuer, time.Hour, time.Now().UTC()),
	).SignedString(testSecret)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerify_IssuerMismatch(t *testing.T) {
	t.Parallel()
	signer, verifier := newTestPair(t)

	token, err := signer.Sign(NewAccessClaims("alice", "someone-else", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestNewSignerHMAC_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewSignerHMAC("RS256", testSecret)
	require.ErrorIs(t, err, ErrUnsupportedAlg)

	_, err = NewSignerHMAC("none", testSecret)
	require.ErrorIs(t, err, ErrUnsupportedAlg)

	_, err = NewSignerHMAC("HS256", nil)
	require.Error(t, err)

	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		s, err := NewSignerHMAC(alg, testSecret)
		require.NoError(t, err)
		require.Equal(t, alg, s.Alg())
	}
}

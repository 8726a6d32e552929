package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/marketloft/emporium/internal/shop/domain"
	"github.com/marketloft/emporium/internal/shop/store"
	"github.com/marketloft/emporium/pkg/cryptox"
	"github.com/marketloft/emporium/pkg/idx"
	"github.com/marketloft/emporium/pkg/jwtx"
	"github.com/marketloft/emporium/pkg/slogx"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrDuplicateUsername reports a registration conflict.
	ErrDuplicateUsername = errors.New("duplicate_username")

	// ErrUnknownSubject reports a valid token whose subject no longer exists
	// (user deleted after issuance).
	ErrUnknownSubject = errors.New("unknown_subject")
)

// AuthService orchestrates credential verification, token issuance and
// identity resolution. The signer/verifier pair is built once at startup from
// the process-wide secret and injected here; nothing reads the environment at
// request time.
type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TokenTTL time.Duration
}

// Authenticate verifies a username/password pair and returns the user on
// success. Unknown users and wrong passwords collapse into the same error so
// the login surface cannot be used to enumerate usernames.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			l.Info("authentication failed", slog.String("username", username))
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("authentication failed", slog.String("username", username))
		return domain.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken signs an access token asserting the user's username, expiring
// after the fixed TTL. Tokens are never renewed or revoked; they just expire.
func (s *AuthService) IssueToken(user domain.User) (domain.AccessToken, error) {
	claims := jwtx.NewAccessClaims(user.Username, s.Issuer, s.TokenTTL, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.AccessToken{}, err
	}
	return domain.AccessToken{
		Token:     token,
		TokenType: "bearer",
		ExpiresIn: s.TokenTTL,
	}, nil
}

// Register creates a new account. The lookup and insert run in one store
// transaction; the storage UNIQUE constraint is the backstop for concurrent
// registrations racing on the same username.
func (s *AuthService) Register(ctx context.Context, username, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByUsername(ctx, username); err == nil {
			return ErrDuplicateUsername
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		if err := tx.Users().CreateUser(ctx, user); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateUsername
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateUsername) {
			l.Warn("registration conflict", slog.String("username", username))
		}
		return domain.User{}, err
	}

	l.Info("user registered", slog.String("username", username), slog.String("user_id", user.ID))

	// Re-read for storage-assigned timestamps.
	return s.Store.Users().GetUserByID(ctx, user.ID)
}

// ResolveIdentity verifies a bearer token and loads the user it asserts.
// Codec failures (expired, bad signature, malformed) pass through; a token
// whose subject has since been deleted returns ErrUnknownSubject.
func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (domain.User, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return domain.User{}, err
	}
	if claims.Subject == "" {
		return domain.User{}, jwtx.ErrMalformed
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUnknownSubject
		}
		return domain.User{}, err
	}
	return user, nil
}

// IsAuthError reports whether err belongs to the authentication taxonomy, as
// opposed to an infrastructure failure. The gate collapses everything in the
// taxonomy into one user-visible 401.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUnknownSubject) ||
		errors.Is(err, jwtx.ErrMalformed) ||
		errors.Is(err, jwtx.ErrInvalidSig) ||
		errors.Is(err, jwtx.ErrExpired) ||
		errors.Is(err, jwtx.ErrIssuer)
}

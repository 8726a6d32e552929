package service

import (
	"context"
	"errors"

	"github.com/marketloft/emporium/internal/shop/domain"
	"github.com/marketloft/emporium/internal/shop/store"
	"github.com/marketloft/emporium/pkg/cryptox"
)

// UserService exposes account management beyond registration, which lives on
// AuthService because it owns the password hashing policy.
type UserService struct {
	Store store.Store
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.Store.Users().ListUsers(ctx)
}

// UpdateUser replaces both the username and the password of an account. The
// new password is re-hashed under the current parameters; already issued
// tokens stay valid until they expire.
func (s *UserService) UpdateUser(ctx context.Context, id, username, password string) (domain.User, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	var updated domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdateUser(ctx, id, username, hash); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateUsername
			}
			return err
		}
		updated, err = tx.Users().GetUserByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}
	return updated, nil
}

// DeleteUser removes an account and returns the record as it stood before
// deletion. Cart items and purchases owned by the user cascade away with it.
func (s *UserService) DeleteUser(ctx context.Context, id string) (domain.User, error) {
	var deleted domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		deleted, err = tx.Users().GetUserByID(ctx, id)
		if err != nil {
			return err
		}
		return tx.Users().DeleteUser(ctx, id)
	})
	if err != nil {
		return domain.User{}, err
	}
	return deleted, nil
}

package service

import (
	"context"

	"github.com/marketloft/emporium/internal/shop/domain"
	"github.com/marketloft/emporium/internal/shop/store"
	"github.com/marketloft/emporium/pkg/idx"
)

// CartService manages per-user cart items.
type CartService struct {
	Store store.Store
}

func (s *CartService) ListCartItems(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return s.Store.CartItems().ListCartItemsByUser(ctx, userID)
}

// AddCartItem places a product in a user's cart. Both the user and the
// product are checked inside the transaction so a stale reference surfaces as
// not-found rather than a foreign key failure.
func (s *CartService) AddCartItem(ctx context.Context, userID, productID string, quantity int64) (domain.CartItem, error) {
	item := domain.CartItem{
		ID:        idx.New().String(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}

	var created domain.CartItem
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByID(ctx, userID); err != nil {
			return err
		}
		if _, err := tx.Products().GetProductByID(ctx, productID); err != nil {
			return err
		}
		if err := tx.CartItems().CreateCartItem(ctx, item); err != nil {
			return err
		}
		var err error
		created, err = tx.CartItems().GetCartItemByID(ctx, item.ID)
		return err
	})
	if err != nil {
		return domain.CartItem{}, err
	}
	return created, nil
}

func (s *CartService) UpdateCartItem(ctx context.Context, id, productID string, quantity int64) (domain.CartItem, error) {
	var updated domain.CartItem
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Products().GetProductByID(ctx, productID); err != nil {
			return err
		}
		if err := tx.CartItems().UpdateCartItem(ctx, id, productID, quantity); err != nil {
			return err
		}
		var err error
		updated, err = tx.CartItems().GetCartItemByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.CartItem{}, err
	}
	return updated, nil
}

func (s *CartService) RemoveCartItem(ctx context.Context, id string) (domain.CartItem, error) {
	var removed domain.CartItem
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		removed, err = tx.CartItems().GetCartItemByID(ctx, id)
		if err != nil {
			return err
		}
		return tx.CartItems().DeleteCartItem(ctx, id)
	})
	if err != nil {
		return domain.CartItem{}, err
	}
	return removed, nil
}

package service

import (
	"context"

	"github.com/marketloft/emporium/internal/shop/domain"
	"github.com/marketloft/emporium/internal/shop/store"
	"github.com/marketloft/emporium/pkg/idx"
)

// PurchaseService records completed orders. A purchase is a flat record of
// user and total; line-item history stays in the cart until the client clears
// it.
type PurchaseService struct {
	Store store.Store
}

func (s *PurchaseService) ListPurchases(ctx context.Context, userID string) ([]domain.Purchase, error) {
	return s.Store.Purchases().ListPurchasesByUser(ctx, userID)
}

func (s *PurchaseService) CreatePurchase(ctx context.Context, userID string, totalPrice float64) (domain.Purchase, error) {
	p := domain.Purchase{
		ID:         idx.New().String(),
		UserID:     userID,
		TotalPrice: totalPrice,
	}

	var created domain.Purchase
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByID(ctx, userID); err != nil {
			return err
		}
		if err := tx.Purchases().CreatePurchase(ctx, p); err != nil {
			return err
		}
		var err error
		created, err = tx.Purchases().GetPurchaseByID(ctx, p.ID)
		return err
	})
	if err != nil {
		return domain.Purchase{}, err
	}
	return created, nil
}

func (s *PurchaseService) UpdatePurchase(ctx context.Context, id string, totalPrice float64) (domain.Purchase, error) {
	var updated domain.Purchase
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Purchases().UpdatePurchase(ctx, id, totalPrice); err != nil {
			return err
		}
		var err error
		updated, err = tx.Purchases().GetPurchaseByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.Purchase{}, err
	}
	return updated, nil
}

func (s *PurchaseService) DeletePurchase(ctx context.Context, id string) (domain.Purchase, error) {
	var deleted domain.Purchase
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		deleted, err = tx.Purchases().GetPurchaseByID(ctx, id)
		if err != nil {
			return err
		}
		return tx.Purchases().DeletePurchase(ctx, id)
	})
	if err != nil {
		return domain.Purchase{}, err
	}
	return deleted, nil
}

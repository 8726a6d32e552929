package service

import (
	"context"

	"github.com/marketloft/emporium/internal/shop/domain"
	"github.com/marketloft/emporium/internal/shop/store"
	"github.com/marketloft/emporium/pkg/idx"
)

// ProductService manages the catalog.
type ProductService struct {
	Store store.Store
}

func (s *ProductService) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	return s.Store.Products().GetProductByID(ctx, id)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.Store.Products().ListProducts(ctx)
}

func (s *ProductService) CreateProduct(ctx context.Context, name, description string, price float64, stock int64) (domain.Product, error) {
	p := domain.Product{
		ID:          idx.New().String(),
		Name:        name,
		Description: description,
		Price:       price,
		Stock:       stock,
	}
	if err := s.Store.Products().CreateProduct(ctx, p); err != nil {
		return domain.Product{}, err
	}
	return s.Store.Products().GetProductByID(ctx, p.ID)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id, name, description string, price float64, stock int64) (domain.Product, error) {
	var updated domain.Product
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		p := domain.Product{
			ID:          id,
			Name:        name,
			Description: description,
			Price:       price,
			Stock:       stock,
		}
		if err := tx.Products().UpdateProduct(ctx, p); err != nil {
			return err
		}
		var err error
		updated, err = tx.Products().GetProductByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.Product{}, err
	}
	return updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) (domain.Product, error) {
	var deleted domain.Product
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		deleted, err = tx.Products().GetProductByID(ctx, id)
		if err != nil {
			return err
		}
		return tx.Products().DeleteProduct(ctx, id)
	})
	if err != nil {
		return domain.Product{}, err
	}
	return deleted, nil
}

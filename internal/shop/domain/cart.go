package domain

import "time"

// CartItem is a product/quantity pair sitting in a user's cart.
type CartItem struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

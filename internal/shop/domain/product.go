package domain

import "time"

// Product is a catalog entry. Names are unique across the catalog.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Stock       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package domain

import "time"

// Purchase records a completed checkout total for a user.
type Purchase struct {
	ID         string
	UserID     string
	TotalPrice float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

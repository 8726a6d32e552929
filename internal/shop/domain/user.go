package domain

import "time"

// User is a registered account. Only the argon2id digest of the password is
// ever stored; the plaintext never leaves the registration/login request.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

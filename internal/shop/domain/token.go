package domain

import "time"

// AccessToken is what a successful login or registration hands back: the
// signed bearer token and how long it stays valid. There is no server-side
// record of issued tokens; expiry and signature are the whole lifecycle.
type AccessToken struct {
	Token     string
	TokenType string // always "bearer"
	ExpiresIn time.Duration
}

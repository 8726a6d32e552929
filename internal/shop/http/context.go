package http

import (
	"context"

	"github.com/marketloft/emporium/internal/shop/domain"
)

type ctxKeyUser struct{}

func contextWithUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, ctxKeyUser{}, user)
}

// UserFromContext returns the identity attached by the bearer gate.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	user, ok := ctx.Value(ctxKeyUser{}).(domain.User)
	return user, ok
}

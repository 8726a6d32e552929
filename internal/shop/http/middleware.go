package http

import (
	"net/http"
	"strings"

	"github.com/marketloft/emporium/internal/shop/service"
	"github.com/marketloft/emporium/pkg/httpx"
	"github.com/marketloft/emporium/pkg/slogx"
)

// requireUser is the bearer gate: it extracts the Authorization header,
// resolves the token to a live user and attaches it to the request context.
// Every rejection, whatever the internal cause, surfaces as the same 401 so
// the response cannot be used to probe token state.
func requireUser(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				httpx.WriteBearerError(w, "could not validate credentials")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			user, err := auth.ResolveIdentity(ctx, raw)
			if err != nil {
				if service.IsAuthError(err) {
					log.Warn("bearer token rejected", "err", err)
					httpx.WriteBearerError(w, "could not validate credentials")
					return
				}
				log.Error("identity resolution failed", "err", err)
				httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithUser(ctx, user)))
		})
	}
}

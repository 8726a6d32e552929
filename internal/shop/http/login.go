package http

import (
	"net/http"

	"github.com/marketloft/emporium/internal/shop/service"
	"github.com/marketloft/emporium/pkg/httpx"
	"github.com/marketloft/emporium/pkg/slogx"
)

// TokenHandler exchanges a username/password form for a bearer token.
type TokenHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /v1/token.
//
//	@Summary		Issue Access Token
//	@Description	Exchanges form credentials (username, password) for a signed bearer token.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string				true	"Account username"
//	@Param			password	formData	string				true	"Account password"
//	@Success		200			{object}	TokenResponse		"access_token, token_type, expires_in"
//	@Failure		400			{object}	httpx.ErrorResponse	"Missing or malformed form fields"
//	@Failure		401			{object}	httpx.ErrorResponse	"Unknown username or wrong password"
//	@Router			/v1/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid form body")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.AuthService.Authenticate(ctx, username, password)
	if err != nil {
		if service.IsAuthError(err) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			httpx.WriteError(w, http.StatusUnauthorized, "incorrect username or password")
			return
		}
		writeServiceError(w, log, err)
		return
	}

	token, err := h.AuthService.IssueToken(user)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, newTokenResponse(token))
}

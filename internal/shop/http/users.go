package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/marketloft/emporium/internal/shop/service"
	"github.com/marketloft/emporium/pkg/httpx"
	"github.com/marketloft/emporium/pkg/slogx"
)

// UsersHandler handles account registration and management.
type UsersHandler struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

type userRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req *userRequest) validate() string {
	if strings.TrimSpace(req.Username) == "" {
		return "username is required"
	}
	if req.Password == "" {
		return "password is required"
	}
	return ""
}

// HandleRegister handles POST /v1/users.
//
//	@Summary		Register Account
//	@Description	Creates a new account and issues an access token in the same response.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		userRequest			true	"username and password"
//	@Success		201		{object}	RegisterResponse	"user, access_token, token_type"
//	@Failure		400		{object}	httpx.ErrorResponse	"Invalid request body"
//	@Failure		409		{object}	httpx.ErrorResponse	"Username already registered"
//	@Failure		500		{object}	httpx.ErrorResponse	"Internal server error"
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	user, err := h.AuthService.Register(ctx, req.Username, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	token, err := h.AuthService.IssueToken(user)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, RegisterResponse{
		User:        newUserResponse(user),
		AccessToken: token.Token,
		TokenType:   token.TokenType,
	})
}

// HandleList handles GET /v1/users.
//
//	@Summary		List Accounts
//	@Description	Returns all registered accounts without credential material.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		UserResponse
//	@Failure		500	{object}	httpx.ErrorResponse	"Internal server error"
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newUserResponses(users))
}

// HandleUpdate handles PUT /v1/users/{id}.
//
//	@Summary		Update Account
//	@Description	Replaces the username and password of an account. The new password takes effect immediately; outstanding tokens remain valid until expiry.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"User ID"
//	@Param			request	body		userRequest			true	"new username and password"
//	@Success		200		{object}	UserResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Invalid request body"
//	@Failure		401		{object}	httpx.ErrorResponse	"Missing or invalid bearer token"
//	@Failure		404		{object}	httpx.ErrorResponse	"Unknown user"
//	@Failure		409		{object}	httpx.ErrorResponse	"Username already registered"
//	@Router			/v1/users/{id} [put].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	if actor, ok := UserFromContext(ctx); ok {
		log = log.With("actor", actor.Username)
	}

	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	user, err := h.UserService.UpdateUser(ctx, r.PathValue("id"), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newUserResponse(user))
}

// HandleDelete handles DELETE /v1/users/{id}.
//
//	@Summary		Delete Account
//	@Description	Removes an account along with its cart items and purchases, returning the record as it stood.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string				true	"User ID"
//	@Success		200	{object}	UserResponse
//	@Failure		401	{object}	httpx.ErrorResponse	"Missing or invalid bearer token"
//	@Failure		404	{object}	httpx.ErrorResponse	"Unknown user"
//	@Router			/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	if actor, ok := UserFromContext(ctx); ok {
		log = log.With("actor", actor.Username)
	}

	user, err := h.UserService.DeleteUser(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}
	log.Info("user deleted", "user_id", user.ID)

	httpx.WriteJSON(w, http.StatusOK, newUserResponse(user))
}

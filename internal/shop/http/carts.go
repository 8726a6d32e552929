package http

import (
	"encoding/json"
	"net/http"

	"github.com/marketloft/emporium/internal/shop/service"
	"github.com/marketloft/emporium/pkg/httpx"
	"github.com/marketloft/emporium/pkg/slogx"
)

// CartsHandler handles per-user cart item management.
type CartsHandler struct {
	CartService *service.CartService
}

type cartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

func (req *cartItemRequest) validate() string {
	if req.ProductID == "" {
		return "product_id is required"
	}
	if req.Quantity <= 0 {
		return "quantity must be positive"
	}
	return ""
}

// HandleList handles GET /v1/carts/{userID}.
//
//	@Summary	List Cart Items
//	@Tags		Carts
//	@Produce	json
//	@Security	BearerAuth
//	@Param		userID	path		string	true	"User ID"
//	@Success	200		{array}		CartItemResponse
//	@Failure	401		{object}	httpx.ErrorResponse	"Missing or invalid bearer token"
//	@Router		/v1/carts/{userID} [get].
func (h *CartsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	items, err := h.CartService.ListCartItems(ctx, r.PathValue("userID"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newCartItemResponses(items))
}

// HandleCreate handles POST /v1/carts/{userID}.
//
//	@Summary	Add Cart Item
//	@Tags		Carts
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		userID	path		string			true	"User ID"
//	@Param		request	body		cartItemRequest	true	"product_id and quantity"
//	@Success	201		{object}	CartItemResponse
//	@Failure	400		{object}	httpx.ErrorResponse	"Invalid request body"
//	@Failure	401		{object}	httpx.ErrorResponse	"Missing or invalid bearer token"
//	@Failure	404		{object}	httpx.ErrorResponse	"Unknown user or product"
//	@Router		/v1/carts/{userID} [post].
func (h *CartsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	item, err := h.CartService.AddCartItem(ctx, r.PathValue("userID"), req.ProductID, req.Quantity)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, newCartItemResponse(item))
}

// HandleUpdate handles PUT /v1/carts/{cartItemID}.
//
//	@Summary	Update Cart Item
//	@Tags		Carts
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		cartItemID	path		string			true	"Cart Item ID"
//	@Param		request		body		cartItemRequest	true	"product_id and quantity"
//	@Success	200			{object}	CartItemResponse
//	@Failure	400			{object}	httpx.ErrorResponse	"Invalid request body"
//	@Failure	401			{object}	httpx.ErrorResponse	"Missing or invalid bearer token"
//	@Failure	404			{object}	httpx.ErrorResponse	"Unknown cart item or product"
//	@Router		/v1/carts/{cartItemID} [put].
func (h *CartsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	item, err := h.CartService.UpdateCartItem(ctx, r.PathValue("cartItemID"), req.ProductID, req.Quantity)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newCartItemResponse(item))
}

// HandleDelete handles DELETE /v1/carts/{cartItemID}.
//
//	@Summary	Remove Cart Item
//	@Tags		Carts
//	@Produce	json
//	@Security	BearerAuth
//	@Param		cartItemID	path		string	true	"Cart Item ID"
//	@Success	200			{object}	CartItemResponse
//	@Failure	401			{object}	httpx.ErrorResponse	"Missing or invalid bearer token"
//	@Failure	404			{object}	httpx.ErrorResponse	"Unknown cart item"
//	@Router		/v1/carts/{cartItemID} [delete].
func (h *CartsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	item, err := h.CartService.RemoveCartItem(ctx, r.PathValue("cartItemID"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newCartItemResponse(item))
}

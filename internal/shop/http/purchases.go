package http

import (
	"encoding/json"
	"net/http"

	"github.com/marketloft/emporium/internal/shop/service"
	"github.com/marketloft/emporium/pkg/httpx"
	"github.com/marketloft/emporium/pkg/slogx"
)

// PurchasesHandler handles per-user order history.
type PurchasesHandler struct {
	PurchaseService *service.PurchaseService
}

type purchaseRequest struct {
	TotalPrice float64 `json:"total_price"`
}

func (req *purchaseRequest) validate() string {
	if req.TotalPrice < 0 {
		return "total_price must not be negative"
	}
	return ""
}

// HandleList handles GET /v1/purchases/{userID}.
//
//	@Summary	List Purchases
//	@Tags		Purchases
//	@Produce	json
//	@Security	BearerAuth
//	@Param		userID	path		string	true	"User ID"
//	@Success	200		{array}		PurchaseResponse
//	@Failure	401		{object}	httpx.ErrorResponse	"Missing or invalid bearer token"
//	@Router		/v1/purchases/{userID} [get].
func (h *PurchasesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	purchases, err := h.PurchaseService.ListPurchases(ctx, r.PathValue("userID"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newPurchaseResponses(purchases))
}

// HandleCreate handles POST /v1/purchases/{userID}.
//
//	@Summary	Record Purchase
//	@Tags		Purchases
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		userID	path		string			true	"User ID"
//	@Param		request	body		purchaseRequest	true	"total_price"
//	@Success	201		{object}	PurchaseResponse
//	@Failure	400		{object}	httpx.ErrorResponse	"Invalid request body"
//	@Failure	401		{object}	httpx.ErrorResponse	"Missing or invalid bearer token"
//	@Failure	404		{object}	httpx.ErrorResponse	"Unknown user"
//	@Router		/v1/purchases/{userID} [post].
func (h *PurchasesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	purchase, err := h.PurchaseService.CreatePurchase(ctx, r.PathValue("userID"), req.TotalPrice)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, newPurchaseResponse(purchase))
}

// HandleUpdate handles PUT /v1/purchases/{purchaseID}.
//
//	@Summary	Update Purchase
//	@Tags		Purchases
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		purchaseID	path		string			true	"Purchase ID"
//	@Param		request		body		purchaseRequest	true	"total_price"
//	@Success	200			{object}	PurchaseResponse
//	@Failure	400			{object}	httpx.ErrorResponse	"Invalid request body"
//	@Failure	401			{object}	httpx.ErrorResponse	"Missing or invalid bearer token"
//	@Failure	404			{object}	httpx.ErrorResponse	"Unknown purchase"
//	@Router		/v1/purchases/{purchaseID} [put].
func (h *PurchasesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	purchase, err := h.PurchaseService.UpdatePurchase(ctx, r.PathValue("purchaseID"), req.TotalPrice)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newPurchaseResponse(purchase))
}

// HandleDelete handles DELETE /v1/purchases/{purchaseID}.
//
//	@Summary	Delete Purchase
//	@Tags		Purchases
//	@Produce	json
//	@Security	BearerAuth
//	@Param		purchaseID	path		string	true	"Purchase ID"
//	@Success	200			{object}	PurchaseResponse
//	@Failure	401			{object}	httpx.ErrorResponse	"Missing or invalid bearer token"
//	@Failure	404			{object}	httpx.ErrorResponse	"Unknown purchase"
//	@Router		/v1/purchases/{purchaseID} [delete].
func (h *PurchasesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	purchase, err := h.PurchaseService.DeletePurchase(ctx, r.PathValue("purchaseID"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newPurchaseResponse(purchase))
}

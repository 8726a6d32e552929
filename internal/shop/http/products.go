package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/marketloft/emporium/internal/shop/service"
	"github.com/marketloft/emporium/pkg/httpx"
	"github.com/marketloft/emporium/pkg/slogx"
)

// ProductsHandler handles catalog management.
type ProductsHandler struct {
	ProductService *service.ProductService
}

type productRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int64   `json:"stock"`
}

func (req *productRequest) validate() string {
	if strings.TrimSpace(req.Name) == "" {
		return "name is required"
	}
	if req.Price < 0 {
		return "price must not be negative"
	}
	if req.Stock < 0 {
		return "stock must not be negative"
	}
	return ""
}

// HandleList handles GET /v1/products.
//
//	@Summary	List Products
//	@Tags		Products
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		ProductResponse
//	@Failure	401	{object}	httpx.ErrorResponse	"Missing or invalid bearer token"
//	@Router		/v1/products [get].
func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	products, err := h.ProductService.ListProducts(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newProductResponses(products))
}

// HandleCreate handles POST /v1/products.
//
//	@Summary	Create Product
//	@Tags		Products
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		productRequest	true	"name, description, price, stock"
//	@Success	201		{object}	ProductResponse
//	@Failure	400		{object}	httpx.ErrorResponse	"Invalid request body"
//	@Failure	401		{object}	httpx.ErrorResponse	"Missing or invalid bearer token"
//	@Failure	409		{object}	httpx.ErrorResponse	"Product name already exists"
//	@Router		/v1/products [post].
func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	product, err := h.ProductService.CreateProduct(ctx, req.Name, req.Description, req.Price, req.Stock)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, newProductResponse(product))
}

// HandleUpdate handles PUT /v1/products/{id}.
//
//	@Summary	Update Product
//	@Tags		Products
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string			true	"Product ID"
//	@Param		request	body		productRequest	true	"name, description, price, stock"
//	@Success	200		{object}	ProductResponse
//	@Failure	400		{object}	httpx.ErrorResponse	"Invalid request body"
//	@Failure	401		{object}	httpx.ErrorResponse	"Missing or invalid bearer token"
//	@Failure	404		{object}	httpx.ErrorResponse	"Unknown product"
//	@Router		/v1/products/{id} [put].
func (h *ProductsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON in request body")
		return
	}
	if msg := req.validate(); msg != "" {
		httpx.WriteError(w, http.StatusBadRequest, msg)
		return
	}

	product, err := h.ProductService.UpdateProduct(ctx, r.PathValue("id"), req.Name, req.Description, req.Price, req.Stock)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newProductResponse(product))
}

// HandleDelete handles DELETE /v1/products/{id}.
//
//	@Summary	Delete Product
//	@Tags		Products
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Product ID"
//	@Success	200	{object}	ProductResponse
//	@Failure	401	{object}	httpx.ErrorResponse	"Missing or invalid bearer token"
//	@Failure	404	{object}	httpx.ErrorResponse	"Unknown product"
//	@Router		/v1/products/{id} [delete].
func (h *ProductsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	product, err := h.ProductService.DeleteProduct(ctx, r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, newProductResponse(product))
}

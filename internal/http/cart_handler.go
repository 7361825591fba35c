package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/nav"
	"go.uber.org/zap"
)

type CartHandler struct {
	catalog catalog.Catalog
	timeout time.Duration
}

func NewCartHandler(c catalog.Catalog, timeout time.Duration) *CartHandler {
	return &CartHandler{
		catalog: c,
		timeout: timeout,
	}
}

type AddItemRequestDTO struct {
	ProductID int64 `json:"product_id"`
}

type CartResponse struct {
	Items []domain.Product `json:"items"`
	Count int              `json:"count"`
	Total float64          `json:"total"`
}

type ProductsResponse struct {
	Products []domain.Product `json:"products"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (h *CartHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.catalog.GetAllProducts(ctx)
	if err != nil {
		handleCatalogError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ProductsResponse{Products: products})
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	shell := ShellFromContext(r.Context())
	if shell == nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "missing session")
		return
	}

	respondJSON(w, http.StatusOK, newCartResponse(shell.Cart.Snapshot()))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	shell := ShellFromContext(r.Context())
	if shell == nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "missing session")
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	product, err := h.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		handleCatalogError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, newCartResponse(shell.Cart.Add(product)))
}

// GetBadge renders the badge as it would appear at the "path" query
// parameter, defaulting to the shop page.
func (h *CartHandler) GetBadge(w http.ResponseWriter, r *http.Request) {
	shell := ShellFromContext(r.Context())
	if shell == nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "missing session")
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		path = nav.ShopPath
	}

	respondJSON(w, http.StatusOK, shell.Badge.Render(path))
}

func newCartResponse(c domain.Cart) CartResponse {
	items := c.Items
	if items == nil {
		items = []domain.Product{}
	}
	return CartResponse{
		Items: items,
		Count: c.Len(),
		Total: c.Total(),
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func handleCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, "timeout", "catalog lookup timed out")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

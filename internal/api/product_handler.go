package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/paging"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/redact"
	"github.com/phrazzld/catalog-api/internal/store"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	products store.ProductStore
	pages    *paging.Resolver
	logger   *slog.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products store.ProductStore, pages *paging.Resolver, logger *slog.Logger) *ProductHandler {
	if products == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("products store cannot be nil for ProductHandler")
	}
	if pages == nil {
		pages = paging.NewResolver(paging.DefaultLimit, paging.DefaultMaxLimit)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ProductHandler{
		products: products,
		pages:    pages,
		logger:   logger.With(slog.String("component", "product_handler")),
	}
}

// CreateProduct handles POST /products requests
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req ProductRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p := req.toDomain(0)
	if err := h.products.Create(r.Context(), p); err != nil {
		log.Error("failed to create product", slog.String("error", redact.Error(err)))
		HandleAPIError(w, r, err, "Failed to create product")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, productToResponse(p))
}

// ListProducts handles GET /products requests.
// Query parameters: cursor, limit, orderByField, orderByDirection.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, ok := resolvePage(w, r, h.pages, store.ProductSortColumns)
	if !ok {
		return
	}

	products, err := h.products.List(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list products")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(products, productToResponse))
}

// GetProduct handles GET /products/{id} requests
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	p, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get product")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, productToResponse(p))
}

// UpdateProduct handles PUT /products/{id} requests.
// Every writable field is replaced.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	var req ProductRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p := req.toDomain(id)
	if err := h.products.Update(r.Context(), p); err != nil {
		HandleAPIError(w, r, err, "Failed to update product")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, productToResponse(p))
}

// DeleteProduct handles DELETE /products/{id} requests.
// The product's ads are deleted with it.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	if err := h.products.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete product")
		return
	}

	log.Info("product deleted", slog.Int64("product_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Product deleted successfully"})
}

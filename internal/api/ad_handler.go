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

// AdHandler handles ad-related HTTP requests
type AdHandler struct {
	ads    store.AdStore
	pages  *paging.Resolver
	logger *slog.Logger
}

// NewAdHandler creates a new AdHandler
func NewAdHandler(ads store.AdStore, pages *paging.Resolver, logger *slog.Logger) *AdHandler {
	if ads == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("ad store cannot be nil for AdHandler")
	}
	if pages == nil {
		pages = paging.NewResolver(paging.DefaultLimit, paging.DefaultMaxLimit)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AdHandler{
		ads:    ads,
		pages:  pages,
		logger: logger.With(slog.String("component", "ad_handler")),
	}
}

// CreateAd handles POST /ads requests
func (h *AdHandler) CreateAd(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AdRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	a := req.toDomain(0)
	if err := h.ads.Create(r.Context(), a); err != nil {
		log.Error("failed to create ad", slog.String("error", redact.Error(err)))
		HandleAPIError(w, r, err, "Failed to create ad")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, adToResponse(a))
}

// ListAds handles GET /ads requests.
// Query parameters: cursor, limit, orderByField, orderByDirection.
func (h *AdHandler) ListAds(w http.ResponseWriter, r *http.Request) {
	page, ok := resolvePage(w, r, h.pages, store.AdSortColumns)
	if !ok {
		return
	}

	ads, err := h.ads.List(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list ads")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(ads, adToResponse))
}

// GetAd handles GET /ads/{id} requests
func (h *AdHandler) GetAd(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	a, err := h.ads.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get ad")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, adToResponse(a))
}

// UpdateAd handles PUT /ads/{id} requests.
// Every writable field is replaced.
func (h *AdHandler) UpdateAd(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	var req AdRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	a := req.toDomain(id)
	if err := h.ads.Update(r.Context(), a); err != nil {
		HandleAPIError(w, r, err, "Failed to update ad")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, adToResponse(a))
}

// DeleteAd handles DELETE /ads/{id} requests
func (h *AdHandler) DeleteAd(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	if err := h.ads.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete ad")
		return
	}

	log.Info("ad deleted", slog.Int64("ad_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Ad deleted successfully"})
}

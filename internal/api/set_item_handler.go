package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/paging"
	"github.com/phrazzld/catalog-api/internal/platform/logger"
	"github.com/phrazzld/catalog-api/internal/redact"
	"github.com/phrazzld/catalog-api/internal/service"
	"github.com/phrazzld/catalog-api/internal/store"
)

// SetItemHandler handles set item HTTP requests. Writes go through
// service.SetItemService, which may check the item's references; reads and
// deletes go straight to the store.
type SetItemHandler struct {
	items   store.SetItemStore
	service service.SetItemService
	pages   *paging.Resolver
	logger  *slog.Logger
}

// NewSetItemHandler creates a new SetItemHandler
func NewSetItemHandler(
	items store.SetItemStore,
	svc service.SetItemService,
	pages *paging.Resolver,
	logger *slog.Logger,
) *SetItemHandler {
	if items == nil || svc == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("set item store and service cannot be nil for SetItemHandler")
	}
	if pages == nil {
		pages = paging.NewResolver(paging.DefaultLimit, paging.DefaultMaxLimit)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SetItemHandler{
		items:   items,
		service: svc,
		pages:   pages,
		logger:  logger.With(slog.String("component", "set_item_handler")),
	}
}

// CreateSetItem handles POST /set_items requests
func (h *SetItemHandler) CreateSetItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SetItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	si := req.toDomain(0)
	if err := h.service.Create(r.Context(), si); err != nil {
		log.Error("failed to create set item", slog.String("error", redact.Error(err)))
		HandleAPIError(w, r, err, "Failed to create set item")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, setItemToResponse(si))
}

// ListSetItems handles GET /set_items requests
func (h *SetItemHandler) ListSetItems(w http.ResponseWriter, r *http.Request) {
	page, ok := resolvePage(w, r, h.pages, store.SetItemSortColumns)
	if !ok {
		return
	}

	items, err := h.items.List(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list set items")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(items, setItemToResponse))
}

// GetSetItem handles GET /set_items/{id} requests
func (h *SetItemHandler) GetSetItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	si, err := h.items.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get set item")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, setItemToResponse(si))
}

// UpdateSetItem handles PUT /set_items/{id} requests
func (h *SetItemHandler) UpdateSetItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	var req SetItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	si := req.toDomain(id)
	if err := h.service.Update(r.Context(), si); err != nil {
		HandleAPIError(w, r, err, "Failed to update set item")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, setItemToResponse(si))
}

// DeleteSetItem handles DELETE /set_items/{id} requests
func (h *SetItemHandler) DeleteSetItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	if err := h.items.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete set item")
		return
	}

	log.Info("set item deleted", slog.Int64("set_item_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Set item deleted successfully"})
}

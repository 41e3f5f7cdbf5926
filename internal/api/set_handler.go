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

// SetHandler handles set-related HTTP requests
type SetHandler struct {
	sets   store.SetStore
	pages  *paging.Resolver
	logger *slog.Logger
}

// NewSetHandler creates a new SetHandler
func NewSetHandler(sets store.SetStore, pages *paging.Resolver, logger *slog.Logger) *SetHandler {
	if sets == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("set store cannot be nil for SetHandler")
	}
	if pages == nil {
		pages = paging.NewResolver(paging.DefaultLimit, paging.DefaultMaxLimit)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SetHandler{
		sets:   sets,
		pages:  pages,
		logger: logger.With(slog.String("component", "set_handler")),
	}
}

// CreateSet handles POST /sets requests
func (h *SetHandler) CreateSet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	set := req.toDomain(0)
	if err := h.sets.Create(r.Context(), set); err != nil {
		log.Error("failed to create set", slog.String("error", redact.Error(err)))
		HandleAPIError(w, r, err, "Failed to create set")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, setToResponse(set))
}

// ListSets handles GET /sets requests.
// Query parameters: cursor, limit, orderByField, orderByDirection.
func (h *SetHandler) ListSets(w http.ResponseWriter, r *http.Request) {
	page, ok := resolvePage(w, r, h.pages, store.SetSortColumns)
	if !ok {
		return
	}

	sets, err := h.sets.List(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list sets")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(sets, setToResponse))
}

// GetSet handles GET /sets/{id} requests
func (h *SetHandler) GetSet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	set, err := h.sets.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get set")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, setToResponse(set))
}

// UpdateSet handles PUT /sets/{id} requests.
// Every writable field is replaced.
func (h *SetHandler) UpdateSet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	var req SetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	set := req.toDomain(id)
	if err := h.sets.Update(r.Context(), set); err != nil {
		HandleAPIError(w, r, err, "Failed to update set")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, setToResponse(set))
}

// DeleteSet handles DELETE /sets/{id} requests.
// The set's items are deleted with it.
func (h *SetHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathID(w, r, log)
	if !ok {
		return
	}

	if err := h.sets.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete set")
		return
	}

	log.Info("set deleted", slog.Int64("set_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Set deleted successfully"})
}

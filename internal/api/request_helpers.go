package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/paging"
)

// idParam is the path parameter holding a record id.
const idParam = "id"

// getPathID extracts a positive int64 id from the URL path parameters.
//
// Returns:
//   - (id, nil): The parsed id if valid
//   - (0, error): A *domain.ValidationError if the parameter is missing or not a positive integer
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrEmptyField)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}

// handlePathID extracts the id path parameter and writes an error response
// if extraction fails.
//
// Returns:
//   - (id, true): The id if it was extracted successfully
//   - (0, false): Zero and false if extraction failed and an error was written
func handlePathID(w http.ResponseWriter, r *http.Request, log *slog.Logger) (int64, bool) {
	id, err := getPathID(r, idParam)
	if err != nil {
		log.Debug("invalid path id", slog.String("value", chi.URLParam(r, idParam)))
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return id, true
}

// decodeAndValidate decodes the JSON body into req and checks its validate
// tags, writing a 400 response on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(w, r, req); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}

// resolvePage resolves the list query parameters, writing a 400 response on
// failure.
func resolvePage(
	w http.ResponseWriter,
	r *http.Request,
	pages *paging.Resolver,
	sortable []string,
) (paging.PageRequest, bool) {
	page, err := pages.Resolve(r.URL.Query(), sortable)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return paging.PageRequest{}, false
	}
	return page, true
}

package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"reelvault/models"
)

// DetailsHandler serves the combined details-page payload: the composite
// title details plus an optional trailer reference, fetched concurrently
// by the metadata service so a details screen costs one request here.
type DetailsHandler struct {
	Metadata metadataService
}

func NewDetailsHandler(service metadataService) *DetailsHandler {
	return &DetailsHandler{Metadata: service}
}

// GetDetailsBundle returns all details-page data in a single response.
// Query params: id (required), type (movie|series, optional), title and
// name (optional, used for classification and the trailer query).
func (h *DetailsHandler) GetDetailsBundle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	id, err := strconv.ParseInt(strings.TrimSpace(query.Get("id")), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "a numeric id is required", http.StatusBadRequest)
		return
	}

	item := models.CatalogItem{
		ID:        id,
		MediaType: models.MediaTypeUnknown,
		Title:     strings.TrimSpace(query.Get("title")),
		Name:      strings.TrimSpace(query.Get("name")),
	}
	switch strings.ToLower(strings.TrimSpace(query.Get("type"))) {
	case "movie":
		item.MediaType = models.MediaTypeMovie
	case "tv", "series":
		item.MediaType = models.MediaTypeSeries
	}

	bundle, err := h.Metadata.DetailsBundle(r.Context(), item)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bundle)
}

package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"reelvault/models"
	"reelvault/services/metadata"
)

type metadataService interface {
	Trending(context.Context, string) ([]models.CatalogItem, error)
	PopularMovies(context.Context) ([]models.CatalogItem, error)
	TopRatedMovies(context.Context) ([]models.CatalogItem, error)
	UpcomingMovies(context.Context) ([]models.CatalogItem, error)
	SearchMovies(context.Context, string) ([]models.CatalogItem, error)
	DetailsBundle(context.Context, models.CatalogItem) (*models.DetailsBundle, error)
}

var _ metadataService = (*metadata.Service)(nil)

// CatalogHandler serves the browse feeds: trending, popular, top rated,
// upcoming, and title search.
type CatalogHandler struct {
	Metadata metadataService
}

func NewCatalogHandler(service metadataService) *CatalogHandler {
	return &CatalogHandler{Metadata: service}
}

func (h *CatalogHandler) Trending(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	mediaType := strings.TrimSpace(vars["mediaType"])

	items, err := h.Metadata.Trending(r.Context(), mediaType)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) Popular(w http.ResponseWriter, r *http.Request) {
	items, err := h.Metadata.PopularMovies(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) TopRated(w http.ResponseWriter, r *http.Request) {
	items, err := h.Metadata.TopRatedMovies(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	items, err := h.Metadata.UpcomingMovies(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		http.Error(w, "query is required", http.StatusBadRequest)
		return
	}

	items, err := h.Metadata.SearchMovies(r.Context(), query)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"reelvault/models"
	"reelvault/services/watchlist"
)

type watchlistService interface {
	List() ([]models.WatchlistItem, error)
	Add(item models.CatalogItem) error
	Remove(id int64) error
	Exists(id int64) bool
}

var _ watchlistService = (*watchlist.Service)(nil)

// WatchlistHandler serves the persisted watchlist.
type WatchlistHandler struct {
	Service watchlistService
}

func NewWatchlistHandler(service watchlistService) *WatchlistHandler {
	return &WatchlistHandler{Service: service}
}

func (h *WatchlistHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.List()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *WatchlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	var body models.CatalogItem
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.ID <= 0 {
		http.Error(w, "a positive id is required", http.StatusBadRequest)
		return
	}

	if err := h.Service.Add(body); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, watchlist.ErrAlreadyExists) {
			status = http.StatusConflict
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *WatchlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireID(w, r)
	if !ok {
		return
	}

	if err := h.Service.Remove(id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Removing an absent entry is a successful no-op
	w.WriteHeader(http.StatusNoContent)
}

func (h *WatchlistHandler) Exists(w http.ResponseWriter, r *http.Request) {
	id, ok := h.requireID(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"exists": h.Service.Exists(id)})
}

func (h *WatchlistHandler) Options(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *WatchlistHandler) requireID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(strings.TrimSpace(vars["id"]), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "a positive id is required", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

package models

import "time"

// WatchlistItem represents a media entry saved by the user for quick access.
// The ID equals the catalog ID of the source item; it is the natural
// dedup key, so at most one entry per ID exists.
type WatchlistItem struct {
	ID           int64     `json:"id"`
	MediaType    MediaType `json:"mediaType"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview,omitempty"`
	PosterPath   string    `json:"posterPath,omitempty"`
	BackdropPath string    `json:"backdropPath,omitempty"`
	ReleaseDate  string    `json:"releaseDate,omitempty"`
	VoteAverage  float64   `json:"voteAverage,omitempty"`
	AddedAt      time.Time `json:"addedAt"`
}

// NewWatchlistItem projects a catalog item into its persisted form.
// Entries are never updated in place; removal and re-add is the only
// way to refresh one.
func NewWatchlistItem(item CatalogItem, now time.Time) WatchlistItem {
	mediaType, _ := item.ResolveMediaType()
	return WatchlistItem{
		ID:           item.ID,
		MediaType:    mediaType,
		Name:         item.DisplayName(),
		Overview:     item.Overview,
		PosterPath:   item.PosterPath,
		BackdropPath: item.BackdropPath,
		ReleaseDate:  item.ReleaseDate,
		VoteAverage:  item.VoteAverage,
		AddedAt:      now,
	}
}

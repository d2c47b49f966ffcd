package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"reelvault/models"
)

// ErrAlreadyExists is returned when an insert targets an ID that is
// already present. The primary key enforces the at-most-one-entry-per-ID
// invariant inside the engine, so concurrent inserts for the same ID
// cannot both land.
var ErrAlreadyExists = errors.New("watchlist entry already exists")

// WatchlistRepository handles watchlist persistence operations
type WatchlistRepository struct {
	db *sql.DB
}

// NewWatchlistRepository creates a new watchlist repository
func NewWatchlistRepository(db *sql.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// Insert stores a new entry as a single atomic insert-if-absent. A
// conflict on the ID surfaces as ErrAlreadyExists without mutating
// storage.
func (r *WatchlistRepository) Insert(item models.WatchlistItem) error {
	_, err := r.db.Exec(`
		INSERT INTO watchlist (id, media_type, name, overview, poster_path, backdrop_path, release_date, vote_average, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, string(item.MediaType), item.Name, item.Overview,
		item.PosterPath, item.BackdropPath, item.ReleaseDate,
		item.VoteAverage, item.AddedAt,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert watchlist entry: %w", err)
	}
	return nil
}

// Delete removes the entry with the given ID and reports whether a row
// was actually removed. Deleting an absent ID is not an error.
func (r *WatchlistRepository) Delete(id int64) (bool, error) {
	result, err := r.db.Exec("DELETE FROM watchlist WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete watchlist entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}

// List returns all entries, newest first.
func (r *WatchlistRepository) List() ([]models.WatchlistItem, error) {
	rows, err := r.db.Query(`
		SELECT id, media_type, name, overview, poster_path, backdrop_path, release_date, vote_average, added_at
		FROM watchlist
		ORDER BY added_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist: %w", err)
	}
	defer rows.Close()

	items := []models.WatchlistItem{}
	for rows.Next() {
		var item models.WatchlistItem
		var mediaType string
		if err := rows.Scan(&item.ID, &mediaType, &item.Name, &item.Overview,
			&item.PosterPath, &item.BackdropPath, &item.ReleaseDate,
			&item.VoteAverage, &item.AddedAt); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist entry: %w", err)
		}
		item.MediaType = models.MediaType(mediaType)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate watchlist: %w", err)
	}
	return items, nil
}

// CountByID reports how many entries share the given ID (0 or 1 given
// the primary key).
func (r *WatchlistRepository) CountByID(id int64) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM watchlist WHERE id = ?", id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count watchlist entries: %w", err)
	}
	return count, nil
}

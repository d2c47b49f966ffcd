package watchlist

import (
	"errors"
	"fmt"
	"log"
	"time"

	"reelvault/internal/database"
	"reelvault/internal/notify"
	"reelvault/models"
)

// Store error taxonomy. Callers match with errors.Is; the underlying
// storage error rides along wrapped for logging.
var (
	ErrAlreadyExists = errors.New("item already on watchlist")
	ErrSaveFailed    = errors.New("failed to save watchlist entry")
	ErrDeleteFailed  = errors.New("failed to delete watchlist entry")
	ErrQueryFailed   = errors.New("failed to query watchlist")
)

// Service is the durable per-user watchlist: add/remove/list/exists over
// the embedded store, with a change broadcast on every successful
// mutation. Entries are never updated in place; remove and re-add is the
// only refresh path.
type Service struct {
	repo        *database.WatchlistRepository
	broadcaster *notify.Broadcaster
	now         func() time.Time
}

func NewService(repo *database.WatchlistRepository, broadcaster *notify.Broadcaster) *Service {
	return &Service{
		repo:        repo,
		broadcaster: broadcaster,
		now:         time.Now,
	}
}

// Add projects the catalog item into a watchlist entry and inserts it in
// a single atomic insert-if-absent transaction. A duplicate ID returns
// ErrAlreadyExists without touching storage; any other storage failure
// surfaces as ErrSaveFailed.
func (s *Service) Add(item models.CatalogItem) error {
	entry := models.NewWatchlistItem(item, s.now())
	if err := s.repo.Insert(entry); err != nil {
		if errors.Is(err, database.ErrAlreadyExists) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	s.notifyChanged()
	return nil
}

// Remove deletes the entry with the given ID. Removing an absent ID
// succeeds as a no-op; the change broadcast fires only when a row was
// actually deleted.
func (s *Service) Remove(id int64) error {
	removed, err := s.repo.Delete(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	if removed {
		s.notifyChanged()
	}
	return nil
}

// Exists reports membership for the given ID. Internal query failures
// collapse to false to preserve the boolean contract; callers that need
// to tell "absent" from "query failed" use ExistsChecked.
func (s *Service) Exists(id int64) bool {
	present, err := s.ExistsChecked(id)
	if err != nil {
		log.Printf("[watchlist] exists check failed for id=%d: %v", id, err)
		return false
	}
	return present
}

// ExistsChecked is the fallible variant of Exists.
func (s *Service) ExistsChecked(id int64) (bool, error) {
	count, err := s.repo.CountByID(id)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return count > 0, nil
}

// List returns all entries ordered by creation time, newest first.
func (s *Service) List() ([]models.WatchlistItem, error) {
	items, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return items, nil
}

func (s *Service) notifyChanged() {
	if s.broadcaster != nil {
		s.broadcaster.Publish(notify.WatchlistChanged)
	}
}

package wishlist

import (
	"strings"
	"sync"

	"github.com/PinjaMari/earn-to-own/internal/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Store is an in-memory, insertion-ordered collection of saved calculations.
// All operations are total: a missing id or an invalid add is a normal
// outcome, never an error. Handlers run concurrently, so access is guarded by
// a mutex even though the store has a single logical owner.
type Store struct {
	mu    sync.Mutex
	items []Item
	clock utils.Clock
}

func NewStore(clock utils.Clock) *Store {
	return &Store{clock: clock}
}

// Add appends a new item and returns it. The add is rejected (ok=false) when
// the name is empty or whitespace-only, or when price or hoursNeeded is
// negative.
func (s *Store) Add(name string, price, hoursNeeded float64) (Item, bool) {
	if strings.TrimSpace(name) == "" {
		log.Warn("rejected wishlist add: empty name")
		return Item{}, false
	}
	if price < 0 || hoursNeeded < 0 {
		log.Warnf("rejected wishlist add %q: negative price or hours", name)
		return Item{}, false
	}

	item := Item{
		ID:          uuid.NewString(),
		Name:        name,
		Price:       price,
		HoursNeeded: hoursNeeded,
		CreatedAt:   s.clock.Now(),
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()

	log.Debugf("wishlist item added: %s (%s)", item.Name, item.ID)
	return item, true
}

// Remove deletes the item with the given id. Returns false when no such item
// exists.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			log.Debugf("wishlist item removed: %s", id)
			return true
		}
	}
	return false
}

// Get looks up a single item by id without mutating the store.
func (s *Store) Get(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// List returns all items in insertion order, most recently added last.
func (s *Store) List() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

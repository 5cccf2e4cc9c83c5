// Package catalog holds the in-memory menu catalog. There is no database in
// this system; the catalog lives for the life of the process and is seeded at
// startup.
package catalog

import (
	"sync"

	"tablechef/internal/models"
)

// Store is the menu catalog, keyed by item ID. Listing preserves insertion
// order so the menu renders the same way every time.
type Store struct {
	mu    sync.RWMutex
	items map[string]models.MenuItem
	order []string
}

// NewStore creates a catalog populated with the given items. Items that fail
// validation are skipped.
func NewStore(seed []models.MenuItem) *Store {
	s := &Store{
		items: make(map[string]models.MenuItem),
	}
	for _, item := range seed {
		_ = s.Add(item)
	}
	return s
}

// Add inserts a new menu item. Invalid items (empty name, negative price) are
// rejected and the catalog is left untouched.
func (s *Store) Add(item models.MenuItem) error {
	if err := models.ValidateMenuItem(&item); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[item.ID]; !exists {
		s.order = append(s.order, item.ID)
	}
	s.items[item.ID] = item
	return nil
}

// Update replaces the full record matched by ID. Unknown IDs and invalid
// records are silent no-ops.
func (s *Store) Update(item models.MenuItem) {
	if err := models.ValidateMenuItem(&item); err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[item.ID]; !exists {
		return
	}
	s.items[item.ID] = item
}

// Delete removes an item by ID. Absent IDs are a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Get returns the item with the given ID
func (s *Store) Get(id string) (models.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	return item, ok
}

// List returns all items in insertion order
func (s *Store) List() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.MenuItem, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id])
	}
	return items
}

// Len returns the number of items in the catalog
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

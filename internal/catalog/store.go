package catalog

import (
	"sort"
	"strings"
	"sync"

	"catalog-service/internal/models"
)

// Store holds the authoritative in-memory catalog. It is reset to the seed
// list on every process start; there is no durable backing store.
//
// A single RWMutex guards the item slice. Readers get copies, so callers
// never alias live records.
type Store struct {
	mu     sync.RWMutex
	items  []models.Item
	lastID int
}

// NewStore creates a store pre-loaded with the reference seed catalog.
func NewStore() *Store {
	return NewStoreWithItems(seedItems)
}

// NewStoreWithItems creates a store holding a copy of the given items. The id
// high-water mark starts at the largest id present.
func NewStoreWithItems(seed []models.Item) *Store {
	items := make([]models.Item, len(seed))
	copy(items, seed)

	lastID := 0
	for _, it := range items {
		if it.ID > lastID {
			lastID = it.ID
		}
	}

	return &Store{items: items, lastID: lastID}
}

// Len returns the number of items in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// GetAll returns the full catalog in insertion order.
func (s *Store) GetAll() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Item, len(s.items))
	copy(out, s.items)
	return out
}

// GetByID retrieves a single item by id.
func (s *Store) GetByID(id int) (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.Item{}, models.ErrNotFound
}

// GetBySKU returns the first item whose SKU equals sku (exact, case-sensitive).
// SKUs are not unique in the catalog, so this is a first-match lookup in store
// iteration order and is non-deterministic under concurrent mutation.
func (s *Store) GetBySKU(sku string) (models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, it := range s.items {
		if it.SKU == sku {
			return it, nil
		}
	}
	return models.Item{}, models.ErrNotFound
}

// GetByCategory returns all items whose category equals the argument,
// compared case-insensitively. An unknown category yields an empty list,
// not an error.
func (s *Store) GetByCategory(category string) []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := strings.ToLower(category)
	out := make([]models.Item, 0)
	for _, it := range s.items {
		if strings.ToLower(it.Category) == want {
			out = append(out, it)
		}
	}
	return out
}

// Create validates required fields, assigns the next id and appends the item.
// Optional fields default to the empty string. Ids are minted monotonically
// and never reused within a process lifetime, even when the highest id has
// been deleted.
func (s *Store) Create(in models.Item) (models.Item, error) {
	missing := make([]string, 0, 4)
	if in.SKU == "" {
		missing = append(missing, "SKU")
	}
	if in.Item == "" {
		missing = append(missing, "ITEM")
	}
	if in.Category == "" {
		missing = append(missing, "CATEGORY")
	}
	if in.Price == "" {
		missing = append(missing, "PRICE")
	}
	if len(missing) > 0 {
		return models.Item{}, &models.ValidationError{Fields: missing}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID++
	in.ID = s.lastID
	s.items = append(s.items, in)
	return in, nil
}

// Update applies a merge-patch to the item with the given id. Only fields
// present in the patch overwrite stored values; an explicit empty string
// clears a field, while an absent field leaves it untouched. The id itself
// is immutable.
func (s *Store) Update(id int, patch models.ItemPatch) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if patch.SKU != nil {
			s.items[i].SKU = *patch.SKU
		}
		if patch.Pack != nil {
			s.items[i].Pack = *patch.Pack
		}
		if patch.Size != nil {
			s.items[i].Size = *patch.Size
		}
		if patch.Brand != nil {
			s.items[i].Brand = *patch.Brand
		}
		if patch.Item != nil {
			s.items[i].Item = *patch.Item
		}
		if patch.Category != nil {
			s.items[i].Category = *patch.Category
		}
		if patch.Price != nil {
			s.items[i].Price = *patch.Price
		}
		return s.items[i], nil
	}
	return models.Item{}, models.ErrNotFound
}

// Delete removes the item with the given id and returns it. There is no
// tombstone; the id simply disappears from the live set.
func (s *Store) Delete(id int) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			removed := s.items[i]
			s.items = append(s.items[:i], s.items[i+1:]...)
			return removed, nil
		}
	}
	return models.Item{}, models.ErrNotFound
}

// Categories returns the distinct category values (case-sensitive distinct)
// in ascending lexicographic order.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.items))
	out := make([]string, 0)
	for _, it := range s.items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	sort.Strings(out)
	return out
}

// Brands returns the distinct non-empty brand values in ascending
// lexicographic order. Brand is optional, so empty values are skipped.
func (s *Store) Brands() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{}, len(s.items))
	out := make([]string, 0)
	for _, it := range s.items {
		if it.Brand == "" {
			continue
		}
		if _, ok := seen[it.Brand]; ok {
			continue
		}
		seen[it.Brand] = struct{}{}
		out = append(out, it.Brand)
	}
	sort.Strings(out)
	return out
}

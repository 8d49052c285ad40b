// Package store holds the in-memory stock store.
package store

import (
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"stockboard/domain"
	"stockboard/util"

	"golang.org/x/text/cases"
)

// InMemoryStore is the single source of truth for the product collection.
// Products keep insertion order. Every read returns a copy, so callers never
// observe a partially applied mutation.
type InMemoryStore struct {
	mu       sync.RWMutex
	products []domain.Product
	seed     []domain.Product

	now   func() time.Time
	newID func() string
}

// Option configures an InMemoryStore.
type Option func(*InMemoryStore)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *InMemoryStore) { s.now = now }
}

// WithIDGenerator overrides the id source. Ids already in the store are
// skipped, so a generator that repeats itself is still safe.
func WithIDGenerator(gen func() string) Option {
	return func(s *InMemoryStore) { s.newID = gen }
}

// WithSeed replaces the demo seed. The seed is copied.
func WithSeed(seed []domain.Product) Option {
	return func(s *InMemoryStore) { s.seed = slices.Clone(seed) }
}

// NewInMemoryStore constructs a store holding a copy of the seed list.
func NewInMemoryStore(opts ...Option) *InMemoryStore {
	s := &InMemoryStore{
		seed:  DemoSeed(),
		now:   time.Now,
		newID: util.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.products = slices.Clone(s.seed)
	return s
}

// compile-time assertion that InMemoryStore implements domain.ProductStore
var _ domain.ProductStore = (*InMemoryStore)(nil)

// AddProduct stores a new product built from input. The store performs no
// validation; duplicate names are allowed.
func (s *InMemoryStore) AddProduct(input domain.ProductInput) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p := domain.Product{
		ID:          util.UniqueID(s.newID, func(id string) bool { return s.indexLocked(id) >= 0 }),
		Name:        input.Name,
		Category:    input.Category,
		Quantity:    input.Quantity,
		MinQuantity: input.MinQuantity,
		Price:       input.Price,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.products = append(s.products, p)
	return p
}

// UpdateProduct merges product into the stored record with the same id.
// An unknown id leaves the collection untouched and reports false.
func (s *InMemoryStore) UpdateProduct(product domain.Product) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(product.ID)
	if i < 0 {
		return domain.Product{}, false
	}
	merged := Merge(s.products[i], product.Input(), s.now())
	s.products[i] = merged
	return merged, true
}

// DeleteProduct removes the product with id, reporting whether it existed.
func (s *InMemoryStore) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.products = slices.Delete(s.products, i, i+1)
	return true
}

// ResetStock restores the seed list, ids and timestamps included.
func (s *InMemoryStore) ResetStock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = slices.Clone(s.seed)
}

func (s *InMemoryStore) Get(id string) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return domain.Product{}, domain.NewProductNotFoundError(id)
	}
	return s.products[i], nil
}

func (s *InMemoryStore) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}

// Stats derives the summary from the current collection.
func (s *InMemoryStore) Stats() domain.StockStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ComputeStats(s.products)
}

// Snapshot returns the collection and the stats derived from it under one
// read lock.
func (s *InMemoryStore) Snapshot() ([]domain.Product, domain.StockStats) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products), ComputeStats(s.products)
}

func (s *InMemoryStore) List(filter domain.ListFilter) []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fold := cases.Fold()
	term := fold.String(strings.TrimSpace(filter.Search))

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if term != "" &&
			!strings.Contains(fold.String(p.Name), term) &&
			!strings.Contains(fold.String(p.Category), term) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Status != "" && p.Status() != filter.Status {
			continue
		}
		out = append(out, p)
	}

	desc := filter.Order == "desc"
	var less func(a, b domain.Product) bool
	switch filter.SortBy {
	case "name":
		less = func(a, b domain.Product) bool { return a.Name < b.Name }
	case "price":
		less = func(a, b domain.Product) bool { return a.Price < b.Price }
	case "quantity":
		less = func(a, b domain.Product) bool { return a.Quantity < b.Quantity }
	case "value":
		less = func(a, b domain.Product) bool { return a.Value() < b.Value() }
	}
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return less(out[j], out[i])
			}
			return less(out[i], out[j])
		})
	}
	return out
}

func (s *InMemoryStore) indexLocked(id string) int {
	return slices.IndexFunc(s.products, func(p domain.Product) bool { return p.ID == id })
}

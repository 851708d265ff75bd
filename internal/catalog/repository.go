package catalog

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("product not found")
)

// Provider yields the products buyers are allowed to see. Filtering by
// publication state is the provider's job, not the caller's.
type Provider interface {
	ActiveProducts(ctx context.Context) ([]Product, error)
	GetActive(ctx context.Context, id string) (Product, error)
}

type Repository interface {
	Provider
	// Reset replaces the whole catalog with the provided list (used for dev / seeding)
	Reset(ctx context.Context, products []Product) ([]Product, error)
}

// InMemoryRepository is a simple in-memory catalog useful for tests, the CLI
// and local seeding. Everything it holds counts as active.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Product
}

func NewInMemoryRepository(seed []Product) *InMemoryRepository {
	r := &InMemoryRepository{storage: make([]Product, 0, len(seed))}
	for _, p := range seed {
		r.storage = append(r.storage, withID(p))
	}
	return r
}

func (r *InMemoryRepository) ActiveProducts(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetActive(ctx context.Context, id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrNotFound
}

// Reset replaces the whole in-memory storage with the provided products.
func (r *InMemoryRepository) Reset(ctx context.Context, products []Product) ([]Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Product, 0, len(products))
	for _, p := range products {
		r.storage = append(r.storage, withID(p))
	}
	out := make([]Product, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

// withID assigns a fresh id when missing and stores uuids in canonical form.
func withID(p Product) Product {
	if p.ID == "" {
		p.ID = uuid.NewString()
	} else if id, err := uuid.Parse(p.ID); err == nil {
		p.ID = id.String()
	}
	return p
}

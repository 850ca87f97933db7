package catalog

import (
	"context"
	"sync"

	"tingz-storefront/internal/domain"
)

type memoryRepo struct {
	mu       sync.RWMutex
	products []domain.Product
}

// NewMemory returns a process-lifetime Repository. It backs the in-memory
// deployment and doubles as the test substitute for the other backends.
func NewMemory(initial []domain.Product) Repository {
	products := make([]domain.Product, len(initial))
	copy(products, initial)
	return &memoryRepo{products: products}
}

func (r *memoryRepo) List(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memoryRepo) Get(ctx context.Context, id int) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Insert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = nextID(r.products)
	r.products = append(r.products, p)
	return &p, nil
}

func (r *memoryRepo) Update(ctx context.Context, p domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = p
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memoryRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

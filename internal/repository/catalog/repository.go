package catalog

import (
	"context"

	"tingz-storefront/internal/domain"
)

// Repository is the persistence collaborator for the product catalog.
// Insert is handed a product with id 0 and returns the stored product with
// the id the backend assigned (max existing id + 1, or 1 when empty).
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id int) (*domain.Product, error)
	Insert(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) error
	Delete(ctx context.Context, id int) error
}

package catalog

import (
	"context"
	"io"
	"log"
	"strings"

	"tingz-storefront/internal/domain"
	catalogrepo "tingz-storefront/internal/repository/catalog"
)

// cartPurger removes a deleted product from every live cart.
type cartPurger interface {
	PurgeProduct(productID int)
}

// Service owns the authoritative product set: validation, id assignment
// and CRUD policy sit here, persistence sits behind the Repository.
type Service struct {
	repo   catalogrepo.Repository
	carts  cartPurger
	logger *log.Logger
}

func New(repo catalogrepo.Repository, carts cartPurger, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, carts: carts, logger: logger}
}

// List returns all products in insertion order, optionally filtered by
// category. An empty or "all" category means no filter.
func (s *Service) List(ctx context.Context, category string) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	category = strings.TrimSpace(category)
	if category == "" || strings.EqualFold(category, "all") {
		return products, nil
	}
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.Product, error) {
	return s.repo.Get(ctx, id)
}

// Create validates the input and stores it with the next id.
func (s *Service) Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ValidationError("name is required")
	}
	if in.Price == nil {
		return nil, domain.ValidationError("price is required")
	}
	if *in.Price < 0 {
		return nil, domain.ValidationError("price must not be negative")
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, domain.ValidationError("category is required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, domain.ValidationError("description is required")
	}

	product, err := s.repo.Insert(ctx, domain.Product{
		Name:        in.Name,
		Price:       *in.Price,
		Category:    in.Category,
		Description: in.Description,
		Image:       in.Image,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Printf("catalog: created id=%d name=%q category=%s", product.ID, product.Name, product.Category)
	return product, nil
}

// Update replaces the stored record wholesale; it never merges fields.
func (s *Service) Update(ctx context.Context, p domain.Product) error {
	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}
	s.logger.Printf("catalog: updated id=%d name=%q", p.ID, p.Name)
	return nil
}

// Delete removes the product and purges it from every live cart. Unknown
// ids are an error: explicit delete-by-id is strict, not idempotent.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.carts != nil {
		s.carts.PurgeProduct(id)
	}
	s.logger.Printf("catalog: deleted id=%d", id)
	return nil
}

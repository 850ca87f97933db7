package catalog

import (
	"context"
	"errors"
	"testing"

	"tingz-storefront/internal/domain"
)

func TestMemoryInsertAssignsMaxPlusOne(t *testing.T) {
	repo := NewMemory([]domain.Product{{ID: 5, Name: "A", Price: 1, Category: "tote", Description: "a"}})

	p, err := repo.Insert(context.Background(), domain.Product{Name: "B", Price: 2, Category: "jewelry", Description: "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 6 {
		t.Fatalf("expected id 6, got %d", p.ID)
	}
}

func TestMemoryListCopiesState(t *testing.T) {
	repo := NewMemory([]domain.Product{{ID: 1, Name: "A", Price: 1, Category: "tote", Description: "a"}})

	products, _ := repo.List(context.Background())
	products[0].Name = "mutated"

	fresh, _ := repo.List(context.Background())
	if fresh[0].Name != "A" {
		t.Fatalf("caller mutation leaked into the repository")
	}
}

func TestMemoryUpdateDelete(t *testing.T) {
	repo := NewMemory([]domain.Product{
		{ID: 1, Name: "A", Price: 1, Category: "tote", Description: "a"},
		{ID: 2, Name: "B", Price: 2, Category: "jewelry", Description: "b"},
	})
	ctx := context.Background()

	if err := repo.Update(ctx, domain.Product{ID: 2, Name: "B2", Price: 20, Category: "jewelry", Description: "b2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := repo.Get(ctx, 2)
	if got.Name != "B2" || got.Price != 20 {
		t.Fatalf("update not applied: %+v", got)
	}

	if err := repo.Delete(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Get(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	if err := repo.Delete(ctx, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

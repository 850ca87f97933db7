package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productSeed struct {
	Name        string
	Price       int64
	Category    string
	Description string
	Image       string
}

// Apply inserts basic seed data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{
			Name:        "Canvas Tote Bag",
			Price:       3299,
			Category:    "tote",
			Description: "Roomy everyday canvas tote with inner pocket",
			Image:       "/images/canvas-tote.jpg",
		},
		{
			Name:        "Beaded Choker",
			Price:       4799,
			Category:    "jewelry",
			Description: "Handmade beaded choker, adjustable clasp",
			Image:       "/images/beaded-choker.jpg",
		},
		{
			Name:        "Mini Jute Tote",
			Price:       2499,
			Category:    "tote",
			Description: "Compact jute tote for quick errands",
			Image:       "/images/mini-jute-tote.jpg",
		},
	}

	for i, p := range products {
		if err := upsertProduct(ctx, pool, i+1, p); err != nil {
			return fmt.Errorf("upsert product %q: %w", p.Name, err)
		}
	}

	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, id int, p productSeed) error {
	const q = `
INSERT INTO products (id, name, price, category, description, image)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    price = EXCLUDED.price,
    category = EXCLUDED.category,
    description = EXCLUDED.description,
    image = EXCLUDED.image
`
	_, err := pool.Exec(ctx, q, id, p.Name, p.Price, p.Category, p.Description, p.Image)
	return err
}

package catalog

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tingz-storefront/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by a postgres products table.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id, name, price, category, description, image
FROM products
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("catalog repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Description, &p.Image); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("catalog repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Get(ctx context.Context, id int) (*domain.Product, error) {
	const q = `
SELECT id, name, price, category, description, image
FROM products
WHERE id = $1
`
	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Description, &p.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("catalog repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &p, nil
}

// Insert assigns the id inside the statement so a single instance cannot
// race itself on max+1. Cross-process writers still race (last writer wins).
func (r *postgresRepo) Insert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (id, name, price, category, description, image)
SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5 FROM products
RETURNING id
`
	if err := r.pool.QueryRow(ctx, q, p.Name, p.Price, p.Category, p.Description, p.Image).Scan(&p.ID); err != nil {
		r.logger.Printf("catalog repo: insert name=%q error=%v", p.Name, err)
		return nil, err
	}
	r.logger.Printf("catalog repo: inserted id=%d name=%q", p.ID, p.Name)
	return &p, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) error {
	const q = `
UPDATE products
SET name = $2, price = $3, category = $4, description = $5, image = $6
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, p.ID, p.Name, p.Price, p.Category, p.Description, p.Image)
	if err != nil {
		r.logger.Printf("catalog repo: update id=%d error=%v", p.ID, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("catalog repo: delete id=%d error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("catalog repo: deleted id=%d", id)
	return nil
}

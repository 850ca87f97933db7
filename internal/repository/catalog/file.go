package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"tingz-storefront/internal/domain"
)

type fileRepo struct {
	path   string
	logger *log.Logger

	// Guards the read-modify-write cycle within this process. Two
	// processes sharing the file still race (last writer wins).
	mu sync.Mutex
}

// NewFile returns a Repository backed by a flat JSON array on disk.
// A missing file reads as an empty catalog.
func NewFile(path string, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &fileRepo{path: path, logger: logger}
}

func (r *fileRepo) List(ctx context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

func (r *fileRepo) Get(ctx context.Context, id int) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.read()
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fileRepo) Insert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.read()
	if err != nil {
		return nil, err
	}
	p.ID = nextID(products)
	if err := r.write(append(products, p)); err != nil {
		return nil, err
	}
	r.logger.Printf("catalog file: inserted id=%d name=%q", p.ID, p.Name)
	return &p, nil
}

func (r *fileRepo) Update(ctx context.Context, p domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.read()
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			return r.write(products)
		}
	}
	return domain.ErrNotFound
}

func (r *fileRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.read()
	if err != nil {
		return err
	}
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return domain.ErrNotFound
	}
	return r.write(kept)
}

func (r *fileRepo) read() ([]domain.Product, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		r.logger.Printf("catalog file: read %s error=%v", r.path, err)
		return nil, err
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	return products, nil
}

// write replaces the whole document, pretty-printed to keep it hand-editable.
func (r *fileRepo) write(products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		r.logger.Printf("catalog file: write %s error=%v", r.path, err)
		return err
	}
	return nil
}

func nextID(products []domain.Product) int {
	max := 0
	for _, p := range products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Apurer/go-gin-orders-api/internal/domains/products/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/products/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory product catalog.
type Repository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
}

func NewRepository(seed ...*domain.Product) *Repository {
	r := &Repository{products: map[string]*domain.Product{}}
	for _, p := range seed {
		_, _ = r.Save(context.Background(), p)
	}
	return r
}

func (r *Repository) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := *product
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *product
	return &clone, nil
}

func (r *Repository) FindAllByID(_ context.Context, ids []string) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{}, len(ids))
	list := make([]*domain.Product, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if product, ok := r.products[id]; ok {
			clone := *product
			list = append(list, &clone)
		}
	}
	return list, nil
}

// UpdateQuantity applies all updates or none.
func (r *Repository) UpdateQuantity(_ context.Context, updates []domain.QuantityUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range updates {
		if _, ok := r.products[u.ID]; !ok {
			return fmt.Errorf("%w: %s", ports.ErrNotFound, u.ID)
		}
		if u.Quantity < 0 {
			return fmt.Errorf("%w: %s", domain.ErrNegativeStock, u.ID)
		}
	}
	for _, u := range updates {
		r.products[u.ID].Quantity = u.Quantity
	}
	return nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		clone := *product
		list = append(list, &clone)
	}
	return list, nil
}

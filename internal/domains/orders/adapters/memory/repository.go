package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
	clock  func() time.Time
}

func NewRepository() *Repository {
	return &Repository{orders: map[string]*domain.Order{}, clock: time.Now}
}

// WithClock overrides the time source used for CreatedAt.
func (r *Repository) WithClock(clock func() time.Time) *Repository {
	if clock != nil {
		r.clock = clock
	}
	return r
}

func (r *Repository) Create(_ context.Context, input ports.NewOrder) (*domain.Order, error) {
	if input.Customer == nil {
		return nil, errors.New("order customer is nil")
	}
	order := &domain.Order{
		ID:         uuid.NewString(),
		CustomerID: input.Customer.ID,
		Lines:      make([]domain.Line, 0, len(input.Lines)),
		CreatedAt:  r.clock().UTC(),
	}
	for _, line := range input.Lines {
		line.ID = uuid.NewString()
		order.Lines = append(order.Lines, line)
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order
	return cloneOrder(order), nil
}

func (r *Repository) FindByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneOrder(order), nil
}

// Count reports how many orders are stored.
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders)
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.Lines = append([]domain.Line(nil), order.Lines...)
	return &clone
}

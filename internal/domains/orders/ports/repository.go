package ports

import (
	"context"
	"errors"

	customerdomain "github.com/Apurer/go-gin-orders-api/internal/domains/customers/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// NewOrder is the payload handed to the store when an order is created. Lines carry the
// price snapshot but no identifiers yet.
type NewOrder struct {
	Customer *customerdomain.Customer
	Lines    []domain.Line
}

// Repository persists orders.
type Repository interface {
	// Create stores the order and its lines and returns them with assigned identifiers.
	Create(ctx context.Context, order NewOrder) (*domain.Order, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
}

package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-orders-api/internal/domains/customers/domain"
)

var ErrNotFound = errors.New("customer not found")

// Repository is the customer lookup consumed by the orders context.
type Repository interface {
	// FindByID returns ErrNotFound when no customer has the identifier.
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
}

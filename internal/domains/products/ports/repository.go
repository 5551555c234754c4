package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-orders-api/internal/domains/products/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository is the catalog lookup/update consumed by the orders context.
type Repository interface {
	// FindAllByID returns the products that exist among ids. Missing ids are simply absent
	// from the result; order of the result is not significant.
	FindAllByID(ctx context.Context, ids []string) ([]*domain.Product, error)
	// UpdateQuantity overwrites the stock level of every listed product.
	UpdateQuantity(ctx context.Context, updates []domain.QuantityUpdate) error
}

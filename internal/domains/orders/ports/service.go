package ports

import (
	"context"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
)

// CreateOrderInput is the command accepted by the order creation use case.
type CreateOrderInput struct {
	CustomerID string
	Products   []domain.LineRequest
}

// Service exposes orders use cases to adapters (inbound/driving port).
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
}

package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	orderdomain "github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
)

const (
	// CreateOrderActivityName validates, persists and decrements stock for a new order.
	CreateOrderActivityName = "orders.activities.CreateOrder"
)

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service orderports.Service
}

// NewActivities wires the orders service into the Temporal activities bundle.
func NewActivities(service orderports.Service) *Activities {
	return &Activities{service: service}
}

// CreateOrder runs the order creation use case. Business failures are returned as
// non-retryable application errors so the caller can restore them.
func (a *Activities) CreateOrder(ctx context.Context, input orderports.CreateOrderInput) (*orderdomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("order activity not initialized", "customerId", input.CustomerID)
		return nil, errors.New("order activity not initialized")
	}
	logger.Info("CreateOrder activity started", "customerId", input.CustomerID, "lines", len(input.Products))
	order, err := a.service.CreateOrder(ctx, input)
	if err != nil {
		logger.Error("CreateOrder activity failed", "customerId", input.CustomerID, "error", err)
		return nil, EncodeError(err)
	}
	logger.Info("CreateOrder activity completed", "orderId", order.ID)
	return order, nil
}

package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	orderdomain "github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	orderactivities "github.com/Apurer/go-gin-orders-api/internal/durable/temporal/activities/orders"
)

// RunOrderCreationSequence executes the activity that validates and persists an order.
// The activity runs exactly once; a failed order write or stock decrement is not retried.
func RunOrderCreationSequence(ctx workflow.Context, input orderports.CreateOrderInput) (*orderdomain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("order creation sequence started", "customerId", input.CustomerID)
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var order orderdomain.Order
	err := workflow.ExecuteActivity(ctx, orderactivities.CreateOrderActivityName, input).Get(ctx, &order)
	if err != nil {
		logger.Error("order creation sequence failed", "customerId", input.CustomerID, "error", err)
		return nil, err
	}
	logger.Info("order creation sequence completed", "orderId", order.ID)
	return &order, nil
}

package mapper

import (
	"time"

	"github.com/shopspring/decimal"

	orderdomain "github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
)

// LineRequest is the transport shape of one requested product.
type LineRequest struct {
	ProductID string
	Quantity  int32
}

// CreateOrder is the transport shape of an order creation request.
type CreateOrder struct {
	CustomerID string
	Products   []LineRequest
}

// Line is the transport shape of a persisted order line.
type Line struct {
	ID        string
	ProductID string
	Quantity  int32
	Price     decimal.Decimal
}

// Order is the transport shape returned by the handlers.
type Order struct {
	ID         string
	CustomerID string
	CreatedAt  time.Time
	Total      decimal.Decimal
	Lines      []Line
}

// ToCreateOrderInput converts a transport request into the use case command, preserving line order.
func ToCreateOrderInput(req CreateOrder) orderports.CreateOrderInput {
	products := make([]orderdomain.LineRequest, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, orderdomain.LineRequest{ProductID: p.ProductID, Quantity: p.Quantity})
	}
	return orderports.CreateOrderInput{CustomerID: req.CustomerID, Products: products}
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *orderdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	out := Order{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		CreatedAt:  order.CreatedAt,
		Total:      order.Total(),
		Lines:      make([]Line, 0, len(order.Lines)),
	}
	for _, line := range order.Lines {
		out.Lines = append(out.Lines, Line{
			ID:        line.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}
	return out
}

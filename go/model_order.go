package ordersserver

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderProductRequest - a product and the quantity requested for it
type OrderProductRequest struct {
	Id       string `json:"id" binding:"required"`
	Quantity int32  `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest - payload accepted by POST /v1/orders
type CreateOrderRequest struct {
	CustomerId string                `json:"customer_id" binding:"required"`
	Products   []OrderProductRequest `json:"products" binding:"required,min=1,dive"`
}

// OrderProduct - a persisted order line with its price snapshot
type OrderProduct struct {
	Id        string          `json:"id"`
	ProductId string          `json:"product_id"`
	Quantity  int32           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Order - a created order
type Order struct {
	Id            string          `json:"id"`
	CustomerId    string          `json:"customer_id"`
	CreatedAt     time.Time       `json:"created_at"`
	Total         decimal.Decimal `json:"total"`
	OrderProducts []OrderProduct  `json:"order_products"`
}

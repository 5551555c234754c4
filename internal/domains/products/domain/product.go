package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductID = errors.New("product id is required")
	ErrNegativePrice  = errors.New("product price must be non-negative")
	ErrNegativeStock  = errors.New("product quantity must be non-negative")
)

// Product is a catalog item with its current price and units in stock.
type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Quantity int32
}

// NewProduct validates and constructs a catalog product.
func NewProduct(id, name string, price decimal.Decimal, quantity int32) (*Product, error) {
	p := &Product{ID: strings.TrimSpace(id), Name: strings.TrimSpace(name), Price: price, Quantity: quantity}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate enforces invariants on the entity.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrEmptyProductID
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if p.Quantity < 0 {
		return ErrNegativeStock
	}
	return nil
}

// HasStock reports whether at least requested units are available. requested may be the
// sum of several lines.
func (p *Product) HasStock(requested int64) bool {
	return requested <= int64(p.Quantity)
}

// QuantityUpdate sets the absolute stock level of a product.
type QuantityUpdate struct {
	ID       string
	Quantity int32
}

package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCustomerID = errors.New("order customer id is required")
	ErrNoLines         = errors.New("order must contain at least one product")
	ErrEmptyProductID  = errors.New("order line product id is required")
	ErrInvalidQuantity = errors.New("order line quantity must be greater than zero")
	ErrNegativePrice   = errors.New("order line price must be non-negative")
)

// LineRequest is one requested (product, quantity) pair before validation.
type LineRequest struct {
	ProductID string
	Quantity  int32
}

// Line is a persisted order line. Price is the catalog price captured when the order was
// placed and never follows later catalog changes.
type Line struct {
	ID        string
	ProductID string
	Quantity  int32
	Price     decimal.Decimal
}

// Subtotal returns price times quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt32(l.Quantity))
}

// Validate enforces invariants on a single line.
func (l Line) Validate() error {
	if strings.TrimSpace(l.ProductID) == "" {
		return ErrEmptyProductID
	}
	if l.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if l.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// Order models a customer purchase. It is immutable once created.
type Order struct {
	ID         string
	CustomerID string
	Lines      []Line
	CreatedAt  time.Time
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if strings.TrimSpace(o.CustomerID) == "" {
		return ErrEmptyCustomerID
	}
	if len(o.Lines) == 0 {
		return ErrNoLines
	}
	for _, line := range o.Lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Total sums every line subtotal.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

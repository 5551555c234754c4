package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrCustomerNotFound is returned when the ordering customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrNoProductsFound is returned when none of the requested products exist.
	ErrNoProductsFound = errors.New("no products found")
	// ErrProductNotFound is returned when at least one requested product does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock is returned when a requested quantity exceeds the stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrStockUpdateFailed means the order was stored but stock was not decremented.
	ErrStockUpdateFailed = errors.New("stock update failed after order creation")
	// ErrOrderNotFound is returned by order lookups.
	ErrOrderNotFound = errors.New("order not found")
)

// CustomerNotFoundError names the missing customer.
type CustomerNotFoundError struct {
	CustomerID string
}

func (e *CustomerNotFoundError) Error() string {
	return fmt.Sprintf("customer '%s' does not exist", e.CustomerID)
}

func (e *CustomerNotFoundError) Unwrap() error { return ErrCustomerNotFound }

// NoProductsFoundError lists the ids that were requested when the catalog matched none.
type NoProductsFoundError struct {
	ProductIDs []string
}

func (e *NoProductsFoundError) Error() string {
	return fmt.Sprintf("could not find the products with IDs '%s'", strings.Join(e.ProductIDs, ", "))
}

func (e *NoProductsFoundError) Unwrap() error { return ErrNoProductsFound }

// ProductNotFoundError names the first requested product missing from the catalog.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("could not find product '%s'", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error { return ErrProductNotFound }

// InsufficientStockError names the first product whose requested quantity exceeds stock.
// Requested is the quantity asked for, not the quantity available.
type InsufficientStockError struct {
	ProductID string
	Requested int64
	Available int32
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: quantity '%d' for ID '%s'", e.Requested, e.ProductID)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// StockUpdateError reports an order that was persisted while its stock decrement failed.
// The order is not rolled back; callers reconcile using OrderID.
type StockUpdateError struct {
	OrderID string
	Err     error
}

func (e *StockUpdateError) Error() string {
	return fmt.Sprintf("order '%s' created but stock was not updated: %v", e.OrderID, e.Err)
}

func (e *StockUpdateError) Unwrap() []error { return []error{ErrStockUpdateFailed, e.Err} }

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyCustomerID) ||
		errors.Is(err, domain.ErrNoLines) ||
		errors.Is(err, domain.ErrEmptyProductID) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrNegativePrice) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if errors.Is(err, ports.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrOrderNotFound, err)
	}
	return err
}

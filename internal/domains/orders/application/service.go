package application

import (
	"context"
	"errors"
	"fmt"

	customerports "github.com/Apurer/go-gin-orders-api/internal/domains/customers/ports"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
	productdomain "github.com/Apurer/go-gin-orders-api/internal/domains/products/domain"
	productports "github.com/Apurer/go-gin-orders-api/internal/domains/products/ports"
)

// Service orchestrates the orders use cases.
//
// CreateOrder reads stock, writes the order and then writes the new stock levels without any
// lock or transaction spanning those steps. Concurrent orders for the same product can
// therefore oversell, and a failed stock write leaves the order persisted.
type Service struct {
	orders    ports.Repository
	products  productports.Repository
	customers customerports.Repository
}

// NewService wires the order, product and customer collaborators.
func NewService(orders ports.Repository, products productports.Repository, customers customerports.Repository) *Service {
	return &Service{orders: orders, products: products, customers: customers}
}

// CreateOrder validates the customer and the requested products, persists the order with
// the current catalog prices and decrements stock. Validation failures report the first
// violation in input order.
func (s *Service) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	customer, err := s.customers.FindByID(ctx, input.CustomerID)
	if err != nil && !errors.Is(err, customerports.ErrNotFound) {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, &CustomerNotFoundError{CustomerID: input.CustomerID}
	}

	ids := requestedIDs(input.Products)
	found, err := s.products.FindAllByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	if len(found) == 0 {
		return nil, &NoProductsFoundError{ProductIDs: ids}
	}
	catalog := make(map[string]*productdomain.Product, len(found))
	for _, p := range found {
		catalog[p.ID] = p
	}

	for _, req := range input.Products {
		if _, ok := catalog[req.ProductID]; !ok {
			return nil, &ProductNotFoundError{ProductID: req.ProductID}
		}
	}

	requested := make(map[string]int64, len(catalog))
	for _, req := range input.Products {
		requested[req.ProductID] += int64(req.Quantity)
		product := catalog[req.ProductID]
		if !product.HasStock(requested[req.ProductID]) {
			return nil, &InsufficientStockError{
				ProductID: req.ProductID,
				Requested: requested[req.ProductID],
				Available: product.Quantity,
			}
		}
	}

	lines := make([]domain.Line, 0, len(input.Products))
	for _, req := range input.Products {
		lines = append(lines, domain.Line{
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
			Price:     catalog[req.ProductID].Price,
		})
	}

	order, err := s.orders.Create(ctx, ports.NewOrder{Customer: customer, Lines: lines})
	if err != nil {
		return nil, mapError(err)
	}

	if err := s.products.UpdateQuantity(ctx, stockUpdates(order.Lines, catalog)); err != nil {
		return nil, &StockUpdateError{OrderID: order.ID, Err: err}
	}
	return order, nil
}

// GetOrder loads a previously created order.
func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return order, nil
}

// requestedIDs returns the distinct product ids in first-seen order.
func requestedIDs(products []domain.LineRequest) []string {
	seen := make(map[string]struct{}, len(products))
	ids := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.ProductID]; ok {
			continue
		}
		seen[p.ProductID] = struct{}{}
		ids = append(ids, p.ProductID)
	}
	return ids
}

// stockUpdates subtracts every persisted line from the stock read during validation. Lines
// for the same product are summed so the decrement equals the total ordered. Totals are
// int64 and never exceed the stock read during validation.
func stockUpdates(lines []domain.Line, catalog map[string]*productdomain.Product) []productdomain.QuantityUpdate {
	ordered := make(map[string]int64, len(lines))
	updates := make([]productdomain.QuantityUpdate, 0, len(lines))
	for _, line := range lines {
		if _, ok := ordered[line.ProductID]; !ok {
			updates = append(updates, productdomain.QuantityUpdate{ID: line.ProductID})
		}
		ordered[line.ProductID] += int64(line.Quantity)
	}
	for i := range updates {
		id := updates[i].ID
		updates[i].Quantity = int32(int64(catalog[id].Quantity) - ordered[id])
	}
	return updates
}

var _ ports.Service = (*Service)(nil)

//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "orders-api"
	ConsumerName = "checkout-portal"

	StateCatalogBaseline = "customer c-pact and product p-pact with 5 units exist"
	StateOrderMissing    = "no order with id 00000000-0000-0000-0000-000000000000"
)

const (
	CustomerID      = "c-pact"
	ProductID       = "p-pact"
	ProductName     = "Pact Keyboard"
	ProductPrice    = "49.99"
	ProductStock    = int32(5)
	MissingOrderID  = "00000000-0000-0000-0000-000000000000"
	exampleOrderID  = "7d1e9d5c-5d3a-4a4e-9f3b-0c2f8f0f6a11"
	exampleLineID   = "0b8f0e55-58f4-4d7c-8f0a-2d9f5d1a7c42"
	exampleOrdered  = "2024-06-12T10:00:00Z"
	exampleOrderQty = int32(2)
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the checkout portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleCreateOrderPayload provides stable request data for order creation.
func ExampleCreateOrderPayload(quantity int32) map[string]any {
	return map[string]any{
		"customer_id": CustomerID,
		"products": []map[string]any{
			{"id": ProductID, "quantity": quantity},
		},
	}
}

// ExampleOrderPayload provides stable response data for a created order.
func ExampleOrderPayload() map[string]any {
	return map[string]any{
		"id":          exampleOrderID,
		"customer_id": CustomerID,
		"created_at":  exampleOrdered,
		"total":       "99.98",
		"order_products": []map[string]any{
			{
				"id":         exampleLineID,
				"product_id": ProductID,
				"quantity":   exampleOrderQty,
				"price":      ProductPrice,
			},
		},
	}
}

// ExampleOrderQuantity is the quantity used by the successful creation interaction.
func ExampleOrderQuantity() int32 {
	return exampleOrderQty
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}

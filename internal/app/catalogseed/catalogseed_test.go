package catalogseed_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-orders-api/internal/app/catalogseed"
	customermemory "github.com/Apurer/go-gin-orders-api/internal/domains/customers/adapters/memory"
	customerdomain "github.com/Apurer/go-gin-orders-api/internal/domains/customers/domain"
	productmemory "github.com/Apurer/go-gin-orders-api/internal/domains/products/adapters/memory"
)

const sampleFixtures = `
customers:
  - id: c1
    name: Ada Lovelace
    email: ada@example.com
products:
  - id: p1
    name: Keyboard
    price: "49.99"
    quantity: 5
  - id: p2
    name: Mouse
    price: 20
    quantity: 0
`

func TestLoad(t *testing.T) {
	catalog, err := catalogseed.Load(strings.NewReader(sampleFixtures))
	require.NoError(t, err)
	require.Len(t, catalog.Customers, 1)
	require.Len(t, catalog.Products, 2)
	assert.Equal(t, "ada@example.com", catalog.Customers[0].Email)
	assert.True(t, catalog.Products[0].Price.Equal(decimal.RequireFromString("49.99")))
	assert.Equal(t, int32(0), catalog.Products[1].Quantity)
}

func TestLoad_Rejects(t *testing.T) {
	tests := map[string]string{
		"unknown field":      "products:\n  - id: p1\n    colour: red\n",
		"bad price":          "products:\n  - id: p1\n    price: cheap\n",
		"negative stock":     "products:\n  - id: p1\n    price: 1\n    quantity: -2\n",
		"missing customer":   "customers:\n  - name: nobody\n",
		"duplicate products": "products:\n  - id: p1\n    price: 1\n  - id: p1\n    price: 2\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := catalogseed.Load(strings.NewReader(doc))
			require.Error(t, err)
		})
	}
}

func TestLoad_EmptyDocument(t *testing.T) {
	catalog, err := catalogseed.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, catalog.Customers)
	assert.Empty(t, catalog.Products)
}

func TestSeed_WritesEverything(t *testing.T) {
	catalog, err := catalogseed.Load(strings.NewReader(sampleFixtures))
	require.NoError(t, err)
	customers := customermemory.NewRepository()
	products := productmemory.NewRepository()

	require.NoError(t, catalogseed.Seed(context.Background(), catalog, customers, products))

	customer, err := customers.FindByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", customer.Name)
	stored, err := products.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

type failingCustomers struct{}

func (failingCustomers) Save(context.Context, *customerdomain.Customer) (*customerdomain.Customer, error) {
	return nil, errors.New("read-only replica")
}

func TestSeed_StopsOnWriteError(t *testing.T) {
	catalog, err := catalogseed.Load(strings.NewReader(sampleFixtures))
	require.NoError(t, err)
	products := productmemory.NewRepository()

	err = catalogseed.Seed(context.Background(), catalog, failingCustomers{}, products)
	require.ErrorContains(t, err, `saving customer "c1"`)
	stored, err := products.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func writeFixtures(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFixtures), 0o600))
	return path
}

func TestCommand_DryRunDoesNotOpenStores(t *testing.T) {
	opened := false
	cmd := catalogseed.NewRootCmdWithStores(func(context.Context, string, *slog.Logger) (catalogseed.Stores, func(), error) {
		opened = true
		return catalogseed.Stores{}, func() {}, nil
	})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--file", writeFixtures(t), "--dry-run"})

	require.NoError(t, cmd.Execute())
	assert.False(t, opened)
	assert.Contains(t, buf.String(), "product p1 Keyboard price=49.99 quantity=5")
	assert.Contains(t, buf.String(), "dry run: 1 customer(s), 2 product(s) not written")
}

func TestCommand_Seeds(t *testing.T) {
	customers := customermemory.NewRepository()
	products := productmemory.NewRepository()
	cleaned := false
	var gotDSN string
	cmd := catalogseed.NewRootCmdWithStores(func(_ context.Context, dsn string, _ *slog.Logger) (catalogseed.Stores, func(), error) {
		gotDSN = dsn
		return catalogseed.Stores{Customers: customers, Products: products}, func() { cleaned = true }, nil
	})
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"-f", writeFixtures(t), "--dsn", "postgres://seed@localhost/orders"})

	require.NoError(t, cmd.Execute())
	assert.True(t, cleaned)
	assert.Equal(t, "postgres://seed@localhost/orders", gotDSN)
	assert.Contains(t, out.String(), "seeded 1 customer(s), 2 product(s)")
	_, err := products.GetByID(context.Background(), "p2")
	require.NoError(t, err)
}

func TestCommand_MissingFile(t *testing.T) {
	cmd := catalogseed.NewRootCmdWithStores(nil)
	cmd.SetArgs([]string{"--file", filepath.Join(t.TempDir(), "absent.yaml")})
	require.ErrorContains(t, cmd.Execute(), "opening fixtures")
}

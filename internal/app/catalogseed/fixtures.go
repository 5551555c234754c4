// Package catalogseed loads customers and products from a YAML fixture file into the stores
// the order service reads from.
package catalogseed

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	customerdomain "github.com/Apurer/go-gin-orders-api/internal/domains/customers/domain"
	productdomain "github.com/Apurer/go-gin-orders-api/internal/domains/products/domain"
)

// Fixtures is the document shape of a catalog fixture file.
type Fixtures struct {
	Customers []CustomerFixture `yaml:"customers"`
	Products  []ProductFixture  `yaml:"products"`
}

type CustomerFixture struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// ProductFixture keeps the price as text so it is parsed as an exact decimal.
type ProductFixture struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Quantity int32  `yaml:"quantity"`
}

// CustomerWriter stores customers.
type CustomerWriter interface {
	Save(ctx context.Context, customer *customerdomain.Customer) (*customerdomain.Customer, error)
}

// ProductWriter stores products.
type ProductWriter interface {
	Save(ctx context.Context, product *productdomain.Product) (*productdomain.Product, error)
}

// Catalog is the validated content of a fixture file.
type Catalog struct {
	Customers []*customerdomain.Customer
	Products  []*productdomain.Product
}

// Load parses and validates a fixture document.
func Load(r io.Reader) (Catalog, error) {
	var fixtures Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fixtures); err != nil && err != io.EOF {
		return Catalog{}, fmt.Errorf("parsing fixtures: %w", err)
	}

	catalog := Catalog{
		Customers: make([]*customerdomain.Customer, 0, len(fixtures.Customers)),
		Products:  make([]*productdomain.Product, 0, len(fixtures.Products)),
	}
	seen := make(map[string]struct{})
	for i, c := range fixtures.Customers {
		customer, err := customerdomain.NewCustomer(c.ID, c.Name, c.Email)
		if err != nil {
			return Catalog{}, fmt.Errorf("customers[%d]: %w", i, err)
		}
		if _, dup := seen["customer:"+customer.ID]; dup {
			return Catalog{}, fmt.Errorf("customers[%d]: duplicate id %q", i, customer.ID)
		}
		seen["customer:"+customer.ID] = struct{}{}
		catalog.Customers = append(catalog.Customers, customer)
	}
	for i, p := range fixtures.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return Catalog{}, fmt.Errorf("products[%d]: invalid price %q: %w", i, p.Price, err)
		}
		product, err := productdomain.NewProduct(p.ID, p.Name, price, p.Quantity)
		if err != nil {
			return Catalog{}, fmt.Errorf("products[%d]: %w", i, err)
		}
		if _, dup := seen["product:"+product.ID]; dup {
			return Catalog{}, fmt.Errorf("products[%d]: duplicate id %q", i, product.ID)
		}
		seen["product:"+product.ID] = struct{}{}
		catalog.Products = append(catalog.Products, product)
	}
	return catalog, nil
}

// Seed writes every customer and product. Existing records with the same id are replaced.
func Seed(ctx context.Context, catalog Catalog, customers CustomerWriter, products ProductWriter) error {
	for _, c := range catalog.Customers {
		if _, err := customers.Save(ctx, c); err != nil {
			return fmt.Errorf("saving customer %q: %w", c.ID, err)
		}
	}
	for _, p := range catalog.Products {
		if _, err := products.Save(ctx, p); err != nil {
			return fmt.Errorf("saving product %q: %w", p.ID, err)
		}
	}
	return nil
}

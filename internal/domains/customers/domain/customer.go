package domain

import (
	"errors"
	"strings"
)

var ErrEmptyCustomerID = errors.New("customer id is required")

// Customer is the buyer an order is placed for.
type Customer struct {
	ID    string
	Name  string
	Email string
}

// NewCustomer builds a customer ensuring the identifier is present.
func NewCustomer(id, name, email string) (*Customer, error) {
	c := &Customer{ID: strings.TrimSpace(id), Name: strings.TrimSpace(name), Email: strings.TrimSpace(email)}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate enforces invariants on the entity.
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return ErrEmptyCustomerID
	}
	return nil
}

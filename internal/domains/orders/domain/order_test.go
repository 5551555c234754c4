package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestOrderValidate(t *testing.T) {
	price := decimal.NewFromInt(100)
	cases := []struct {
		name  string
		order Order
		want  error
	}{
		{"valid", Order{CustomerID: "c1", Lines: []Line{{ProductID: "p1", Quantity: 1, Price: price}}}, nil},
		{"missing customer", Order{Lines: []Line{{ProductID: "p1", Quantity: 1, Price: price}}}, ErrEmptyCustomerID},
		{"no lines", Order{CustomerID: "c1"}, ErrNoLines},
		{"zero quantity", Order{CustomerID: "c1", Lines: []Line{{ProductID: "p1", Price: price}}}, ErrInvalidQuantity},
		{"negative price", Order{CustomerID: "c1", Lines: []Line{{ProductID: "p1", Quantity: 1, Price: decimal.NewFromInt(-1)}}}, ErrNegativePrice},
		{"missing product", Order{CustomerID: "c1", Lines: []Line{{Quantity: 1, Price: price}}}, ErrEmptyProductID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.order.Validate()
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOrderTotal(t *testing.T) {
	order := Order{
		CustomerID: "c1",
		Lines: []Line{
			{ProductID: "p1", Quantity: 3, Price: decimal.RequireFromString("9.99")},
			{ProductID: "p2", Quantity: 1, Price: decimal.NewFromInt(5)},
			{ProductID: "p1", Quantity: 2, Price: decimal.RequireFromString("9.99")},
		},
	}
	require.True(t, decimal.RequireFromString("54.95").Equal(order.Total()))
}

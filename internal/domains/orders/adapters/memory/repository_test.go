package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	customerdomain "github.com/Apurer/go-gin-orders-api/internal/domains/customers/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-orders-api/internal/domains/orders/ports"
)

func TestCreate_AssignsIdentifiers(t *testing.T) {
	fixed := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	repo := NewRepository().WithClock(func() time.Time { return fixed })

	order, err := repo.Create(context.Background(), ports.NewOrder{
		Customer: &customerdomain.Customer{ID: "c1"},
		Lines: []domain.Line{
			{ProductID: "p1", Quantity: 3, Price: decimal.NewFromInt(100)},
			{ProductID: "p2", Quantity: 1, Price: decimal.NewFromInt(7)},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	require.Equal(t, "c1", order.CustomerID)
	require.Equal(t, fixed, order.CreatedAt)
	require.Len(t, order.Lines, 2)
	require.NotEmpty(t, order.Lines[0].ID)
	require.NotEqual(t, order.Lines[0].ID, order.Lines[1].ID)

	fetched, err := repo.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Equal(t, order, fetched)
}

func TestCreate_RejectsInvalidLines(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Create(context.Background(), ports.NewOrder{
		Customer: &customerdomain.Customer{ID: "c1"},
		Lines:    []domain.Line{{ProductID: "p1", Quantity: 0, Price: decimal.NewFromInt(1)}},
	})
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
	require.Zero(t, repo.Count())
}

func TestFindByID_NotFound(t *testing.T) {
	_, err := NewRepository().FindByID(context.Background(), "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

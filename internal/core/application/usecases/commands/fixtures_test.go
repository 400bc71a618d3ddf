package commands_test

import (
	"testing"

	"mealdash/internal/core/domain/model/kernel"
	"mealdash/internal/core/domain/model/menu"
	"mealdash/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testPrice(t *testing.T, s string) kernel.Price {
	t.Helper()
	price, err := kernel.PriceFromString(s)
	require.NoError(t, err)
	return price
}

func testMenuItem(t *testing.T, price string) menu.MenuItem {
	t.Helper()
	item, err := menu.NewMenuItem(kernel.NewUUID(), kernel.NewUUID(), "Pad Thai", testPrice(t, price))
	require.NoError(t, err)
	return item
}

func testPendingOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), 2, testPrice(t, "5.00"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.Item{item})
	require.NoError(t, err)
	return o
}

func testDeliveringOrder(t *testing.T, customerID, driverID kernel.UUID) *order.Order {
	t.Helper()
	o := testPendingOrder(t, customerID)
	outcome, err := o.Claim(driverID)
	require.NoError(t, err)
	require.True(t, outcome.Applied())
	return o
}

package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/model/rider"
)

func testMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromInt(amount)
	require.NoError(t, err)
	return m
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Margherita", "large", testMoney(t, 1000), 2)
	require.NoError(t, err)
	return []order.Item{item}
}

func placedDeliveryOrder(t *testing.T) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Aigerim", "+77010000001", "", "12 Abay Ave")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), order.NewNumber(time.Now()),
		kernel.NewUUID(), customer, testItems(t), order.TypeDelivery)
	require.NoError(t, err)
	return o
}

func placedTakeawayOrder(t *testing.T) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Dias", "+77010000002", "", "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), order.NewNumber(time.Now()),
		kernel.NewUUID(), customer, testItems(t), order.TypeTakeaway)
	require.NoError(t, err)
	return o
}

func preparingDeliveryOrder(t *testing.T) *order.Order {
	t.Helper()
	o := placedDeliveryOrder(t)
	require.NoError(t, o.TransitionTo(order.Preparing))
	return o
}

func bakingDeliveryOrderWithRider(t *testing.T, riderID kernel.UUID) *order.Order {
	t.Helper()
	o := preparingDeliveryOrder(t)
	require.NoError(t, o.TransitionTo(order.Baking))
	require.NoError(t, o.AssignRider(riderID))
	return o
}

func outForDeliveryOrder(t *testing.T, riderID kernel.UUID) *order.Order {
	t.Helper()
	o := bakingDeliveryOrderWithRider(t, riderID)
	require.NoError(t, o.TransitionTo(order.OutForDelivery))
	return o
}

func availableRider(t *testing.T) *rider.Rider {
	t.Helper()
	r, err := rider.NewRider(kernel.NewUUID(), "Nurlan", rider.VehicleMotorbike)
	require.NoError(t, err)
	return r
}

func busyRider(t *testing.T, orderID kernel.UUID) *rider.Rider {
	t.Helper()
	r := availableRider(t)
	require.NoError(t, r.Claim(orderID))
	return r
}

func completedCardPayment(t *testing.T, orderID kernel.UUID, amount int64) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(kernel.NewUUID(), orderID, payment.Card, testMoney(t, amount))
	require.NoError(t, err)
	require.NoError(t, p.Settle(payment.Completed, "txn-100"))
	return p
}

func processingCardPayment(t *testing.T, orderID kernel.UUID, amount int64) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(kernel.NewUUID(), orderID, payment.Card, testMoney(t, amount))
	require.NoError(t, err)
	return p
}

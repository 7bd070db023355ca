package order

import (
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Pricing constants applied on order creation. Totals are always recomputed
// server-side from the item list; a client-supplied total is never trusted.
var (
	// taxRate is applied to the item subtotal.
	taxRate = decimal.RequireFromString("0.15")

	// deliveryFee is the flat fee charged on delivery orders.
	deliveryFee = decimal.RequireFromString("100")
)

// totals holds the derived money fields of an order.
type totals struct {
	subtotal    kernel.Money
	tax         kernel.Money
	deliveryFee kernel.Money
	discount    kernel.Money
	total       kernel.Money
}

// computeTotals derives subtotal, tax, delivery fee and total from the item
// list. The invariant total == subtotal + tax + deliveryFee - discount holds
// by construction.
func computeTotals(items []Item, orderType Type, discount kernel.Money) totals {
	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	tax := subtotal.MulRate(taxRate)

	fee := kernel.ZeroMoney()
	if orderType.IsDelivery() {
		fee, _ = kernel.NewMoney(deliveryFee)
	}

	return totals{
		subtotal:    subtotal,
		tax:         tax,
		deliveryFee: fee,
		discount:    discount,
		total:       subtotal.Add(tax).Add(fee).Sub(discount),
	}
}

// Package order contains the Order aggregate: the priced item list, the
// customer and branch references, the derived money totals, and the
// fulfillment status state machine. The aggregate enforces every order-local
// invariant; cross-aggregate rules (rider claims, payment reconciliation)
// live in the application layer.
package order

// Package payment contains the Payment aggregate: a single collection
// attempt against an order with idempotent settlement and cumulative
// refund accounting.
package payment

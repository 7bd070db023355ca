// Package queries contains read-side operations over the database.
// Query handlers bypass the aggregates and read with raw SQL, returning
// flat read models shaped for the API.
package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrGetUncompletedOrdersQueryIsNotConstructed = errors.New(
	"GetUncompletedOrdersQuery must be created via NewGetUncompletedOrdersQuery constructor",
)

// GetUncompletedOrdersQuery retrieves all orders that have not reached a
// terminal status, for the kitchen and dispatch boards.
type GetUncompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedOrdersQuery creates a query to retrieve open orders.
func NewGetUncompletedOrdersQuery() GetUncompletedOrdersQuery {
	return GetUncompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUncompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedOrdersQueryIsNotConstructed)
}

// GetUncompletedOrdersQueryResponse is the read model of one open order.
type GetUncompletedOrdersQueryResponse struct {
	ID             kernel.UUID
	Number         string
	OrderType      string
	Status         string
	PaymentSummary string
	Total          kernel.Money
	RiderID        *kernel.UUID
}

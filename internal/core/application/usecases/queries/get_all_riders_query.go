package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrGetAllRidersQueryIsNotConstructed = errors.New(
	"GetAllRidersQuery must be created via NewGetAllRidersQuery constructor",
)

// GetAllRidersQuery retrieves the whole rider fleet with availability.
type GetAllRidersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllRidersQuery creates a query to retrieve all riders.
func NewGetAllRidersQuery() GetAllRidersQuery {
	return GetAllRidersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRidersQueryIsNotConstructed)
}

// GetAllRidersQueryResponse is the read model of one rider.
type GetAllRidersQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Vehicle       string
	Availability  string
	ActiveOrderID *kernel.UUID
}

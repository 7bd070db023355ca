package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The update is
	// guarded by the aggregate version: a stale version is rejected with
	// errs.ErrVersionIsInvalid instead of overwriting concurrent changes.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUncompleted retrieves all orders that have not yet reached a
	// terminal status, for the kitchen and dispatch boards.
	GetAllUncompleted(ctx context.Context) ([]*order.Order, error)
}

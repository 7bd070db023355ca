package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
type RiderRepository interface {
	// Add persists a new rider aggregate to storage.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider aggregate.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetAll retrieves every rider of the fleet.
	GetAll(ctx context.Context) ([]*rider.Rider, error)

	// ClaimAvailable atomically claims the rider for the given order: the
	// rider moves from available to busy only if still available at the
	// moment of the write. When a concurrent claim won the rider first,
	// rider.ErrRiderUnavailable is returned and nothing changes.
	ClaimAvailable(ctx context.Context, riderID kernel.UUID, orderID kernel.UUID) error
}

package rider

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider or RestoreRider constructor")

	// ErrNameIsRequired is returned when attempting to create a rider without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrRiderUnavailable is returned when a claim races another order or targets
	// a busy or offline rider. Callers should retry with a different rider.
	ErrRiderUnavailable = errors.New("rider is not available")

	// ErrRiderBusy is returned when a manual availability toggle targets a rider
	// holding an active order.
	ErrRiderBusy = errors.New("rider has an active order")
)

// Rider is the aggregate for a delivery courier. It is the system's primary
// contended resource: at most one order may hold a rider active at a time.
//
// Invariant: availability == busy if and only if activeOrderID != nil. The
// rider never owns the order; the back-reference exists only for lookup and
// release.
//
// The in-memory Claim validation is a fast path. The authoritative
// check-and-set is the conditional update in the rider repository, executed
// in the same transaction, so concurrent claims for one rider resolve to
// exactly one winner.
type Rider struct {
	// id uniquely identifies the rider
	id kernel.UUID

	// name is the human-readable name of the rider
	name string

	// vehicle is what the rider delivers with
	vehicle VehicleType

	// availability is the current availability state
	availability Availability

	// activeOrderID is the weak back-reference to the claiming order
	activeOrderID *kernel.UUID

	// guard ensures the rider was properly constructed
	guard guard.ConstructorGuard
}

// NewRider creates a new Rider starting available with no active order.
func NewRider(id kernel.UUID, name string, vehicle VehicleType) (*Rider, error) {
	rider := &Rider{
		availability: Available,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rider.setID(id),
		rider.setName(name),
		rider.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return rider, nil
}

// RestoreRider reconstructs a Rider aggregate from persistent storage,
// enforcing the busy/active-order consistency invariant on the way in.
func RestoreRider(
	id kernel.UUID,
	name string,
	vehicle VehicleType,
	availability Availability,
	activeOrderID *kernel.UUID,
) (*Rider, error) {
	rider := &Rider{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rider.setID(id),
		rider.setName(name),
		rider.setVehicle(vehicle),
		availability.Validate(),
		availability.ValidateActiveOrder(activeOrderID != nil),
	); err != nil {
		return nil, err
	}

	rider.availability = availability
	rider.activeOrderID = activeOrderID
	return rider, nil
}

// Validate ensures the Rider instance was properly constructed.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// IsEqual compares two riders by their unique identifiers.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's name.
func (r *Rider) Name() string {
	return r.name
}

// Vehicle returns the rider's vehicle type.
func (r *Rider) Vehicle() VehicleType {
	return r.vehicle
}

// Availability returns the current availability state.
func (r *Rider) Availability() Availability {
	return r.availability
}

// ActiveOrderID returns the claiming order's ID, or nil when idle.
func (r *Rider) ActiveOrderID() *kernel.UUID {
	return r.activeOrderID
}

// Claim marks the rider busy with the given order.
//
// Succeeds only from available; busy and offline riders return
// ErrRiderUnavailable so the caller can pick a different rider.
func (r *Rider) Claim(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if r.availability != Available {
		return fmt.Errorf("%w: %s is %s", ErrRiderUnavailable, r.name, r.availability)
	}

	r.availability = Busy
	r.activeOrderID = &orderID
	return nil
}

// Release returns the rider to available and clears the active order.
// Idempotent: releasing an already-available rider is a no-op, which lets a
// delivery completion and a near-simultaneous cancellation both call it safely.
func (r *Rider) Release() {
	if r.availability == Offline {
		return
	}
	r.availability = Available
	r.activeOrderID = nil
}

// SetOffline takes the rider off shift. Rejected with ErrRiderBusy while an
// active order is held.
func (r *Rider) SetOffline() error {
	if r.activeOrderID != nil {
		return fmt.Errorf("%w: %s", ErrRiderBusy, r.name)
	}
	r.availability = Offline
	return nil
}

// SetAvailable puts the rider back on shift. Rejected with ErrRiderBusy when
// called on a busy rider; the claim owns that state.
func (r *Rider) SetAvailable() error {
	if r.availability == Busy {
		return fmt.Errorf("%w: %s", ErrRiderBusy, r.name)
	}
	r.availability = Available
	return nil
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Rider) setVehicle(vehicle VehicleType) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	r.vehicle = vehicle
	return nil
}

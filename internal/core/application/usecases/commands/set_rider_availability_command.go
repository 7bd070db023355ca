package commands

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/rider"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrSetRiderAvailabilityCommandIsNotConstructed = errors.New(
	"SetRiderAvailabilityCommand must be created via NewSetRiderAvailabilityCommand constructor",
)

// SetRiderAvailabilityCommand represents a manual availability toggle for a
// rider: clocking in (available) or clocking out (offline). The busy state
// is never set manually; it only follows from an order claim.
type SetRiderAvailabilityCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID
	target  rider.Availability

	guard guard.ConstructorGuard
}

// NewSetRiderAvailabilityCommand creates a command to toggle rider availability.
// Only available and offline are accepted as targets.
func NewSetRiderAvailabilityCommand(riderID kernel.UUID, target rider.Availability) (SetRiderAvailabilityCommand, error) {
	cmd := SetRiderAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setTarget(target),
	); err != nil {
		return SetRiderAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRiderAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetRiderAvailabilityCommandIsNotConstructed)
}

// RiderID returns the identifier of the rider to toggle.
func (c SetRiderAvailabilityCommand) RiderID() kernel.UUID { return c.riderID }

// Target returns the requested availability, available or offline.
func (c SetRiderAvailabilityCommand) Target() rider.Availability { return c.target }

func (c *SetRiderAvailabilityCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *SetRiderAvailabilityCommand) setTarget(target rider.Availability) error {
	if target != rider.Available && target != rider.Offline {
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("availability can only be set to available or offline, got %s", target))
	}

	c.target = target
	return nil
}

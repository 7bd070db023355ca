package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/rider"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrCreateRiderCommandIsNotConstructed = errors.New(
		"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
	)
	ErrRiderNameIsRequired = errors.New("rider name is required")
)

// CreateRiderCommand represents a request to register a new rider in the
// fleet. New riders start available.
type CreateRiderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.UUID
	name    string
	vehicle rider.VehicleType

	guard guard.ConstructorGuard
}

// NewCreateRiderCommand creates a command to register a rider.
func NewCreateRiderCommand(riderID kernel.UUID, name string, vehicle rider.VehicleType) (CreateRiderCommand, error) {
	cmd := CreateRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setName(name),
		cmd.setVehicle(vehicle),
	); err != nil {
		return CreateRiderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderCommandIsNotConstructed)
}

// RiderID returns the identifier for the new rider.
func (c CreateRiderCommand) RiderID() kernel.UUID { return c.riderID }

// Name returns the rider's display name.
func (c CreateRiderCommand) Name() string { return c.name }

// Vehicle returns the rider's vehicle type.
func (c CreateRiderCommand) Vehicle() rider.VehicleType { return c.vehicle }

func (c *CreateRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *CreateRiderCommand) setName(name string) error {
	if name == "" {
		return ErrRiderNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRiderCommand) setVehicle(vehicle rider.VehicleType) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}

	c.vehicle = vehicle
	return nil
}

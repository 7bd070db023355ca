package commands

import (
	"context"
)

// AssignRiderCommandHandler attaches a manually chosen rider to a delivery
// order. The rider is claimed with an atomic compare-and-set in storage, so
// two dispatchers racing for the same rider resolve to exactly one winner.
type AssignRiderCommandHandler struct {
	uowFactory OrderRiderUoWFactory
}

// NewAssignRiderCommandHandler creates a handler for rider assignment.
func NewAssignRiderCommandHandler(uowFactory OrderRiderUoWFactory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider assignment command.
// Order-side rules run first (delivery type, assignable status); then the
// claim CAS moves the rider from available to busy. On a lost claim
// rider.ErrRiderUnavailable surfaces and the transaction rolls back with
// the order untouched.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = ord.AssignRider(cmd.RiderID()); err != nil {
		return err
	}

	if err = uow.RiderRepository().ClaimAvailable(ctx, cmd.RiderID(), cmd.OrderID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

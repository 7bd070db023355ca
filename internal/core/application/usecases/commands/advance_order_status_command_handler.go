package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// AdvanceOrderStatusCommandHandler moves an order along its lifecycle.
// A transition into Delivered also releases the assigned rider, in the same
// transaction, so the rider becomes available the moment the order closes.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderRiderUoWFactory
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status transitions.
// Requires an OrderRiderUoWFactory because delivery completion touches the
// rider aggregate as well.
func NewAdvanceOrderStatusCommandHandler(uowFactory OrderRiderUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Illegal transitions surface order.ErrInvalidTransition; dispatching a
// delivery without an assigned rider surfaces order.ErrRiderRequired. Both
// leave the order unchanged. Concurrent transitions lose on the version
// guard inside the repository update.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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

	// The aggregate clears the rider reference on terminal entry, so take
	// it before the transition.
	riderID := ord.RiderID()

	if err = ord.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	if cmd.Target() == order.Delivered && riderID != nil {
		riderRepo := uow.RiderRepository()

		assignedRider, err := riderRepo.Get(ctx, *riderID)
		if err != nil {
			return err
		}
		assignedRider.Release()

		if err = riderRepo.Update(ctx, assignedRider); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

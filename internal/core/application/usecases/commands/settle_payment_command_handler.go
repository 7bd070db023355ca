package commands

import (
	"context"

	"pizzeria/internal/core/domain/services"
)

// SettlePaymentCommandHandler records the settlement outcome of a payment
// attempt and recomputes the order's payment summary from the full ledger
// in the same transaction.
type SettlePaymentCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	reconciler services.PaymentReconciler
}

// NewSettlePaymentCommandHandler creates a handler for payment settlement.
func NewSettlePaymentCommandHandler(uowFactory OrderPaymentUoWFactory) SettlePaymentCommandHandler {
	return SettlePaymentCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewPaymentReconciler(),
	}
}

// Handle processes the settlement command.
// Replaying an already recorded outcome succeeds without any writes, so
// processor retries stay safe. A conflicting outcome surfaces
// payment.ErrAlreadySettled and rolls back.
func (h SettlePaymentCommandHandler) Handle(ctx context.Context, cmd SettlePaymentCommand) error {
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

	paymentRepo := uow.PaymentRepository()

	attempt, err := paymentRepo.Get(ctx, cmd.PaymentID())
	if err != nil {
		return err
	}

	if err = attempt.Settle(cmd.Outcome(), cmd.TransactionID()); err != nil {
		return err
	}

	if err = paymentRepo.Update(ctx, attempt); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	ord, err := orderRepo.Get(ctx, attempt.OrderID())
	if err != nil {
		return err
	}

	payments, err := paymentRepo.GetAllByOrder(ctx, ord.ID())
	if err != nil {
		return err
	}

	summary := h.reconciler.Summarize(payments)
	if summary != ord.PaymentSummary() {
		if err = ord.SetPaymentSummary(summary); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, ord); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

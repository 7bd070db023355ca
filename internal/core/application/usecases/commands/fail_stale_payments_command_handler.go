package commands

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/services"
)

// FailStalePaymentsCommandHandler fails processing payments whose processor
// callback never arrived, so their orders stop waiting on dead attempts and
// a new payment can be recorded.
type FailStalePaymentsCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	reconciler services.PaymentReconciler
}

// NewFailStalePaymentsCommandHandler creates a handler for the stale payment sweep.
func NewFailStalePaymentsCommandHandler(uowFactory OrderPaymentUoWFactory) FailStalePaymentsCommandHandler {
	return FailStalePaymentsCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewPaymentReconciler(),
	}
}

// Handle processes the sweep.
// Every stale attempt is voided and its order's payment summary recomputed,
// all in one transaction. A concurrent late callback loses or wins the row
// atomically; either way the ledger stays consistent.
func (h FailStalePaymentsCommandHandler) Handle(ctx context.Context, cmd FailStalePaymentsCommand) error {
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

	stale, err := paymentRepo.GetAllStaleProcessing(ctx, time.Now().Add(-cmd.MaxAge()))
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	for _, attempt := range stale {
		if err = attempt.Void(); err != nil {
			return err
		}
		if err = paymentRepo.Update(ctx, attempt); err != nil {
			return err
		}

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
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

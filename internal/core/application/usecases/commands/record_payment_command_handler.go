package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/services"
)

// RecordPaymentCommandHandler opens a new payment attempt in the ledger.
// An order keeps at most one active attempt at a time; a second attempt is
// only accepted after the first one failed or was refunded.
type RecordPaymentCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	reconciler services.PaymentReconciler
}

// NewRecordPaymentCommandHandler creates a handler for recording payment attempts.
func NewRecordPaymentCommandHandler(uowFactory OrderPaymentUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		reconciler: services.NewPaymentReconciler(),
	}
}

// Handle processes the record payment command.
// The duplicate-active check runs against the ledger inside the transaction;
// the partial unique index on active payments backs it up under races.
func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	paymentRepo := uow.PaymentRepository()

	payments, err := paymentRepo.GetAllByOrder(ctx, ord.ID())
	if err != nil {
		return err
	}
	for _, p := range payments {
		if p.IsActive() {
			return payment.ErrDuplicateActivePayment
		}
	}

	attempt, err := payment.NewPayment(cmd.PaymentID(), ord.ID(), cmd.Method(), cmd.Amount())
	if err != nil {
		return err
	}

	if err = paymentRepo.Add(ctx, attempt); err != nil {
		return err
	}

	summary := h.reconciler.Summarize(append(payments, attempt))
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

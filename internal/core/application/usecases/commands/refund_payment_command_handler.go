package commands

import (
	"context"

	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
)

// RefundPaymentCommandHandler returns funds for a settled payment attempt.
// Card and online refunds go through the external processor; cash refunds
// are handed back at the counter and only recorded here. Either way the
// ledger write and the order summary recomputation share one transaction.
type RefundPaymentCommandHandler struct {
	uowFactory OrderPaymentUoWFactory
	processor  ports.PaymentProcessor
	reconciler services.PaymentReconciler
}

// NewRefundPaymentCommandHandler creates a handler for payment refunds.
func NewRefundPaymentCommandHandler(uowFactory OrderPaymentUoWFactory,
	processor ports.PaymentProcessor) RefundPaymentCommandHandler {
	return RefundPaymentCommandHandler{
		uowFactory: uowFactory,
		processor:  processor,
		reconciler: services.NewPaymentReconciler(),
	}
}

// Handle processes the refund command.
// The domain check runs before the processor call, so an over-refund never
// reaches the provider. A failing processor call rolls the ledger back.
func (h RefundPaymentCommandHandler) Handle(ctx context.Context, cmd RefundPaymentCommand) error {
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

	if err = attempt.Refund(cmd.Amount()); err != nil {
		return err
	}

	if attempt.Method().RequiresProcessor() {
		if err = h.processor.Refund(ctx, attempt.ID(), attempt.TransactionID(), cmd.Amount()); err != nil {
			return err
		}
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

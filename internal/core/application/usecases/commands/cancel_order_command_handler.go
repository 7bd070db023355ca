package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order before dispatch and unwinds
// everything attached to it: the assigned rider is released, settled
// payments are refunded for their remaining amount, and in-flight processor
// attempts are voided. All of it happens in one transaction; if any step
// fails the order keeps its pre-cancellation status.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	processor  ports.PaymentProcessor
	reconciler services.PaymentReconciler
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires the full UoWFactory and the external payment processor for
// refund and void calls.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, processor ports.PaymentProcessor) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		processor:  processor,
		reconciler: services.NewPaymentReconciler(),
	}
}

// Handle processes the cancellation command.
// Cancellation is only legal before dispatch; the transition table rejects
// it from OutForDelivery and from terminal statuses with
// order.ErrInvalidTransition.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	// Cancel clears the rider reference on the aggregate, so take it first.
	riderID := ord.RiderID()

	if err = ord.Cancel(); err != nil {
		return err
	}

	if riderID != nil {
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

	paymentRepo := uow.PaymentRepository()

	payments, err := paymentRepo.GetAllByOrder(ctx, ord.ID())
	if err != nil {
		return err
	}

	for _, p := range payments {
		changed, err := h.unwindPayment(ctx, p)
		if err != nil {
			return err
		}
		if changed {
			if err = paymentRepo.Update(ctx, p); err != nil {
				return err
			}
		}
	}

	if err = ord.SetPaymentSummary(h.reconciler.Summarize(payments)); err != nil {
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

// unwindPayment returns funds or abandons the attempt, depending on where
// the attempt stands. Failed and already refunded attempts need nothing.
func (h CancelOrderCommandHandler) unwindPayment(ctx context.Context, p *payment.Payment) (bool, error) {
	switch p.Status() {
	case payment.Processing:
		if err := h.processor.Void(ctx, p.ID(), p.TransactionID()); err != nil {
			return false, err
		}
		return true, p.Void()

	case payment.Pending:
		// Cash never collected; nothing moved, nothing to return.
		return true, p.Void()

	case payment.Completed, payment.PartiallyRefunded:
		remaining := p.RemainingRefundable()
		if p.Method().RequiresProcessor() {
			if err := h.processor.Refund(ctx, p.ID(), p.TransactionID(), remaining); err != nil {
				return false, err
			}
		}
		return true, p.Refund(remaining)

	default:
		return false, nil
	}
}

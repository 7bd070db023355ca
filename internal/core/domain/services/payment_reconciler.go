package services

import (
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
)

// PaymentReconciler is a domain service that derives the payment summary of
// an order from the full set of payment attempts recorded against it.
//
// The summary is never stored authority: whenever a payment attempt changes,
// the reconciler recomputes it from scratch. Failed attempts carry no weight;
// the summary follows the most advanced attempt that does:
//
//   - any completed attempt          -> completed
//   - any partially refunded attempt -> partially_refunded
//   - any fully refunded attempt     -> refunded
//   - otherwise                      -> pending
type PaymentReconciler struct{}

// NewPaymentReconciler creates a new PaymentReconciler instance.
func NewPaymentReconciler() PaymentReconciler {
	return PaymentReconciler{}
}

// Summarize derives the order-level payment summary from payment attempts.
// An empty set, or a set of only failed attempts, summarizes as pending:
// the order still awaits a successful payment.
func (PaymentReconciler) Summarize(payments []*payment.Payment) order.PaymentSummary {
	summary := order.SummaryPending
	for _, p := range payments {
		switch p.Status() {
		case payment.Completed:
			return order.SummaryCompleted
		case payment.PartiallyRefunded:
			summary = order.SummaryPartiallyRefunded
		case payment.Refunded:
			if summary != order.SummaryPartiallyRefunded {
				summary = order.SummaryRefunded
			}
		}
	}
	return summary
}

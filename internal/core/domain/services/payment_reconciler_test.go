package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/core/domain/services"
)

func paymentInStatus(t *testing.T, status payment.Status) *payment.Payment {
	t.Helper()

	amount, err := kernel.NewMoneyFromInt(500)
	require.NoError(t, err)
	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), payment.Card, amount)
	require.NoError(t, err)

	switch status {
	case payment.Processing:
	case payment.Completed:
		require.NoError(t, p.Settle(payment.Completed, "txn"))
	case payment.Failed:
		require.NoError(t, p.Settle(payment.Failed, "txn"))
	case payment.Refunded:
		require.NoError(t, p.Settle(payment.Completed, "txn"))
		require.NoError(t, p.Refund(amount))
	case payment.PartiallyRefunded:
		part, err := kernel.NewMoneyFromInt(200)
		require.NoError(t, err)
		require.NoError(t, p.Settle(payment.Completed, "txn"))
		require.NoError(t, p.Refund(part))
	default:
		t.Fatalf("unsupported status %s", status)
	}
	return p
}

func Test_PaymentReconciler_NoAttemptsIsPending(t *testing.T) {
	reconciler := services.NewPaymentReconciler()

	assert.Equal(t, order.SummaryPending, reconciler.Summarize(nil))
}

func Test_PaymentReconciler_FailedAttemptsCarryNoWeight(t *testing.T) {
	reconciler := services.NewPaymentReconciler()
	payments := []*payment.Payment{
		paymentInStatus(t, payment.Failed),
		paymentInStatus(t, payment.Failed),
	}

	assert.Equal(t, order.SummaryPending, reconciler.Summarize(payments))
}

func Test_PaymentReconciler_CompletedWins(t *testing.T) {
	reconciler := services.NewPaymentReconciler()
	payments := []*payment.Payment{
		paymentInStatus(t, payment.Failed),
		paymentInStatus(t, payment.Refunded),
		paymentInStatus(t, payment.Completed),
	}

	assert.Equal(t, order.SummaryCompleted, reconciler.Summarize(payments))
}

func Test_PaymentReconciler_ProcessingIsStillPending(t *testing.T) {
	reconciler := services.NewPaymentReconciler()
	payments := []*payment.Payment{paymentInStatus(t, payment.Processing)}

	assert.Equal(t, order.SummaryPending, reconciler.Summarize(payments))
}

func Test_PaymentReconciler_RefundStates(t *testing.T) {
	reconciler := services.NewPaymentReconciler()

	refunded := []*payment.Payment{
		paymentInStatus(t, payment.Failed),
		paymentInStatus(t, payment.Refunded),
	}
	assert.Equal(t, order.SummaryRefunded, reconciler.Summarize(refunded))

	partial := []*payment.Payment{
		paymentInStatus(t, payment.Refunded),
		paymentInStatus(t, payment.PartiallyRefunded),
	}
	assert.Equal(t, order.SummaryPartiallyRefunded, reconciler.Summarize(partial))
}

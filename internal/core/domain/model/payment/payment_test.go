package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/core/domain/model/kernel"
)

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromInt(amount)
	require.NoError(t, err)
	return m
}

func newCashPayment(t *testing.T, amount int64) *Payment {
	t.Helper()
	p, err := NewPayment(kernel.NewUUID(), kernel.NewUUID(), Cash, mustMoney(t, amount))
	require.NoError(t, err)
	return p
}

func newCardPayment(t *testing.T, amount int64) *Payment {
	t.Helper()
	p, err := NewPayment(kernel.NewUUID(), kernel.NewUUID(), Card, mustMoney(t, amount))
	require.NoError(t, err)
	return p
}

func Test_NewPayment_CashStartsPending(t *testing.T) {
	p := newCashPayment(t, 500)

	assert.NoError(t, p.Validate())
	assert.Equal(t, Pending, p.Status())
	assert.True(t, p.IsActive())
	assert.Empty(t, p.TransactionID())
	assert.True(t, p.RefundedAmount().IsZero())
}

func Test_NewPayment_CardStartsProcessing(t *testing.T) {
	p := newCardPayment(t, 500)

	assert.Equal(t, Processing, p.Status())
	assert.True(t, p.IsActive())
}

func Test_NewPayment_RejectsNonPositiveAmount(t *testing.T) {
	_, err := NewPayment(kernel.NewUUID(), kernel.NewUUID(), Cash, kernel.ZeroMoney())

	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func Test_NewPayment_RejectsUnknownMethod(t *testing.T) {
	_, err := NewPayment(kernel.NewUUID(), kernel.NewUUID(), MethodUnknown, mustMoney(t, 100))

	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func Test_Payment_SettleCompletes(t *testing.T) {
	p := newCardPayment(t, 500)

	require.NoError(t, p.Settle(Completed, "txn-001"))

	assert.Equal(t, Completed, p.Status())
	assert.Equal(t, "txn-001", p.TransactionID())
	assert.True(t, p.IsActive())
}

func Test_Payment_SettleFails(t *testing.T) {
	p := newCardPayment(t, 500)

	require.NoError(t, p.Settle(Failed, "txn-002"))

	assert.Equal(t, Failed, p.Status())
	assert.False(t, p.IsActive())
}

func Test_Payment_SettleReplayIsNoOp(t *testing.T) {
	p := newCardPayment(t, 500)
	require.NoError(t, p.Settle(Completed, "txn-001"))

	assert.NoError(t, p.Settle(Completed, "txn-001"))
	assert.Equal(t, Completed, p.Status())
}

func Test_Payment_SettleConflictingOutcomeIsRejected(t *testing.T) {
	p := newCardPayment(t, 500)
	require.NoError(t, p.Settle(Completed, "txn-001"))

	assert.ErrorIs(t, p.Settle(Failed, "txn-001"), ErrAlreadySettled)
	assert.ErrorIs(t, p.Settle(Completed, "txn-002"), ErrAlreadySettled)
	assert.Equal(t, Completed, p.Status())
	assert.Equal(t, "txn-001", p.TransactionID())
}

func Test_Payment_SettleRejectsNonTerminalOutcome(t *testing.T) {
	p := newCardPayment(t, 500)

	assert.Error(t, p.Settle(Processing, "txn-001"))
	assert.Error(t, p.Settle(Refunded, "txn-001"))
	assert.Equal(t, Processing, p.Status())
}

func Test_Payment_RefundPartialThenFull(t *testing.T) {
	p := newCardPayment(t, 500)
	require.NoError(t, p.Settle(Completed, "txn-001"))

	require.NoError(t, p.Refund(mustMoney(t, 200)))
	assert.Equal(t, PartiallyRefunded, p.Status())
	assert.True(t, p.RefundedAmount().IsEqual(mustMoney(t, 200)))
	assert.True(t, p.RemainingRefundable().IsEqual(mustMoney(t, 300)))

	require.NoError(t, p.Refund(mustMoney(t, 300)))
	assert.Equal(t, Refunded, p.Status())
	assert.True(t, p.RemainingRefundable().IsZero())
	assert.False(t, p.IsActive())
}

func Test_Payment_OverRefundLeavesAccountingUntouched(t *testing.T) {
	p := newCardPayment(t, 500)
	require.NoError(t, p.Settle(Completed, "txn-001"))
	require.NoError(t, p.Refund(mustMoney(t, 400)))

	err := p.Refund(mustMoney(t, 200))

	assert.ErrorIs(t, err, ErrOverRefund)
	assert.Equal(t, PartiallyRefunded, p.Status())
	assert.True(t, p.RefundedAmount().IsEqual(mustMoney(t, 400)))
}

func Test_Payment_RefundRequiresCompletedPayment(t *testing.T) {
	pending := newCashPayment(t, 500)
	assert.ErrorIs(t, pending.Refund(mustMoney(t, 100)), ErrNotRefundable)

	failed := newCardPayment(t, 500)
	require.NoError(t, failed.Settle(Failed, "txn-003"))
	assert.ErrorIs(t, failed.Refund(mustMoney(t, 100)), ErrNotRefundable)
}

func Test_Payment_FullyRefundedIsTerminal(t *testing.T) {
	p := newCardPayment(t, 500)
	require.NoError(t, p.Settle(Completed, "txn-001"))
	require.NoError(t, p.Refund(mustMoney(t, 500)))

	assert.ErrorIs(t, p.Refund(mustMoney(t, 1)), ErrNotRefundable)
}

func Test_Payment_VoidAbandonsUnsettledAttempt(t *testing.T) {
	processing := newCardPayment(t, 500)
	require.NoError(t, processing.Void())
	assert.Equal(t, Failed, processing.Status())
	assert.False(t, processing.IsActive())

	pending := newCashPayment(t, 500)
	require.NoError(t, pending.Void())
	assert.Equal(t, Failed, pending.Status())
}

func Test_Payment_VoidRejectsSettledAttempt(t *testing.T) {
	completed := newCardPayment(t, 500)
	require.NoError(t, completed.Settle(Completed, "txn-001"))
	assert.ErrorIs(t, completed.Void(), ErrNotVoidable)

	failed := newCardPayment(t, 500)
	require.NoError(t, failed.Settle(Failed, "txn-002"))
	assert.ErrorIs(t, failed.Void(), ErrNotVoidable)
}

func Test_RestorePayment_Rehydrates(t *testing.T) {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()

	p, err := RestorePayment(id, orderID, Online, mustMoney(t, 750),
		PartiallyRefunded, "txn-042", mustMoney(t, 250))

	require.NoError(t, err)
	assert.True(t, p.ID().IsEqual(id))
	assert.True(t, p.OrderID().IsEqual(orderID))
	assert.Equal(t, PartiallyRefunded, p.Status())
	assert.True(t, p.RemainingRefundable().IsEqual(mustMoney(t, 500)))
}

func Test_RestorePayment_RejectsRefundBeyondAmount(t *testing.T) {
	_, err := RestorePayment(kernel.NewUUID(), kernel.NewUUID(), Online,
		mustMoney(t, 100), Refunded, "txn-042", mustMoney(t, 200))

	assert.ErrorIs(t, err, ErrInvalidPayment)
}

func Test_Payment_ValidateRejectsBareStruct(t *testing.T) {
	var p Payment

	assert.ErrorIs(t, p.Validate(), ErrPaymentIsNotConstructed)
}

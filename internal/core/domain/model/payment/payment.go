package payment

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment was created
	// bypassing its constructors.
	ErrPaymentIsNotConstructed = errs.NewValueIsRequiredError(
		"payment must be created via NewPayment or RestorePayment")

	// ErrInvalidPayment wraps validation failures during payment creation.
	ErrInvalidPayment = errors.New("invalid payment")

	// ErrAlreadySettled is returned when a settlement outcome conflicts with
	// one already recorded for the payment.
	ErrAlreadySettled = errors.New("payment is already settled")

	// ErrNotRefundable is returned when a refund is requested against a
	// payment that never completed.
	ErrNotRefundable = errors.New("payment is not refundable")

	// ErrOverRefund is returned when the requested refund would exceed the
	// amount still refundable on the payment.
	ErrOverRefund = errors.New("refund exceeds refundable amount")

	// ErrNotVoidable is returned when a void is requested against a payment
	// that already settled.
	ErrNotVoidable = errors.New("payment is not voidable")

	// ErrDuplicateActivePayment is returned when a new attempt is recorded
	// while the order already has an active payment.
	ErrDuplicateActivePayment = errors.New("order already has an active payment")
)

// Payment is a single payment attempt against an order. An order may
// accumulate several attempts over time, but at most one of them is active.
type Payment struct {
	id             kernel.UUID
	orderID        kernel.UUID
	method         Method
	amount         kernel.Money
	status         Status
	transactionID  string
	refundedAmount kernel.Money

	guard guard.ConstructorGuard
}

// NewPayment creates a payment attempt. Cash and COD attempts start pending
// and await manual confirmation; card and online attempts start processing
// and await the processor callback.
func NewPayment(id kernel.UUID, orderID kernel.UUID, method Method, amount kernel.Money) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		method.Validate(),
		validateAmount(amount),
	); err != nil {
		return nil, errors.Join(ErrInvalidPayment, err)
	}

	status := Pending
	if method.RequiresProcessor() {
		status = Processing
	}

	return &Payment{
		id:             id,
		orderID:        orderID,
		method:         method,
		amount:         amount,
		status:         status,
		refundedAmount: kernel.ZeroMoney(),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestorePayment rehydrates a payment from persistent storage.
func RestorePayment(id kernel.UUID, orderID kernel.UUID, method Method, amount kernel.Money,
	status Status, transactionID string, refundedAmount kernel.Money) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		method.Validate(),
		validateAmount(amount),
		status.Validate(),
	); err != nil {
		return nil, errors.Join(ErrInvalidPayment, err)
	}
	if refundedAmount.GreaterThan(amount) {
		return nil, errors.Join(ErrInvalidPayment,
			errs.NewValueIsInvalidErrorWithCause("refundedAmount",
				fmt.Errorf("refunded %s exceeds amount %s", refundedAmount, amount)))
	}

	return &Payment{
		id:             id,
		orderID:        orderID,
		method:         method,
		amount:         amount,
		status:         status,
		transactionID:  transactionID,
		refundedAmount: refundedAmount,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func validateAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("payment amount must be positive, got %s", amount))
	}
	return nil
}

// Validate checks that the Payment was created via its constructors.
func (p *Payment) Validate() error {
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the payment identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// OrderID returns the identifier of the order this attempt pays for.
func (p *Payment) OrderID() kernel.UUID { return p.orderID }

// Method returns the collection method of the attempt.
func (p *Payment) Method() Method { return p.method }

// Amount returns the amount of the attempt.
func (p *Payment) Amount() kernel.Money { return p.amount }

// Status returns the current lifecycle status.
func (p *Payment) Status() Status { return p.status }

// TransactionID returns the settlement transaction reference, empty until
// the payment settles.
func (p *Payment) TransactionID() string { return p.transactionID }

// RefundedAmount returns the total amount returned so far.
func (p *Payment) RefundedAmount() kernel.Money { return p.refundedAmount }

// IsActive reports whether this attempt blocks a new one for the same order.
func (p *Payment) IsActive() bool { return p.status.IsActive() }

// Settle records the settlement outcome of the attempt. Replaying the same
// outcome with the same transaction reference is a no-op, so processor
// callbacks and manual confirmations stay idempotent under retries.
func (p *Payment) Settle(outcome Status, transactionID string) error {
	if outcome != Completed && outcome != Failed {
		return errs.NewValueIsInvalidErrorWithCause("outcome",
			fmt.Errorf("settlement outcome must be completed or failed, got %s", outcome))
	}

	if p.status.IsSettleable() {
		p.status = outcome
		p.transactionID = transactionID
		return nil
	}

	if p.status == outcome && p.transactionID == transactionID {
		return nil
	}

	return fmt.Errorf("%w: status is %s (transaction %q)",
		ErrAlreadySettled, p.status, p.transactionID)
}

// Refund returns part or all of the settled amount. Refunds accumulate:
// the attempt becomes refunded once the full amount is returned and
// partially_refunded until then. A request exceeding the remaining
// refundable amount is rejected without changing the recorded total.
func (p *Payment) Refund(amount kernel.Money) error {
	if p.status != Completed && p.status != PartiallyRefunded {
		return fmt.Errorf("%w: status is %s", ErrNotRefundable, p.status)
	}
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("refund amount must be positive, got %s", amount))
	}

	refunded := p.refundedAmount.Add(amount)
	if refunded.GreaterThan(p.amount) {
		return fmt.Errorf("%w: %s remaining, %s requested",
			ErrOverRefund, p.RemainingRefundable(), amount)
	}

	p.refundedAmount = refunded
	if p.refundedAmount.IsEqual(p.amount) {
		p.status = Refunded
	} else {
		p.status = PartiallyRefunded
	}
	return nil
}

// RemainingRefundable returns the amount that can still be refunded.
func (p *Payment) RemainingRefundable() kernel.Money {
	if p.status != Completed && p.status != PartiallyRefunded {
		return kernel.ZeroMoney()
	}
	return p.amount.Sub(p.refundedAmount)
}

// Void abandons an unsettled attempt without funds moving, used when the
// order is cancelled or when the processor never answered. Settled attempts
// cannot be voided, only refunded.
func (p *Payment) Void() error {
	if !p.status.IsSettleable() {
		return fmt.Errorf("%w: status is %s", ErrNotVoidable, p.status)
	}
	p.status = Failed
	return nil
}

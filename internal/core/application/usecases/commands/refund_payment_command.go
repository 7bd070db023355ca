package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrRefundPaymentCommandIsNotConstructed = errors.New(
	"RefundPaymentCommand must be created via NewRefundPaymentCommand constructor",
)

// RefundPaymentCommand represents a request to return part or all of a
// settled payment.
type RefundPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	amount    kernel.Money

	guard guard.ConstructorGuard
}

// NewRefundPaymentCommand creates a command to refund a payment.
// Validates that the payment ID is valid and the amount is positive; the
// over-refund check runs against the loaded payment.
func NewRefundPaymentCommand(paymentID kernel.UUID, amount kernel.Money) (RefundPaymentCommand, error) {
	cmd := RefundPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setAmount(amount),
	); err != nil {
		return RefundPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefundPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier of the payment to refund.
func (c RefundPaymentCommand) PaymentID() kernel.UUID { return c.paymentID }

// Amount returns the amount to return.
func (c RefundPaymentCommand) Amount() kernel.Money { return c.amount }

func (c *RefundPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *RefundPaymentCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

package commands

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrSettlePaymentCommandIsNotConstructed = errors.New(
	"SettlePaymentCommand must be created via NewSettlePaymentCommand constructor",
)

// SettlePaymentCommand represents a settlement outcome for a payment
// attempt: a processor callback or a manual cash confirmation. Callers may
// deliver the same outcome more than once; settlement is idempotent.
type SettlePaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID     kernel.UUID
	outcome       payment.Status
	transactionID string

	guard guard.ConstructorGuard
}

// NewSettlePaymentCommand creates a command to settle a payment attempt.
// The outcome must be completed or failed; the transaction reference may be
// empty for manual cash confirmations.
func NewSettlePaymentCommand(paymentID kernel.UUID, outcome payment.Status,
	transactionID string) (SettlePaymentCommand, error) {
	cmd := SettlePaymentCommand{
		transactionID: transactionID,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setOutcome(outcome),
	); err != nil {
		return SettlePaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettlePaymentCommand) Validate() error {
	return c.guard.Validate(ErrSettlePaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier of the payment to settle.
func (c SettlePaymentCommand) PaymentID() kernel.UUID { return c.paymentID }

// Outcome returns the settlement outcome, completed or failed.
func (c SettlePaymentCommand) Outcome() payment.Status { return c.outcome }

// TransactionID returns the settlement transaction reference.
func (c SettlePaymentCommand) TransactionID() string { return c.transactionID }

func (c *SettlePaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *SettlePaymentCommand) setOutcome(outcome payment.Status) error {
	if outcome != payment.Completed && outcome != payment.Failed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("settlement outcome must be completed or failed, got %s", outcome))
	}

	c.outcome = outcome
	return nil
}

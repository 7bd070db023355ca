package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/payment"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrRecordPaymentCommandIsNotConstructed = errors.New(
		"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
	)
	ErrAmountIsInvalid = errors.New("amount must be greater than 0")
)

// RecordPaymentCommand represents a request to open a new payment attempt
// against an order.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	orderID   kernel.UUID
	method    payment.Method
	amount    kernel.Money

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment attempt.
// Validates identifiers, the method, and that the amount is positive.
func NewRecordPaymentCommand(paymentID kernel.UUID, orderID kernel.UUID,
	method payment.Method, amount kernel.Money) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setOrderID(orderID),
		cmd.setMethod(method),
		cmd.setAmount(amount),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier for the new payment attempt.
func (c RecordPaymentCommand) PaymentID() kernel.UUID { return c.paymentID }

// OrderID returns the identifier of the order being paid.
func (c RecordPaymentCommand) OrderID() kernel.UUID { return c.orderID }

// Method returns the collection method of the attempt.
func (c RecordPaymentCommand) Method() payment.Method { return c.method }

// Amount returns the amount of the attempt.
func (c RecordPaymentCommand) Amount() kernel.Money { return c.amount }

func (c *RecordPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

package kernel

import (
	"fmt"

	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for monetary amounts. It wraps shopspring/decimal to
// avoid binary floating point in price arithmetic and is rounded to two decimal
// places on every derivation.
//
// The zero value represents a valid zero amount; negative amounts are rejected
// by the constructors.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
// Negative amounts are invalid.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount.Round(2)}, nil
}

// NewMoneyFromInt creates a Money from a whole number of currency units.
func NewMoneyFromInt(amount int64) (Money, error) {
	return NewMoney(decimal.NewFromInt(amount))
}

// MoneyFromString parses a Money from its decimal string representation.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts. The result may be negative;
// callers guard against that where it matters (refund accounting).
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MulInt returns the amount multiplied by a whole quantity.
func (m Money) MulInt(q int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(q)))}
}

// MulRate returns the amount multiplied by a fractional rate, rounded to
// two decimal places.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).Round(2)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// Decimal exposes the underlying decimal for persistence mapping.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

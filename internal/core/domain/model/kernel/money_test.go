package kernel_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts non-negative amounts", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("10.50"))

		require.NoError(t, err)
		assert.Equal(t, "10.50", m.String())
	})

	t.Run("rounds to two decimal places", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("10.005"))

		require.NoError(t, err)
		assert.Equal(t, "10.01", m.String())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-1"))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("parses decimal strings", func(t *testing.T) {
		m, err := kernel.MoneyFromString("2400")

		require.NoError(t, err)
		assert.Equal(t, "2400.00", m.String())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("lots")

		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	thousand, _ := kernel.NewMoneyFromInt(1000)

	t.Run("line total via quantity", func(t *testing.T) {
		assert.Equal(t, "2000.00", thousand.MulInt(2).String())
	})

	t.Run("tax via rate", func(t *testing.T) {
		subtotal := thousand.MulInt(2)
		tax := subtotal.MulRate(decimal.RequireFromString("0.15"))
		assert.Equal(t, "300.00", tax.String())
	})

	t.Run("add and subtract", func(t *testing.T) {
		fee, _ := kernel.NewMoneyFromInt(100)
		total := thousand.MulInt(2).Add(fee)
		assert.Equal(t, "2100.00", total.String())
		assert.Equal(t, "2000.00", total.Sub(fee).String())
	})

	t.Run("comparisons", func(t *testing.T) {
		fee, _ := kernel.NewMoneyFromInt(100)
		assert.True(t, thousand.GreaterThan(fee))
		assert.True(t, kernel.ZeroMoney().IsZero())
		assert.True(t, fee.IsPositive())
		assert.True(t, fee.IsEqual(fee))
	})
}

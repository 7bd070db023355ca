// Package paymentrepo provides data transfer objects and mapping functions
// for payment attempt persistence.
package paymentrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting payment
// attempts. The partial unique index on order_id backs the one-active-attempt
// rule at the storage level: only rows in an active status participate, so a
// failed or refunded attempt never blocks a retry.
type PaymentDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID       `gorm:"type:uuid;index;uniqueIndex:idx_payments_one_active,where:status IN ('pending','processing','completed')"`
	Method         string
	Status         string          `gorm:"index"`
	Amount         decimal.Decimal `gorm:"type:numeric(12,2)"`
	RefundedAmount decimal.Decimal `gorm:"type:numeric(12,2)"`
	TransactionID  string
	CreatedAt      time.Time `gorm:"index"`
	UpdatedAt      time.Time
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:             aggregate.ID().Bytes(),
		OrderID:        aggregate.OrderID().Bytes(),
		Method:         aggregate.Method().String(),
		Status:         aggregate.Status().String(),
		Amount:         aggregate.Amount().Decimal(),
		RefundedAmount: aggregate.RefundedAmount().Decimal(),
		TransactionID:  aggregate.TransactionID(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	refundedAmount, err := kernel.NewMoney(dto.RefundedAmount)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, orderID, method, amount, status, dto.TransactionID, refundedAmount)
}

package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its items and payment history.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve an order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderItemResponse is the read model of one order line.
type GetOrderItemResponse struct {
	MenuID    kernel.UUID
	Name      string
	Size      string
	UnitPrice kernel.Money
	Quantity  int
	LineTotal kernel.Money
}

// GetOrderPaymentResponse is the read model of one payment attempt.
type GetOrderPaymentResponse struct {
	ID             kernel.UUID
	Method         string
	Status         string
	Amount         kernel.Money
	TransactionID  string
	RefundedAmount kernel.Money
}

// GetOrderQueryResponse is the full order read model.
type GetOrderQueryResponse struct {
	ID              kernel.UUID
	Number          string
	BranchID        kernel.UUID
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
	OrderType       string
	Status          string
	PaymentSummary  string
	Subtotal        kernel.Money
	Tax             kernel.Money
	DeliveryFee     kernel.Money
	Discount        kernel.Money
	Total           kernel.Money
	RiderID         *kernel.UUID
	Items           []GetOrderItemResponse
	Payments        []GetOrderPaymentResponse
}

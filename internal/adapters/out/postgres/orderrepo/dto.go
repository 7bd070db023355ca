// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored by their wire name so the read side and the partial
// indexes stay human-readable; money columns are numeric(12,2).
type OrderDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number          string     `gorm:"uniqueIndex"`
	BranchID        uuid.UUID  `gorm:"type:uuid;index"`
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
	OrderType       string
	Status          string     `gorm:"index"`
	PaymentSummary  string
	Subtotal        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Tax             decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Discount        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2)"`
	RiderID         *uuid.UUID `gorm:"type:uuid;uniqueIndex:,where:rider_id IS NOT NULL AND status NOT IN ('Delivered','Cancelled')"`
	Version         int
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one priced order line. Lines are immutable after
// placement; they are written once with the order.
type OrderItemDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	MenuID    uuid.UUID `gorm:"type:uuid"`
	Name      string
	Size      string
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity  int
	LineTotal decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var riderID *uuid.UUID
	if id := aggregate.RiderID(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			MenuID:    item.MenuID().Bytes(),
			Name:      item.Name(),
			Size:      item.Size(),
			UnitPrice: item.UnitPrice().Decimal(),
			Quantity:  item.Quantity(),
			LineTotal: item.LineTotal().Decimal(),
		})
	}

	customer := aggregate.Customer()

	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		Number:          aggregate.Number(),
		BranchID:        aggregate.BranchID().Bytes(),
		CustomerName:    customer.Name(),
		CustomerPhone:   customer.Phone(),
		CustomerEmail:   customer.Email(),
		CustomerAddress: customer.Address(),
		OrderType:       aggregate.OrderType().String(),
		Status:          aggregate.Status().String(),
		PaymentSummary:  aggregate.PaymentSummary().String(),
		Subtotal:        aggregate.Subtotal().Decimal(),
		Tax:             aggregate.Tax().Decimal(),
		DeliveryFee:     aggregate.DeliveryFee().Decimal(),
		Discount:        aggregate.Discount().Decimal(),
		Total:           aggregate.Total().Decimal(),
		RiderID:         riderID,
		Version:         aggregate.Version(),
		Items:           items,
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which recomputes and reconciles the totals.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	branchID, err := kernel.UUIDFromBytes(dto.BranchID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}
		riderID = &rID
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerPhone,
		dto.CustomerEmail, dto.CustomerAddress)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuID, menuErr := kernel.UUIDFromBytes(itemDTO.MenuID[:])
		if menuErr != nil {
			return nil, menuErr
		}

		unitPrice, priceErr := kernel.NewMoney(itemDTO.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(menuID, itemDTO.Name, itemDTO.Size, unitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	orderType, err := order.TypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	summary, err := order.PaymentSummaryFromString(dto.PaymentSummary)
	if err != nil {
		return nil, err
	}

	discount, err := kernel.NewMoney(dto.Discount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.Number, branchID, customer, items,
		orderType, discount, status, summary, riderID, dto.Version)
}

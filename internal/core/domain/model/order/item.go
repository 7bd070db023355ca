package order

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// Item is a priced order line. The unit price is resolved from the menu catalog
// when the order is placed; the line total is always derived from unit price
// and quantity, never accepted from a client.
type Item struct {
	menuID    kernel.UUID
	name      string
	size      string
	unitPrice kernel.Money
	quantity  int
	lineTotal kernel.Money
}

// NewItem creates a validated order line with a computed line total.
func NewItem(menuID kernel.UUID, name, size string, unitPrice kernel.Money, quantity int) (Item, error) {
	item := Item{}

	if err := errors.Join(
		item.setMenuID(menuID),
		item.setName(name),
		item.setSize(size),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.lineTotal = item.unitPrice.MulInt(item.quantity)
	return item, nil
}

// MenuID returns the referenced menu entry.
func (i Item) MenuID() kernel.UUID {
	return i.menuID
}

// Name returns the menu entry name as captured at order time.
func (i Item) Name() string {
	return i.name
}

// Size returns the portion size of the line.
func (i Item) Size() string {
	return i.size
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the ordered unit count.
func (i Item) Quantity() int {
	return i.quantity
}

// LineTotal returns unit price multiplied by quantity.
func (i Item) LineTotal() kernel.Money {
	return i.lineTotal
}

func (i *Item) setMenuID(menuID kernel.UUID) error {
	if err := menuID.Validate(); err != nil {
		return err
	}
	i.menuID = menuID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setSize(size string) error {
	if size == "" {
		return errs.NewValueIsRequiredError("item size")
	}
	i.size = size
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is not greater than 0", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

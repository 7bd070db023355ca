package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrCustomerNameIsRequired  = errors.New("customer name is required")
	ErrCustomerPhoneIsRequired = errors.New("customer phone is required")
	ErrItemsAreRequired        = errors.New("at least one order item is required")
)

// PlaceOrderItem is one requested order line. The caller names the menu item
// and size; name and price are resolved server-side from the menu catalog.
type PlaceOrderItem struct {
	menuID   kernel.UUID
	size     string
	quantity int
}

// NewPlaceOrderItem creates an order line request.
// Validates that the menu ID is valid, the size is non-empty, and the
// quantity is positive.
func NewPlaceOrderItem(menuID kernel.UUID, size string, quantity int) (PlaceOrderItem, error) {
	if err := errors.Join(
		menuID.Validate(),
		validateSize(size),
		validateQuantity(quantity),
	); err != nil {
		return PlaceOrderItem{}, err
	}

	return PlaceOrderItem{menuID: menuID, size: size, quantity: quantity}, nil
}

func validateSize(size string) error {
	if size == "" {
		return errs.NewValueIsRequiredError("size")
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, 100)
	}
	return nil
}

// MenuID returns the requested menu item identifier.
func (i PlaceOrderItem) MenuID() kernel.UUID { return i.menuID }

// Size returns the requested item size.
func (i PlaceOrderItem) Size() string { return i.size }

// Quantity returns the requested quantity.
func (i PlaceOrderItem) Quantity() int { return i.quantity }

// PlaceOrderCommand represents a request to place a new order.
// Item prices and order totals are computed server-side; the command only
// carries what the client is allowed to choose.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	branchID        kernel.UUID
	customerName    string
	customerPhone   string
	customerEmail   string
	customerAddress string
	orderType       order.Type
	items           []PlaceOrderItem

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates identifiers, the order type, required customer fields, and that
// at least one item is requested. The delivery-address requirement is
// enforced by the order aggregate itself.
func NewPlaceOrderCommand(orderID kernel.UUID, branchID kernel.UUID,
	customerName, customerPhone, customerEmail, customerAddress string,
	orderType order.Type, items []PlaceOrderItem) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBranchID(branchID),
		cmd.setCustomer(customerName, customerPhone, customerEmail, customerAddress),
		cmd.setOrderType(orderType),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID { return c.orderID }

// BranchID returns the branch the order is placed at.
func (c PlaceOrderCommand) BranchID() kernel.UUID { return c.branchID }

// CustomerName returns the customer's name.
func (c PlaceOrderCommand) CustomerName() string { return c.customerName }

// CustomerPhone returns the customer's phone number.
func (c PlaceOrderCommand) CustomerPhone() string { return c.customerPhone }

// CustomerEmail returns the customer's email, possibly empty.
func (c PlaceOrderCommand) CustomerEmail() string { return c.customerEmail }

// CustomerAddress returns the delivery address, possibly empty for
// non-delivery orders.
func (c PlaceOrderCommand) CustomerAddress() string { return c.customerAddress }

// OrderType returns the requested order type.
func (c PlaceOrderCommand) OrderType() order.Type { return c.orderType }

// Items returns the requested order lines.
func (c PlaceOrderCommand) Items() []PlaceOrderItem { return c.items }

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}

	c.branchID = branchID
	return nil
}

func (c *PlaceOrderCommand) setCustomer(name, phone, email, address string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	if phone == "" {
		return ErrCustomerPhoneIsRequired
	}

	c.customerName = name
	c.customerPhone = phone
	c.customerEmail = email
	c.customerAddress = address
	return nil
}

func (c *PlaceOrderCommand) setOrderType(orderType order.Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}

	c.orderType = orderType
	return nil
}

func (c *PlaceOrderCommand) setItems(items []PlaceOrderItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}

package order

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrInvalidOrder is the wrap target for order creation failures. Creation
	// either fully succeeds or nothing is persisted.
	ErrInvalidOrder = errors.New("order input is invalid")

	// ErrInvalidTransition is the wrap target for rejected status transitions,
	// including any transition attempted from a terminal status.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrRiderRequired is returned when a delivery order is dispatched without
	// an assigned rider.
	ErrRiderRequired = errors.New("rider must be assigned before dispatch")

	// ErrRiderAssignmentNotAllowed is returned when a rider is assigned to an
	// order outside the Preparing/Baking window or to a non-delivery order.
	ErrRiderAssignmentNotAllowed = errors.New("rider assignment not allowed for this order")
)

// Order is the aggregate root of the fulfillment core. It owns the order
// identity, the priced item list, the derived money totals, and the status
// state machine.
//
// Invariants maintained by this type:
//   - total == subtotal + tax + deliveryFee - discount, derived from the item
//     list at construction and never accepted from a caller
//   - status transitions follow the state machine in Status, restricted by the
//     order type (delivery must pass through OutForDelivery, other types
//     must not)
//   - a rider is referenced only on delivery orders, assigned during
//     Preparing or Baking, and cleared when the order reaches a terminal status
//
// Concurrent mutation is guarded outside the aggregate with an optimistic
// version check: version reflects the persisted revision the aggregate was
// loaded from, and repositories refuse stale updates.
type Order struct {
	// id is the internal unique identifier of the order
	id kernel.UUID

	// number is the human-readable order number (unique per chain)
	number string

	// branchID references the branch the order was placed at
	branchID kernel.UUID

	// customer is the contact and delivery information
	customer Customer

	// items are the priced order lines (non-empty)
	items []Item

	// orderType determines fees, address requirement and the dispatch path
	orderType Type

	// money fields derived from the item list
	totals totals

	// status is the current state in the fulfillment lifecycle
	status Status

	// paymentSummary is the derived view over the payment ledger
	paymentSummary PaymentSummary

	// riderID is the assigned rider (nil when unassigned)
	riderID *kernel.UUID

	// version is the persisted revision used for optimistic concurrency
	version int

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Placed status with server-computed totals.
//
// Validation rules:
//   - id and branchID must be valid UUIDs
//   - number must be non-empty
//   - items must be non-empty (each item validates itself in NewItem)
//   - delivery orders require a non-empty customer address
//
// All violations are joined and wrapped with ErrInvalidOrder.
func NewOrder(
	id kernel.UUID,
	number string,
	branchID kernel.UUID,
	customer Customer,
	items []Item,
	orderType Type,
) (*Order, error) {
	order := &Order{
		status:         Placed,
		paymentSummary: SummaryPending,
		version:        1,
		isConstructed:  true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setBranchID(branchID),
		order.setOrderType(orderType),
		order.setCustomer(customer),
		order.setItems(items),
	); err != nil {
		return nil, errors.Join(ErrInvalidOrder, err)
	}

	order.totals = computeTotals(order.items, order.orderType, kernel.ZeroMoney())
	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Totals are recomputed from the stored item list and then reconciled with the
// persisted discount, so a row whose money columns drifted from its items does
// not silently rehydrate.
func RestoreOrder(
	id kernel.UUID,
	number string,
	branchID kernel.UUID,
	customer Customer,
	items []Item,
	orderType Type,
	discount kernel.Money,
	status Status,
	paymentSummary PaymentSummary,
	riderID *kernel.UUID,
	version int,
) (*Order, error) {
	order := &Order{
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setNumber(number),
		order.setBranchID(branchID),
		order.setOrderType(orderType),
		order.setCustomer(customer),
		order.setItems(items),
		status.Validate(),
		paymentSummary.Validate(),
	); err != nil {
		return nil, err
	}

	if version <= 0 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("order",
			fmt.Errorf("%d is not a valid version", version))
	}

	order.status = status
	order.paymentSummary = paymentSummary
	order.riderID = riderID
	order.totals = computeTotals(order.items, order.orderType, discount)
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the internal unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number.
func (o *Order) Number() string {
	return o.number
}

// BranchID returns the branch the order belongs to.
func (o *Order) BranchID() kernel.UUID {
	return o.branchID
}

// Customer returns the contact information captured with the order.
func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns the priced order lines.
func (o *Order) Items() []Item {
	return o.items
}

// OrderType returns the fulfillment type.
func (o *Order) OrderType() Type {
	return o.orderType
}

// Subtotal returns the sum of line totals.
func (o *Order) Subtotal() kernel.Money {
	return o.totals.subtotal
}

// Tax returns the tax derived from the subtotal.
func (o *Order) Tax() kernel.Money {
	return o.totals.tax
}

// DeliveryFee returns the flat delivery fee (zero for takeaway and dine-in).
func (o *Order) DeliveryFee() kernel.Money {
	return o.totals.deliveryFee
}

// Discount returns the discount applied to the order.
func (o *Order) Discount() kernel.Money {
	return o.totals.discount
}

// Total returns subtotal + tax + deliveryFee - discount.
func (o *Order) Total() kernel.Money {
	return o.totals.total
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentSummary returns the derived payment view.
func (o *Order) PaymentSummary() PaymentSummary {
	return o.paymentSummary
}

// RiderID returns the assigned rider's ID, or nil when unassigned.
func (o *Order) RiderID() *kernel.UUID {
	return o.riderID
}

// Version returns the persisted revision the aggregate was loaded from.
func (o *Order) Version() int {
	return o.version
}

// TransitionTo advances the order along the state machine.
//
// Beyond the edge set in Status, two order-type rules apply:
//   - a delivery order enters OutForDelivery only with a rider assigned
//     (ErrRiderRequired otherwise), and cannot jump Baking -> Delivered
//   - takeaway and dine-in orders never enter OutForDelivery
//
// Entering a terminal status clears the rider reference; releasing the rider's
// availability is the coordinator's responsibility.
func (o *Order) TransitionTo(target Status) error {
	if target == OutForDelivery {
		if !o.orderType.IsDelivery() {
			return fmt.Errorf("%w: %s -> %s for %s order", ErrInvalidTransition, o.status, target, o.orderType)
		}
		if o.status == Baking && o.riderID == nil {
			return ErrRiderRequired
		}
	}

	if o.status == Baking && target == Delivered && o.orderType.IsDelivery() {
		return fmt.Errorf("%w: %s -> %s for %s order", ErrInvalidTransition, o.status, target, o.orderType)
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if o.status.IsTerminal() {
		o.riderID = nil
	}
	return nil
}

// AssignRider records the rider claimed for this order.
//
// Allowed only for delivery orders in Preparing or Baking, and only while the
// rider slot is empty: the assigned rider is busy with this order, so swapping
// riders would leave the first one claimed with no order to release them. The
// claim on the rider's availability happens in the same transaction via the
// rider registry; on a lost claim, the whole transaction rolls back and the
// order is unchanged.
func (o *Order) AssignRider(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	if !o.orderType.IsDelivery() {
		return fmt.Errorf("%w: %s order", ErrRiderAssignmentNotAllowed, o.orderType)
	}
	if o.status != Preparing && o.status != Baking {
		return fmt.Errorf("%w: status is %s", ErrRiderAssignmentNotAllowed, o.status)
	}
	if o.riderID != nil {
		return fmt.Errorf("%w: rider already assigned", ErrRiderAssignmentNotAllowed)
	}

	o.riderID = &riderID
	return nil
}

// Cancel moves the order to Cancelled. Allowed only before dispatch
// (Placed, Preparing, Baking); the edge set enforces this.
func (o *Order) Cancel() error {
	return o.TransitionTo(Cancelled)
}

// SetPaymentSummary replaces the derived payment view. Only the payment
// reconciliation service calls this, always from a freshly summarized ledger.
func (o *Order) SetPaymentSummary(summary PaymentSummary) error {
	if err := summary.Validate(); err != nil {
		return err
	}
	o.paymentSummary = summary
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("branch", err)
	}
	o.branchID = branchID
	return nil
}

func (o *Order) setOrderType(orderType Type) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if customer.Name() == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	if o.orderType.IsDelivery() && customer.Address() == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = items
	return nil
}

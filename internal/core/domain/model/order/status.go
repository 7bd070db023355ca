package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Placed ──> Preparing ──> Baking ──> OutForDelivery ──> Delivered
//	                            │                            ▲
//	                            └────────────────────────────┘
//	                          (takeaway and dine-in skip dispatch)
//	Placed | Preparing | Baking ──> Cancelled
//
// Delivered and Cancelled are terminal; no edges leave them. Order-type
// restrictions on the Baking edges (delivery must pass through OutForDelivery,
// other types must not) are enforced by the Order aggregate, which knows the
// order type.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status when an order is first created.
	Placed

	// Preparing indicates the kitchen has accepted the order.
	Preparing

	// Baking indicates the order is in the oven.
	Baking

	// OutForDelivery indicates a rider has left with the order.
	// Only delivery orders enter this status.
	OutForDelivery

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before dispatch. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Placed:         "Placed",
		Preparing:      "Preparing",
		Baking:         "Baking",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// statusTransitions is the edge set of the state machine. An absent source
// status means the status is terminal.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		Placed:         {Preparing, Cancelled},
		Preparing:      {Baking, Cancelled},
		Baking:         {OutForDelivery, Delivered, Cancelled},
		OutForDelivery: {Delivered},
	}
}

// StatusFromString parses the status name used on the API surface.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is a sink with no outgoing edges.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether the edge s -> target exists in the
// state machine graph.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range statusTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status when the edge exists, and
// ErrInvalidTransition (wrapped with the rejected edge) otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, target)
	}
	return target, nil
}

package rider

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Availability represents a rider's current availability state.
//
// State transitions:
//
//	Available ──> Busy        (claim by an order)
//	Busy      ──> Available   (release on delivery or cancellation)
//	Available <─> Offline     (manual staff toggle)
//
// A busy rider cannot go offline; the claim must be released first.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined availability.
	AvailabilityUnknown Availability = iota

	// Available means the rider can be claimed for a delivery.
	Available

	// Busy means the rider is claimed by exactly one active order.
	Busy

	// Offline means the rider is off shift and cannot be claimed.
	Offline
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown: "unknown",
		Available:           "available",
		Busy:                "busy",
		Offline:             "offline",
	}
}

// AvailabilityFromString parses the availability name used on the API surface.
func AvailabilityFromString(s string) (Availability, error) {
	for a, name := range getAvailabilityStrings() {
		if name == s && a != AvailabilityUnknown {
			return a, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause("availability",
		fmt.Errorf("%q is not a valid availability", s))
}

// Validate checks if the Availability value is one of the defined states.
func (a Availability) Validate() error {
	if _, ok := getAvailabilityStrings()[a]; !ok || a == AvailabilityUnknown {
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

// String returns the wire name of the availability state.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "unknown"
}

// ValidateActiveOrder validates the consistency between availability and the
// active order reference: busy if and only if an active order is held.
func (a Availability) ValidateActiveOrder(hasOrder bool) error {
	if hasOrder && a != Busy {
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%s rider cannot hold an active order", a))
	}
	if !hasOrder && a == Busy {
		return errs.NewValueIsInvalidErrorWithCause("availability",
			fmt.Errorf("%s rider must hold an active order", a))
	}
	return nil
}

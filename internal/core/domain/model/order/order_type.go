package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Type distinguishes how an order leaves the branch. Delivery orders carry a
// delivery fee, require a customer address, and pass through OutForDelivery;
// takeaway and dine-in orders complete straight from Baking.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypeDelivery is an order brought to the customer by a rider.
	TypeDelivery

	// TypeTakeaway is an order collected at the counter.
	TypeTakeaway

	// TypeDineIn is an order served at a table.
	TypeDineIn
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:  "Unknown",
		TypeDelivery: "Delivery",
		TypeTakeaway: "Takeaway",
		TypeDineIn:   "DineIn",
	}
}

// TypeFromString parses the order type name used on the API surface.
func TypeFromString(s string) (Type, error) {
	for t, name := range getTypeStrings() {
		if name == s && t != TypeUnknown {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("orderType",
		fmt.Errorf("%q is not a valid order type", s))
}

// Validate checks if the Type value is one of the defined order types.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok || t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("orderType",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the human-readable name of the order type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// IsDelivery reports whether the order travels with a rider.
func (t Type) IsDelivery() bool {
	return t == TypeDelivery
}

package payment

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Method represents the way a payment is collected.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// Cash is collected at the counter and confirmed manually.
	Cash

	// Card goes through the external payment processor.
	Card

	// COD (cash on delivery) is collected by the rider and confirmed manually.
	COD

	// Online goes through the external payment processor.
	Online
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown: "unknown",
		Cash:          "cash",
		Card:          "card",
		COD:           "cod",
		Online:        "online",
	}
}

// MethodFromString parses the method name used on the API surface.
func MethodFromString(s string) (Method, error) {
	for method, name := range getMethodStrings() {
		if name == s && method != MethodUnknown {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause("paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the Method value is one of the defined methods.
func (m Method) Validate() error {
	if _, ok := getMethodStrings()[m]; !ok || m == MethodUnknown {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire name of the method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// RequiresProcessor reports whether attempts with this method start in the
// processing status and settle through the external processor.
func (m Method) RequiresProcessor() bool {
	return m == Card || m == Online
}

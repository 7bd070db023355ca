package payment

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of a payment attempt.
//
// State transitions:
//
//	pending    ──> completed | failed     (cash collection confirmed or not)
//	processing ──> completed | failed     (processor callback, or void/timeout)
//	completed  ──> partially_refunded ──> refunded
//	completed  ──> refunded
//
// failed and refunded are terminal. The refund states are derived from the
// refunded amount, never set directly.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending: a cash or COD attempt awaiting collection confirmation.
	Pending

	// Processing: a processor-backed attempt awaiting the external callback.
	Processing

	// Completed: the payment settled successfully and holds the full amount.
	Completed

	// Failed: the attempt ended without funds (declined, voided, or timed out).
	Failed

	// Refunded: the full settled amount was returned.
	Refunded

	// PartiallyRefunded: part of the settled amount was returned.
	PartiallyRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "unknown",
		Pending:           "pending",
		Processing:        "processing",
		Completed:         "completed",
		Failed:            "failed",
		Refunded:          "refunded",
		PartiallyRefunded: "partially_refunded",
	}
}

// StatusFromString parses the status name used on the API surface.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the payment blocks a new attempt for the same
// order. An order keeps at most one active payment at a time.
func (s Status) IsActive() bool {
	return s == Pending || s == Processing || s == Completed
}

// IsSettleable reports whether the payment still awaits a settlement outcome.
func (s Status) IsSettleable() bool {
	return s == Pending || s == Processing
}

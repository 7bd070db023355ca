package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// PaymentSummary is the denormalized view of an order's payment ledger. It is
// strictly derived: the reconciliation service recomputes it from the ledger on
// every ledger mutation, and no flow sets it independently.
type PaymentSummary int

const (
	// SummaryUnknown represents an invalid or undefined summary.
	SummaryUnknown PaymentSummary = iota

	// SummaryPending: no completed payment exists for the order.
	SummaryPending

	// SummaryCompleted: a payment is fully settled and unrefunded.
	SummaryCompleted

	// SummaryRefunded: the settled payment was refunded in full.
	SummaryRefunded

	// SummaryPartiallyRefunded: part of the settled payment was refunded.
	SummaryPartiallyRefunded
)

func getSummaryStrings() map[PaymentSummary]string {
	return map[PaymentSummary]string{
		SummaryUnknown:           "unknown",
		SummaryPending:           "pending",
		SummaryCompleted:         "completed",
		SummaryRefunded:          "refunded",
		SummaryPartiallyRefunded: "partially_refunded",
	}
}

// PaymentSummaryFromString parses the summary name used on the wire.
func PaymentSummaryFromString(s string) (PaymentSummary, error) {
	for summary, name := range getSummaryStrings() {
		if name == s && summary != SummaryUnknown {
			return summary, nil
		}
	}
	return SummaryUnknown, errs.NewValueIsInvalidErrorWithCause("paymentSummary",
		fmt.Errorf("%q is not a valid payment summary", s))
}

// Validate checks if the PaymentSummary value is one of the defined summaries.
func (p PaymentSummary) Validate() error {
	if _, ok := getSummaryStrings()[p]; !ok || p == SummaryUnknown {
		return errs.NewValueIsInvalidErrorWithCause("paymentSummary",
			fmt.Errorf("%d is not a valid payment summary", p))
	}
	return nil
}

// String returns the wire name of the summary.
func (p PaymentSummary) String() string {
	if str, ok := getSummaryStrings()[p]; ok {
		return str
	}
	return "unknown"
}

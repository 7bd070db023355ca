package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
)

// PaymentProcessor is the outbound contract to the external card/online
// payment provider. The provider's own retries and webhooks land on the
// settle operation; this port only covers calls we originate.
type PaymentProcessor interface {
	// Void abandons a processing attempt on the provider side so no funds
	// are captured. Called when an order is cancelled while its payment is
	// still processing.
	Void(ctx context.Context, paymentID kernel.UUID, transactionID string) error

	// Refund instructs the provider to return funds for a settled attempt.
	Refund(ctx context.Context, paymentID kernel.UUID, transactionID string, amount kernel.Money) error
}

// Package processor provides the outbound payment provider adapter.
//
// The real chain integrates a card acquirer over its private API; this
// adapter stands in for it in environments without provider credentials.
// It acknowledges every void and refund and logs what it was asked to do,
// which keeps the cancellation and refund flows fully exercisable.
package processor

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/domain/model/kernel"
)

// LogPaymentProcessor implements ports.PaymentProcessor by accepting every
// instruction and recording it in the log.
type LogPaymentProcessor struct {
	logger *slog.Logger
}

// NewLogPaymentProcessor creates a logging payment processor.
func NewLogPaymentProcessor(logger *slog.Logger) *LogPaymentProcessor {
	return &LogPaymentProcessor{
		logger: logger.With("component", "payment_processor"),
	}
}

// Void acknowledges the abandonment of a processing attempt.
func (p *LogPaymentProcessor) Void(ctx context.Context, paymentID kernel.UUID, transactionID string) error {
	p.logger.InfoContext(ctx, "Voiding payment attempt at provider",
		"payment_id", paymentID.String(),
		"transaction_id", transactionID)
	return nil
}

// Refund acknowledges the return of funds for a settled attempt.
func (p *LogPaymentProcessor) Refund(ctx context.Context, paymentID kernel.UUID, transactionID string, amount kernel.Money) error {
	p.logger.InfoContext(ctx, "Refunding payment at provider",
		"payment_id", paymentID.String(),
		"transaction_id", transactionID,
		"amount", amount.String())
	return nil
}

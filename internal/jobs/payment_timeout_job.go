package jobs

import (
	"context"
	"log/slog"
	"time"

	"pizzeria/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PaymentTimeoutJob sweeps payment attempts stuck in processing. A card
// attempt whose provider callback never arrived would otherwise block new
// attempts for its order forever; the sweep fails them after maxAge.
type PaymentTimeoutJob struct {
	handler commands.FailStalePaymentsCommandHandler
	maxAge  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPaymentTimeoutJob creates the stale payment sweep. maxAge is how long
// an attempt may stay in processing before it is failed.
func NewPaymentTimeoutJob(
	handler commands.FailStalePaymentsCommandHandler,
	maxAge time.Duration,
	logger *slog.Logger,
) *PaymentTimeoutJob {
	return &PaymentTimeoutJob{
		handler: handler,
		maxAge:  maxAge,
		cron:    cron.New(),
		logger:  logger.With("component", "payment_timeout_job"),
	}
}

// Start begins the sweep, running once a minute.
func (j *PaymentTimeoutJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewFailStalePaymentsCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Payment timeout job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Payment timeout job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payment timeout job started (running every minute)",
		"max_age", j.maxAge.String())
	return nil
}

// Stop stops the sweep.
func (j *PaymentTimeoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payment timeout job stopped")
}

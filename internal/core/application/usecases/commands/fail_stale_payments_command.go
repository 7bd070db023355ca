package commands

import (
	"errors"
	"time"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrFailStalePaymentsCommandIsNotConstructed = errors.New(
		"FailStalePaymentsCommand must be created via NewFailStalePaymentsCommand constructor",
	)
	ErrMaxAgeIsInvalid = errors.New("max age must be greater than 0")
)

// FailStalePaymentsCommand represents a sweep over processing payments whose
// processor callback never arrived within the allowed window.
type FailStalePaymentsCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewFailStalePaymentsCommand creates a command to fail stale processing
// payments older than maxAge.
func NewFailStalePaymentsCommand(maxAge time.Duration) (FailStalePaymentsCommand, error) {
	if maxAge <= 0 {
		return FailStalePaymentsCommand{}, ErrMaxAgeIsInvalid
	}

	return FailStalePaymentsCommand{
		maxAge: maxAge,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FailStalePaymentsCommand) Validate() error {
	return c.guard.Validate(ErrFailStalePaymentsCommandIsNotConstructed)
}

// MaxAge returns how long a processing payment may wait for its callback.
func (c FailStalePaymentsCommand) MaxAge() time.Duration {
	return c.maxAge
}

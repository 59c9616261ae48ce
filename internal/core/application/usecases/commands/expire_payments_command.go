package commands

import (
	"errors"
	"time"

	"laundry/internal/pkg/guard"
)

var ErrExpirePaymentsCommandIsNotConstructed = errors.New(
	"ExpirePaymentsCommand must be created via NewExpirePaymentsCommand constructor",
)

// ExpirePaymentsCommand cancels pending payments created before the cutoff.
// Driven by the scheduled expiry job.
type ExpirePaymentsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewExpirePaymentsCommand creates an expiry command for payments older
// than the cutoff.
func NewExpirePaymentsCommand(cutoff time.Time) (ExpirePaymentsCommand, error) {
	cmd := ExpirePaymentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCutoff(cutoff); err != nil {
		return ExpirePaymentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpirePaymentsCommand) Validate() error {
	return c.guard.Validate(ErrExpirePaymentsCommandIsNotConstructed)
}

// Cutoff returns the creation-time threshold; pending payments created
// before it are cancelled.
func (c ExpirePaymentsCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *ExpirePaymentsCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errors.New("cutoff is required")
	}

	c.cutoff = cutoff
	return nil
}

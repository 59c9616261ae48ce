package commands

import (
	"context"
)

// ExpirePaymentsCommandHandler cancels stale pending payments. Pending
// records past the configured age are considered abandoned: the customer
// never settled at pickup and the record would otherwise distort the
// reconciled balances forever.
type ExpirePaymentsCommandHandler struct {
	uowFactory ExpirePaymentsUoWFactory
}

// NewExpirePaymentsCommandHandler creates a handler for payment expiry.
func NewExpirePaymentsCommandHandler(uowFactory ExpirePaymentsUoWFactory) ExpirePaymentsCommandHandler {
	return ExpirePaymentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every pending payment created before the command's cutoff
// and returns the number of payments cancelled.
func (h *ExpirePaymentsCommandHandler) Handle(ctx context.Context, cmd ExpirePaymentsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	paymentRepo := uow.PaymentRepository()
	stale, err := paymentRepo.GetStalePending(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	for _, p := range stale {
		if err = p.Cancel(); err != nil {
			return 0, err
		}
		if err = paymentRepo.Update(ctx, p); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}

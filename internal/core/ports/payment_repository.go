package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
// Placeholder payments are synthesized for display only; implementations
// must reject them on every write path.
type PaymentRepository interface {
	// Add persists a new payment record. Placeholders fail with
	// payment.ErrPlaceholderIsNotPersistent.
	Add(ctx context.Context, p *payment.Payment) error

	// Update persists a status change to an existing payment record.
	Update(ctx context.Context, p *payment.Payment) error

	// GetByOrder retrieves all payment records for an order, oldest first.
	// An order without payments yields an empty slice, not an error.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error)

	// GetStalePending retrieves pending payments created before the cutoff,
	// used by the expiry job.
	GetStalePending(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error)

	// DeleteByOrder removes all payment records for an order, returning the
	// number of records removed.
	DeleteByOrder(ctx context.Context, orderID kernel.UUID) (int64, error)
}

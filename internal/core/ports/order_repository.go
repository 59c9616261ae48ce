package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations must store the order together with its line items.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items. A collision
	// on the unique order number fails with errs.ObjectAlreadyExistsError,
	// letting the caller retry with a fresh number.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The write carries a
	// version predicate: a writer that lost a concurrent race fails with
	// errs.ConcurrentModificationError instead of silently overwriting.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its line items by id.
	// A missing order fails with errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and its line items, returning the number of
	// orders removed (zero when the order did not exist).
	Delete(ctx context.Context, id kernel.UUID) (int64, error)
}

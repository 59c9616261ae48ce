package ports

import (
	"context"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
)

// CustomerRepository defines the read contract for customer records. The
// order core never mutates customers.
type CustomerRepository interface {
	// Get retrieves a customer by id. A missing customer fails with
	// errs.ObjectNotFoundError; read paths that only need a display name
	// recover with customer.UnknownDisplayName instead of propagating it.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}

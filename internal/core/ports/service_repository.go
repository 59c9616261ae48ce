package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"
)

// ServiceRepository defines the read contract for the service catalog. The
// catalog is read-only from the order core's perspective.
type ServiceRepository interface {
	// Get retrieves a catalog service by id. A missing service fails with
	// errs.ObjectNotFoundError; read paths that only need a display name
	// recover with service.FallbackDisplayName instead of propagating it.
	Get(ctx context.Context, id kernel.UUID) (*service.Service, error)
}

package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control and hands out repositories bound to the active
// transaction. Client code manages the transaction lifecycle explicitly:
// Begin, then Commit on success or Rollback on failure.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction, or to the base connection when none is active.
	OrderRepository() OrderRepository

	// PaymentRepository returns a PaymentRepository bound to the current
	// transaction, or to the base connection when none is active.
	PaymentRepository() PaymentRepository

	// CustomerRepository returns a CustomerRepository bound to the current
	// transaction, or to the base connection when none is active.
	CustomerRepository() CustomerRepository

	// ServiceRepository returns a ServiceRepository bound to the current
	// transaction, or to the base connection when none is active.
	ServiceRepository() ServiceRepository
}

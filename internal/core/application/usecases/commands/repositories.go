// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent shape: a guarded command
// object, validation, transaction management, and persistence.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler declares the narrowest interface it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// ServiceRepoFactory provides access to the service catalog repository within a transaction.
	ServiceRepoFactory interface {
		ServiceRepository() ports.ServiceRepository
	}

	// OrderUoW manages transactions for order-only operations
	// (status updates, deletion of the order rows).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UpdateOrderUoW manages transactions for partial order updates, which
	// may resolve catalog services while editing line items.
	UpdateOrderUoW interface {
		TxManager
		OrderRepoFactory
		ServiceRepoFactory
	}

	// UpdateOrderUoWFactory creates new update-order unit of work instances.
	UpdateOrderUoWFactory interface {
		Create() UpdateOrderUoW
	}

	// CreateOrderUoW manages transactions for order creation, which touches
	// every repository: customer validation, catalog lookups, the order
	// itself, and an optional embedded payment.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
		CustomerRepoFactory
		ServiceRepoFactory
	}

	// CreateOrderUoWFactory creates new create-order unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// PaymentUoW manages transactions that modify payments against an order.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// DeleteOrderUoW manages transactions that remove an order together
	// with its payment records.
	DeleteOrderUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// DeleteOrderUoWFactory creates new delete-order unit of work instances.
	DeleteOrderUoWFactory interface {
		Create() DeleteOrderUoW
	}

	// ExpirePaymentsUoW manages transactions for the payment expiry job.
	ExpirePaymentsUoW interface {
		TxManager
		PaymentRepoFactory
	}

	// ExpirePaymentsUoWFactory creates new expire-payments unit of work instances.
	ExpirePaymentsUoWFactory interface {
		Create() ExpirePaymentsUoW
	}
)

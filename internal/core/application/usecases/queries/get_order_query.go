// Package queries contains read-only operations in the CQRS architecture.
// The single-order query goes through the domain so totals and balances are
// recomputed rather than read back; the list query reads a raw-SQL
// projection directly.
package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order enriched for display: line items,
// payment records, reconciled balances, and the customer's display name.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the enriched order view.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	Number       string
	CustomerID   kernel.UUID
	CustomerName string
	Status       string
	Notes        string
	PickupAt     *time.Time
	DeliveredAt  *time.Time
	TotalMinor   int64
	Version      int64

	PaidMinor      int64
	RemainingMinor int64
	IsFullyPaid    bool

	Items    []LineItemView
	Payments []PaymentView
}

// LineItemView is the display form of one line item.
type LineItemView struct {
	ID             kernel.UUID
	ServiceID      *kernel.UUID
	ServiceName    string
	UnitPriceMinor int64
	PricingModel   string
	WeightTenths   *int64
	Quantity       *int
	SubtotalMinor  int64
}

// PaymentView is the display form of one payment record. Placeholder views
// are synthesized for orders without payment rows and carry no settled
// amount.
type PaymentView struct {
	ID              kernel.UUID
	AmountMinor     int64
	Method          string
	Status          string
	TransactionID   string
	ReferenceNumber string
	CreatedAt       time.Time
	Placeholder     bool
}

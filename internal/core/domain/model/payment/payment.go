// Package payment contains the payment entity and its method and status
// enumerations. An order may have zero, one, or many payments (partial
// payments, retries); reconciliation against the order total is the job of
// the services package.
package payment

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment was not created
	// through NewPayment, RestorePayment, or Placeholder.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

	// ErrPlaceholderIsNotPersistent is returned when a caller attempts to
	// persist a placeholder payment. Placeholders exist only to enrich
	// responses for orders without payment records.
	ErrPlaceholderIsNotPersistent = errors.New("placeholder payments must not be persisted")
)

// Payment is a record of money tendered against an order. It references
// both the order and the customer, carries the tendered amount and the
// settlement status, and optionally a processor transaction id and a
// human-entered reference number.
//
// A placeholder payment is a synthesized "not yet paid" record for orders
// that have no payment rows. It is explicitly tagged so calling code cannot
// accidentally persist it, and it never reaches Completed.
type Payment struct {
	id              kernel.UUID
	orderID         kernel.UUID
	customerID      kernel.UUID
	amount          kernel.Money
	method          Method
	status          Status
	transactionID   string
	referenceNumber string
	createdAt       time.Time

	// placeholder tags a synthesized non-persistent record
	placeholder bool

	isConstructed bool
}

// NewPayment creates a payment record against an order.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	customerID kernel.UUID,
	amount kernel.Money,
	method Method,
	status Status,
	createdAt time.Time,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		customerID.Validate(),
		method.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		customerID:    customerID,
		amount:        amount,
		method:        method,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a payment from persistence.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	customerID kernel.UUID,
	amount kernel.Money,
	method Method,
	status Status,
	transactionID string,
	referenceNumber string,
	createdAt time.Time,
) (*Payment, error) {
	p, err := NewPayment(id, orderID, customerID, amount, method, status, createdAt)
	if err != nil {
		return nil, err
	}
	p.transactionID = transactionID
	p.referenceNumber = referenceNumber
	return p, nil
}

// Placeholder synthesizes the single "not yet paid" record used to enrich
// responses for orders without any payment rows: a pending payment equal to
// the order total, tagged non-persistent. This is the only constructor for
// placeholders; every read path that needs one goes through it.
func Placeholder(orderID, customerID kernel.UUID, orderTotal kernel.Money, now time.Time) (*Payment, error) {
	p, err := NewPayment(kernel.NewUUID(), orderID, customerID, orderTotal, Other, Pending, now)
	if err != nil {
		return nil, err
	}
	p.placeholder = true
	p.referenceNumber = fmt.Sprintf("placeholder-%s", orderID)
	return p, nil
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the paid order's identifier.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// CustomerID returns the paying customer's identifier.
func (p *Payment) CustomerID() kernel.UUID {
	return p.customerID
}

// Amount returns the tendered amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Method returns how the payment was tendered.
func (p *Payment) Method() Method {
	return p.method
}

// Status returns the settlement state.
func (p *Payment) Status() Status {
	return p.status
}

// TransactionID returns the processor transaction id, if any.
func (p *Payment) TransactionID() string {
	return p.transactionID
}

// ReferenceNumber returns the human-entered reference, if any.
func (p *Payment) ReferenceNumber() string {
	return p.referenceNumber
}

// CreatedAt returns when the payment was recorded.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// IsPlaceholder reports whether this is a synthesized non-persistent record.
func (p *Payment) IsPlaceholder() bool {
	return p.placeholder
}

// CountsTowardPaid reports whether the amount counts toward the order's
// paid total. Only real, completed payments do.
func (p *Payment) CountsTowardPaid() bool {
	return p.status == Completed && !p.placeholder
}

// Complete marks a pending payment as settled, recording the processor
// transaction id. Placeholders can never complete.
func (p *Payment) Complete(transactionID string) error {
	if p.placeholder {
		return ErrPlaceholderIsNotPersistent
	}
	if p.status != Pending {
		return fmt.Errorf("payment in status %s cannot complete", p.status)
	}
	p.status = Completed
	p.transactionID = transactionID
	return nil
}

// Cancel withdraws a pending payment.
func (p *Payment) Cancel() error {
	if p.status != Pending {
		return fmt.Errorf("payment in status %s cannot be cancelled", p.status)
	}
	p.status = Cancelled
	return nil
}

// Refund returns a completed payment.
func (p *Payment) Refund() error {
	if p.status != Completed {
		return fmt.Errorf("payment in status %s cannot be refunded", p.status)
	}
	p.status = Refunded
	return nil
}

package order

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order would be finalized with
	// zero line items.
	ErrOrderHasNoItems = errors.New("order must contain at least one line item")

	// ErrOrderLocked is returned when line items are edited on an order in
	// a terminal status.
	ErrOrderLocked = errors.New("order is in a terminal status and cannot be edited")

	// ErrOrderNumberExhausted is returned when order-number generation kept
	// colliding after the bounded number of retries. This is an operational
	// failure and should alert operators.
	ErrOrderNumberExhausted = errors.New("order number generation exhausted its retries")

	// ErrLineItemNotFound is returned when removing a line item the order
	// does not contain.
	ErrLineItemNotFound = errors.New("line item not found in order")
)

// Order is the aggregate root for a laundry order. It owns its line items,
// its processing status, and its total.
//
// Order maintains these invariants:
//   - at least one line item at all times
//   - total == sum of line-item subtotals after every mutation
//   - the order number is assigned at creation and never changes
//   - line items are only editable in non-terminal statuses
//   - status changes follow the Status state machine
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// number is the generated, globally unique order number
	number kernel.OrderNumber

	// customerID references the ordering customer
	customerID kernel.UUID

	// items is the ordered list of line items (never empty)
	items []LineItem

	// status is the current state in the processing pipeline
	status Status

	// notes is free-text entered by staff
	notes string

	// pickupAt is the scheduled pickup time (nil if not scheduled)
	pickupAt *time.Time

	// deliveredAt is set when the order reaches Delivered
	deliveredAt *time.Time

	// total is the sum of line-item subtotals, kept current by
	// recomputeTotal after every mutation
	total kernel.Money

	// version is the optimistic-concurrency counter checked by storage
	version int64

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order in status New with the given line items. The
// item list must be non-empty; every item must have been built via
// NewLineItem. The total is computed from the items before the order is
// returned.
func NewOrder(
	id kernel.UUID,
	number kernel.OrderNumber,
	customerID kernel.UUID,
	items []LineItem,
) (*Order, error) {
	o := &Order{
		status:        New,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	if err := o.recomputeTotal(); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The total is
// recomputed from the items rather than read back from storage, so a
// drifted stored total can never be observed.
func RestoreOrder(
	id kernel.UUID,
	number kernel.OrderNumber,
	customerID kernel.UUID,
	items []LineItem,
	status Status,
	notes string,
	pickupAt *time.Time,
	deliveredAt *time.Time,
	version int64,
) (*Order, error) {
	o := &Order{
		notes:         notes,
		pickupAt:      pickupAt,
		deliveredAt:   deliveredAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := o.recomputeTotal(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the generated order number.
func (o *Order) Number() kernel.OrderNumber {
	return o.number
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Items returns a copy of the line items in order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current processing status.
func (o *Order) Status() Status {
	return o.status
}

// Notes returns the free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// PickupAt returns the scheduled pickup time, or nil.
func (o *Order) PickupAt() *time.Time {
	return o.pickupAt
}

// DeliveredAt returns the delivery time, or nil while undelivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Total returns the order total, equal to the sum of line-item subtotals.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Version returns the optimistic-concurrency counter as loaded from storage.
func (o *Order) Version() int64 {
	return o.version
}

// AddItem appends a line item and recomputes the total.
// Fails with ErrOrderLocked in a terminal status.
func (o *Order) AddItem(item LineItem) error {
	if o.status.IsTerminal() {
		return ErrOrderLocked
	}
	if err := item.Validate(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	return o.recomputeTotal()
}

// RemoveItem removes the line item with the given id and recomputes the
// total. Fails with ErrOrderLocked in a terminal status, ErrLineItemNotFound
// when absent, and ErrOrderHasNoItems when the removal would leave the
// order empty.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if o.status.IsTerminal() {
		return ErrOrderLocked
	}

	idx := -1
	for i, item := range o.items {
		if item.ID().IsEqual(itemID) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrLineItemNotFound
	}
	if len(o.items) == 1 {
		return ErrOrderHasNoItems
	}

	o.items = append(o.items[:idx], o.items[idx+1:]...)
	return o.recomputeTotal()
}

// ReplaceItems swaps the full line-item list, used by partial updates that
// edit items. Fails with ErrOrderLocked in a terminal status and
// ErrOrderHasNoItems for an empty replacement.
func (o *Order) ReplaceItems(items []LineItem) error {
	if o.status.IsTerminal() {
		return ErrOrderLocked
	}
	if err := o.setItems(items); err != nil {
		return err
	}
	return o.recomputeTotal()
}

// SetNotes replaces the free-text notes.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
}

// SchedulePickup records the planned pickup time.
func (o *Order) SchedulePickup(at time.Time) {
	o.pickupAt = &at
}

// TransitionTo advances the order to the requested status via the state
// machine. Reaching Delivered stamps the delivery time.
func (o *Order) TransitionTo(to Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Delivered {
		o.deliveredAt = &now
	}
	return nil
}

// RecomputeTotal re-derives every line-item subtotal from its pricing and
// unit price and sums them into the order total. Cached subtotals are never
// trusted; this is the invariant-enforcement step run on every read path.
func (o *Order) RecomputeTotal() error {
	return o.recomputeTotal()
}

func (o *Order) recomputeTotal() error {
	total := kernel.MoneyZero()
	for i, item := range o.items {
		recomputed, err := item.recompute()
		if err != nil {
			return err
		}
		o.items[i] = recomputed
		total = total.Add(recomputed.Subtotal())
	}
	o.total = total
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

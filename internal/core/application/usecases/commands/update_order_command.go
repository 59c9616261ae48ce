package commands

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial update of an order: notes, the
// scheduled pickup, and the line-item list. Nil fields are left unchanged;
// a non-nil item list replaces the order's items entirely.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	notes    *string
	pickupAt *time.Time
	items    []LineItemSpec

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a partial-update command. At least one of
// notes, pickupAt, or items must be present; an update that changes nothing
// is rejected.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	notes *string,
	pickupAt *time.Time,
	items []LineItemSpec,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		notes:    notes,
		pickupAt: pickupAt,
		items:    items,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}
	if notes == nil && pickupAt == nil && items == nil {
		return UpdateOrderCommand{}, errors.New("update must change at least one field")
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Notes returns the replacement notes, or nil when notes are unchanged.
func (c UpdateOrderCommand) Notes() *string {
	return c.notes
}

// PickupAt returns the replacement pickup time, or nil when unchanged.
func (c UpdateOrderCommand) PickupAt() *time.Time {
	return c.pickupAt
}

// Items returns the replacement line items, or nil when items are unchanged.
func (c UpdateOrderCommand) Items() []LineItemSpec {
	return c.items
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

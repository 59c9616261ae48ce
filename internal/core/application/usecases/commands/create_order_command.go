package commands

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one line item is required")
)

// InitialPaymentSpec describes a payment tendered together with the order,
// typically cash handed over at drop-off. It is recorded as completed.
type InitialPaymentSpec struct {
	AmountMinor int64
	Method      payment.Method
}

// CreateOrderCommand represents a request to register a new laundry order.
// Carries the customer, the requested line items, free-text notes, an
// optional scheduled pickup, and an optional payment tendered at drop-off.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, items, "no starch", nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, defaultUnitPrice)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	customerID     kernel.UUID
	items          []LineItemSpec
	notes          string
	pickupAt       *time.Time
	initialPayment *InitialPaymentSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new laundry order.
// Validates that both ids are valid and at least one line item is present.
// Item contents are validated later, during pricing, so failures can name
// the offending item index.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []LineItemSpec,
	notes string,
	pickupAt *time.Time,
	initialPayment *InitialPaymentSpec,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		notes:          notes,
		pickupAt:       pickupAt,
		initialPayment: initialPayment,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []LineItemSpec {
	return c.items
}

// Notes returns the free-text notes entered by staff.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// PickupAt returns the scheduled pickup time, or nil.
func (c CreateOrderCommand) PickupAt() *time.Time {
	return c.pickupAt
}

// InitialPayment returns the payment tendered at drop-off, or nil.
func (c CreateOrderCommand) InitialPayment() *InitialPaymentSpec {
	return c.initialPayment
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []LineItemSpec) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = items
	return nil
}

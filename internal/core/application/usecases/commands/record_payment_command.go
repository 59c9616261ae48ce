package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents money tendered against an existing order.
// In strict mode the payment is refused when it would push the completed
// total past the order total; otherwise the excess is reported as change.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	amount          kernel.Money
	method          payment.Method
	referenceNumber string
	strict          bool

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a payment-recording command.
func NewRecordPaymentCommand(
	orderID kernel.UUID,
	amountMinor int64,
	method payment.Method,
	referenceNumber string,
	strict bool,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		referenceNumber: referenceNumber,
		strict:          strict,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAmount(amountMinor),
		cmd.setMethod(method),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the paid order.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount returns the tendered amount.
func (c RecordPaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Method returns how the payment was tendered.
func (c RecordPaymentCommand) Method() payment.Method {
	return c.method
}

// ReferenceNumber returns the human-entered reference, if any.
func (c RecordPaymentCommand) ReferenceNumber() string {
	return c.referenceNumber
}

// Strict reports whether overpayment should be refused.
func (c RecordPaymentCommand) Strict() bool {
	return c.strict
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setAmount(amountMinor int64) error {
	amount, err := kernel.NewMoney(amountMinor)
	if err != nil {
		return err
	}

	c.amount = amount
	return nil
}

func (c *RecordPaymentCommand) setMethod(method payment.Method) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

// Package customer contains the customer entity referenced by orders and
// payments. Customer identity is immutable once orders reference it.
package customer

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// UnknownDisplayName is the label shown when a referenced customer record
// no longer exists. Display never blocks on a missing customer.
const UnknownDisplayName = "Unknown Customer"

// Customer is a laundry customer: identity plus contact fields.
type Customer struct {
	id    kernel.UUID
	name  string
	phone string
	email string

	isConstructed bool
}

// NewCustomer creates a customer. The name is required; phone and email
// are optional contact fields.
func NewCustomer(id kernel.UUID, name, phone, email string) (*Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Customer{
		id:            id,
		name:          name,
		phone:         phone,
		email:         email,
		isConstructed: true,
	}, nil
}

// Validate ensures the Customer was created through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the contact phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Email returns the contact email address.
func (c *Customer) Email() string {
	return c.email
}

// DisplayName returns the name used on receipts and order views.
func (c *Customer) DisplayName() string {
	return c.name
}

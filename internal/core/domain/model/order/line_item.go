package order

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through NewLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one priced service entry within an order. It snapshots the
// service name and unit price at order time, so a later change to or removal
// of the catalog entry never alters a historical order. The subtotal is
// derived from the pricing variant and the unit price; it is recomputed
// whenever the owning order recomputes its total, never trusted as stored
// truth.
type LineItem struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// serviceID references the catalog service (nil when the item was
	// entered free-form or the service is gone)
	serviceID *kernel.UUID

	// serviceName is the display-name snapshot taken at order time
	serviceName string

	// unitPrice is the price snapshot, in minor currency units
	unitPrice kernel.Money

	// pricing carries the model and its weight or quantity
	pricing Pricing

	// subtotal is the computed amount for this line
	subtotal kernel.Money

	// isConstructed ensures the item was created via NewLineItem
	isConstructed bool
}

// NewLineItem creates a line item and computes its subtotal. The service
// name snapshot is required; serviceID may be nil for free-form items.
func NewLineItem(
	id kernel.UUID,
	serviceID *kernel.UUID,
	serviceName string,
	unitPrice kernel.Money,
	pricing Pricing,
) (LineItem, error) {
	if err := id.Validate(); err != nil {
		return LineItem{}, err
	}
	if serviceID != nil {
		if err := serviceID.Validate(); err != nil {
			return LineItem{}, err
		}
	}
	if serviceName == "" {
		return LineItem{}, errs.NewValueIsRequiredError("serviceName")
	}

	subtotal, err := pricing.Subtotal(unitPrice)
	if err != nil {
		return LineItem{}, err
	}

	return LineItem{
		id:            id,
		serviceID:     serviceID,
		serviceName:   serviceName,
		unitPrice:     unitPrice,
		pricing:       pricing,
		subtotal:      subtotal,
		isConstructed: true,
	}, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	if !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (li LineItem) ID() kernel.UUID {
	return li.id
}

// ServiceID returns the referenced catalog service, or nil.
func (li LineItem) ServiceID() *kernel.UUID {
	return li.serviceID
}

// ServiceName returns the service display-name snapshot.
func (li LineItem) ServiceName() string {
	return li.serviceName
}

// UnitPrice returns the unit-price snapshot.
func (li LineItem) UnitPrice() kernel.Money {
	return li.unitPrice
}

// Pricing returns the pricing variant.
func (li LineItem) Pricing() Pricing {
	return li.pricing
}

// Subtotal returns the computed subtotal.
func (li LineItem) Subtotal() kernel.Money {
	return li.subtotal
}

// recompute re-derives the subtotal from the pricing inputs and returns the
// updated item. The stored subtotal is never trusted when the order total
// is computed.
func (li LineItem) recompute() (LineItem, error) {
	subtotal, err := li.pricing.Subtotal(li.unitPrice)
	if err != nil {
		return LineItem{}, err
	}
	li.subtotal = subtotal
	return li, nil
}

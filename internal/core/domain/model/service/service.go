// Package service contains the laundry service catalog entry. The catalog
// is read-only from the order core's perspective: orders snapshot a
// service's name and price at creation, so later catalog changes never
// alter historical orders.
package service

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// ErrServiceIsNotConstructed is returned when a Service was not created
// through NewService.
var ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")

// FallbackDisplayName returns the label shown when a referenced catalog
// service no longer exists, e.g. "Service #3f1a…". Display never blocks on
// a missing catalog entry.
func FallbackDisplayName(id kernel.UUID) string {
	return fmt.Sprintf("Service #%s", id)
}

// Service is a catalog entry: a named laundry service with a unit price and
// the pricing model by which line items derive their subtotal.
type Service struct {
	id           kernel.UUID
	name         string
	unitPrice    kernel.Money
	pricingModel order.PricingModel

	isConstructed bool
}

// NewService creates a catalog entry.
func NewService(id kernel.UUID, name string, unitPrice kernel.Money, pricingModel order.PricingModel) (*Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if err := pricingModel.Validate(); err != nil {
		return nil, err
	}

	return &Service{
		id:            id,
		name:          name,
		unitPrice:     unitPrice,
		pricingModel:  pricingModel,
		isConstructed: true,
	}, nil
}

// Validate ensures the Service was created through NewService.
func (s *Service) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceIsNotConstructed
	}
	return nil
}

// ID returns the service's unique identifier.
func (s *Service) ID() kernel.UUID {
	return s.id
}

// Name returns the catalog display name.
func (s *Service) Name() string {
	return s.name
}

// UnitPrice returns the catalog price in minor currency units.
func (s *Service) UnitPrice() kernel.Money {
	return s.unitPrice
}

// PricingModel returns how line items for this service are priced.
func (s *Service) PricingModel() order.PricingModel {
	return s.pricingModel
}

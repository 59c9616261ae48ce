package commands

import (
	"context"
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// LineItemSpec describes one requested line item before it is priced.
// ServiceID is optional for free-form entries. ServiceName and UnitPriceMinor
// are optional when the referenced catalog service can supply them.
type LineItemSpec struct {
	ServiceID      *kernel.UUID
	ServiceName    string
	UnitPriceMinor *int64
	Model          order.PricingModel
	WeightTenths   int64
	Quantity       int
}

// buildLineItems prices every spec against the catalog and returns the
// resulting line items. Errors carry the offending item index so callers
// can point at the exact bad entry in a multi-item request.
func buildLineItems(
	ctx context.Context,
	serviceRepo ports.ServiceRepository,
	specs []LineItemSpec,
	defaultUnitPrice kernel.Money,
) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(specs))
	for i, spec := range specs {
		item, err := buildLineItem(ctx, serviceRepo, spec, defaultUnitPrice)
		if err != nil {
			return nil, tagItemError(i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// buildLineItem snapshots name and unit price for one spec. Resolution
// order for both: the spec itself, then the catalog service, then the
// fallback (display-name fallback for the name, the configured default for
// the price). A spec that references a missing service without supplying
// its own name and price fails with the catalog's not-found error.
func buildLineItem(
	ctx context.Context,
	serviceRepo ports.ServiceRepository,
	spec LineItemSpec,
	defaultUnitPrice kernel.Money,
) (order.LineItem, error) {
	var catalogService *service.Service
	if spec.ServiceID != nil {
		found, err := serviceRepo.Get(ctx, *spec.ServiceID)
		if err != nil {
			var notFound *errs.ObjectNotFoundError
			if !errors.As(err, &notFound) {
				return order.LineItem{}, err
			}
			if spec.ServiceName == "" && spec.UnitPriceMinor == nil {
				return order.LineItem{}, err
			}
		}
		catalogService = found
	}

	name := spec.ServiceName
	if name == "" {
		switch {
		case catalogService != nil:
			name = catalogService.Name()
		case spec.ServiceID != nil:
			name = service.FallbackDisplayName(*spec.ServiceID)
		default:
			return order.LineItem{}, errs.NewValueIsRequiredError("serviceName")
		}
	}

	unitPrice := defaultUnitPrice
	switch {
	case spec.UnitPriceMinor != nil:
		price, err := kernel.NewMoney(*spec.UnitPriceMinor)
		if err != nil {
			return order.LineItem{}, err
		}
		unitPrice = price
	case catalogService != nil:
		unitPrice = catalogService.UnitPrice()
	}

	pricing, err := buildPricing(spec)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(kernel.NewUUID(), spec.ServiceID, name, unitPrice, pricing)
}

func buildPricing(spec LineItemSpec) (order.Pricing, error) {
	switch spec.Model {
	case order.PerWeight:
		weight, err := kernel.NewWeightFromTenths(spec.WeightTenths)
		if err != nil {
			return order.Pricing{}, err
		}
		return order.NewPerWeightPricing(weight)
	case order.PerUnit:
		return order.NewPerUnitPricing(spec.Quantity)
	case order.Flat:
		return order.NewFlatPricing(), nil
	case order.PricingModelUnknown:
		return order.Pricing{}, spec.Model.Validate()
	default:
		return order.Pricing{}, spec.Model.Validate()
	}
}

func tagItemError(index int, err error) error {
	return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", index), err)
}

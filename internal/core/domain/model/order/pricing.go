package order

import (
	"fmt"
	"math"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrPricingIsNotConstructed is returned when validating a zero-value Pricing.
var ErrPricingIsNotConstructed = errs.NewValueIsRequiredError(
	"Pricing must be created via NewPerWeightPricing, NewPerUnitPricing, or NewFlatPricing")

// PricingModel identifies the rule by which a line item's subtotal is
// derived from its unit price.
type PricingModel int

const (
	// PricingModelUnknown is the invalid zero value.
	PricingModelUnknown PricingModel = iota

	// PerWeight prices by laundry weight in kilograms (e.g. wash-and-fold).
	PerWeight

	// PerUnit prices by item count (e.g. dry-cleaned suits).
	PerUnit

	// Flat charges the unit price once regardless of weight or count
	// (e.g. an express surcharge).
	Flat
)

func getPricingModelStrings() map[PricingModel]string {
	//nolint:exhaustive // PricingModelUnknown is intentionally excluded as it's invalid
	return map[PricingModel]string{
		PerWeight: "per_weight",
		PerUnit:   "per_unit",
		Flat:      "flat",
	}
}

// PricingModelFromString parses the wire form ("per_weight", "per_unit", "flat").
func PricingModelFromString(s string) (PricingModel, error) {
	for model, name := range getPricingModelStrings() {
		if name == s {
			return model, nil
		}
	}
	return PricingModelUnknown, errs.NewValueIsInvalidErrorWithCause("pricingModel",
		fmt.Errorf("%q is not a valid pricing model", s))
}

// Validate checks that the PricingModel is one of the defined models.
func (m PricingModel) Validate() error {
	if _, ok := getPricingModelStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("pricingModel",
			fmt.Errorf("%d is not a valid pricing model", m))
	}
	return nil
}

// String returns the wire form of the pricing model.
func (m PricingModel) String() string {
	if str, ok := getPricingModelStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Pricing is a tagged variant over the three pricing modes. Exactly one of
// {weight, quantity} is carried, matched to the model, so weight-based and
// count-based items cannot be confused and subtotal computation is
// exhaustively checked.
//
// Pricing is immutable; construct it through one of the model-specific
// constructors.
type Pricing struct {
	model    PricingModel
	weight   kernel.Weight
	quantity int

	guard guard.ConstructorGuard
}

// NewPerWeightPricing creates a weight-based pricing with the given weight.
// The weight must be positive (enforced by kernel.Weight).
func NewPerWeightPricing(weight kernel.Weight) (Pricing, error) {
	if err := weight.Validate(); err != nil {
		return Pricing{}, err
	}
	return Pricing{
		model:  PerWeight,
		weight: weight,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// NewPerUnitPricing creates a count-based pricing with the given quantity.
// The quantity must be at least 1.
func NewPerUnitPricing(quantity int) (Pricing, error) {
	if quantity < 1 {
		return Pricing{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt32)
	}
	return Pricing{
		model:    PerUnit,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewFlatPricing creates a flat pricing: the subtotal is the unit price.
func NewFlatPricing() Pricing {
	return Pricing{
		model: Flat,
		guard: guard.NewConstructorGuard(),
	}
}

// Model returns the pricing model tag.
func (p Pricing) Model() PricingModel {
	return p.model
}

// Weight returns the weight and true for per-weight pricing, or a zero
// weight and false otherwise.
func (p Pricing) Weight() (kernel.Weight, bool) {
	if p.model != PerWeight {
		return kernel.Weight{}, false
	}
	return p.weight, true
}

// Quantity returns the quantity and true for per-unit pricing, or zero and
// false otherwise.
func (p Pricing) Quantity() (int, bool) {
	if p.model != PerUnit {
		return 0, false
	}
	return p.quantity, true
}

// Validate ensures the Pricing was created through a constructor.
func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}

// Subtotal computes the line subtotal for the given unit price:
// unit price × weight for per-weight (rounded half-up to the minor unit),
// unit price × quantity for per-unit, and the unit price itself for flat.
// The computation is deterministic and side-effect free.
func (p Pricing) Subtotal(unitPrice kernel.Money) (kernel.Money, error) {
	if err := p.Validate(); err != nil {
		return kernel.Money{}, err
	}

	switch p.model {
	case PerWeight:
		return unitPrice.MulWeight(p.weight)
	case PerUnit:
		return unitPrice.MulQuantity(p.quantity)
	case Flat:
		return unitPrice, nil
	case PricingModelUnknown:
		return kernel.Money{}, p.model.Validate()
	default:
		return kernel.Money{}, p.model.Validate()
	}
}

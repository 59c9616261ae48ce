package kernel

import (
	"fmt"
	"math"

	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a monetary amount in minor currency
// units (e.g. cents, or rupiah for zero-decimal currencies). Amounts are
// never negative; subtraction floors at zero so callers surface differences
// explicitly (remaining balance, change due) instead of holding negative
// money.
//
// Arithmetic that can produce fractions (weight-based pricing) goes through
// shopspring/decimal and rounds half-up to the nearest minor unit, avoiding
// float drift.
//
// The zero value is a valid zero amount.
type Money struct {
	minorUnits int64
}

// NewMoney creates a Money from an amount in minor currency units.
// Negative amounts are rejected.
func NewMoney(minorUnits int64) (Money, error) {
	if minorUnits < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", minorUnits, 0, int64(math.MaxInt64))
	}
	return Money{minorUnits: minorUnits}, nil
}

// MoneyZero returns the zero amount.
func MoneyZero() Money {
	return Money{}
}

// MinorUnits returns the amount in minor currency units.
func (m Money) MinorUnits() int64 {
	return m.minorUnits
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.minorUnits == 0
}

// IsEqual reports whether two amounts are equal.
func (m Money) IsEqual(other Money) bool {
	return m.minorUnits == other.minorUnits
}

// IsGreaterThan reports whether m exceeds other.
func (m Money) IsGreaterThan(other Money) bool {
	return m.minorUnits > other.minorUnits
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{minorUnits: m.minorUnits + other.minorUnits}
}

// SubFloor returns m − other, floored at zero. This is the building block
// for remaining balance (total − paid) and change due (tendered − remaining).
func (m Money) SubFloor(other Money) Money {
	if other.minorUnits >= m.minorUnits {
		return Money{}
	}
	return Money{minorUnits: m.minorUnits - other.minorUnits}
}

// MulQuantity returns the amount multiplied by a unit count.
// The quantity must be at least 1.
func (m Money) MulQuantity(quantity int) (Money, error) {
	if quantity < 1 {
		return Money{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt32)
	}
	return Money{minorUnits: m.minorUnits * int64(quantity)}, nil
}

// MulWeight returns the amount multiplied by a weight in kilograms,
// rounded half-up to the nearest minor unit. The unit price is interpreted
// as price per kilogram.
func (m Money) MulWeight(w Weight) (Money, error) {
	if err := w.Validate(); err != nil {
		return Money{}, err
	}

	result := decimal.NewFromInt(m.minorUnits).
		Mul(decimal.NewFromInt(w.Tenths())).
		Div(decimal.NewFromInt(tenthsPerKilogram)).
		Round(0)

	return Money{minorUnits: result.IntPart()}, nil
}

// String formats the amount in minor units, for logs and error messages.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.minorUnits)
}

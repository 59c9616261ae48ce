package kernel

import (
	"fmt"
	"math"

	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// tenthsPerKilogram is the weight resolution: one decimal of precision.
const tenthsPerKilogram = 10

// Weight is a value object representing a laundry weight in kilograms with
// 0.1 kg granularity. It is stored internally as an integer number of tenths
// so weight arithmetic stays exact.
//
// A weight must be strictly positive; the zero value is invalid.
type Weight struct {
	tenths int64
}

// NewWeightFromTenths creates a Weight from an integer number of 0.1 kg
// units. Non-positive weights are rejected.
func NewWeightFromTenths(tenths int64) (Weight, error) {
	if tenths <= 0 {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", tenths, 1, int64(math.MaxInt64))
	}
	return Weight{tenths: tenths}, nil
}

// NewWeightFromKilograms creates a Weight from a kilogram value, which must
// land exactly on the 0.1 kg grid (2.5 is valid, 2.55 is not).
func NewWeightFromKilograms(kg float64) (Weight, error) {
	scaled := decimal.NewFromFloat(kg).Mul(decimal.NewFromInt(tenthsPerKilogram))
	if !scaled.IsInteger() {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not a multiple of 0.1 kg", kg))
	}
	return NewWeightFromTenths(scaled.IntPart())
}

// Tenths returns the weight as an integer number of 0.1 kg units.
func (w Weight) Tenths() int64 {
	return w.tenths
}

// Kilograms returns the weight as an exact decimal kilogram value.
func (w Weight) Kilograms() decimal.Decimal {
	return decimal.NewFromInt(w.tenths).Div(decimal.NewFromInt(tenthsPerKilogram))
}

// IsEqual reports whether two weights are equal.
func (w Weight) IsEqual(other Weight) bool {
	return w.tenths == other.tenths
}

// Validate returns an error for a non-positive (including zero-value) weight.
func (w Weight) Validate() error {
	if w.tenths <= 0 {
		return errs.NewValueIsOutOfRangeError("weight", w.tenths, 1, int64(math.MaxInt64))
	}
	return nil
}

// String formats the weight in kilograms, e.g. "2.5".
func (w Weight) String() string {
	return w.Kilograms().String()
}

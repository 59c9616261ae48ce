package kernel

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"

	"laundry/internal/pkg/errs"
)

// orderNumberSuffixSpace is the number of distinct suffixes per day.
const orderNumberSuffixSpace = 100000

var orderNumberPattern = regexp.MustCompile(`^ORD-\d{8}-\d{5}$`)

// ErrOrderNumberIsNotConstructed is returned when validating a zero-value
// OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via GenerateOrderNumber or OrderNumberFromString")

// OrderNumber is the customer-facing, globally unique order identifier in
// the form ORD-YYYYMMDD-NNNNN. It is assigned once at order creation and is
// immutable afterwards.
//
// The suffix is drawn at random; uniqueness is enforced by storage, and the
// creator retries with a fresh suffix on a conflict.
type OrderNumber struct {
	value string
}

// GenerateOrderNumber produces a candidate order number for the given time
// with a random 5-digit suffix.
func GenerateOrderNumber(t time.Time) OrderNumber {
	return OrderNumber{
		value: fmt.Sprintf("ORD-%s-%05d", t.Format("20060102"), rand.IntN(orderNumberSuffixSpace)),
	}
}

// OrderNumberFromString parses and validates an order number, typically when
// reconstructing an order from persistence.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if !orderNumberPattern.MatchString(s) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause("orderNumber",
			fmt.Errorf("%q does not match ORD-YYYYMMDD-NNNNN", s))
	}
	return OrderNumber{value: s}, nil
}

// String returns the order number in its canonical textual form.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual reports whether two order numbers are the same.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate returns an error for a zero-value order number.
func (n OrderNumber) Validate() error {
	if n.value == "" {
		return ErrOrderNumberIsNotConstructed
	}
	return nil
}

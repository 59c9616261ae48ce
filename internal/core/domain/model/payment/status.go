package payment

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the settlement state of a payment record. Only Completed
// payments count toward an order's paid amount.
type Status int

const (
	// StatusUnknown is the invalid zero value.
	StatusUnknown Status = iota

	// Pending is the initial state: the payment is recorded but not settled.
	Pending

	// Completed means the funds are confirmed received.
	Completed

	// Failed means settlement was attempted and did not succeed.
	Failed

	// Refunded means a previously completed payment was returned.
	Refunded

	// Cancelled means the payment was withdrawn before settlement.
	Cancelled
)

func getStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Completed: "completed",
		Failed:    "failed",
		Refunded:  "refunded",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the wire form ("pending", "completed", ...).
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks that the Status is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire form of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

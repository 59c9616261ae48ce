package payment

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Method identifies how a payment was tendered.
type Method int

const (
	// MethodUnknown is the invalid zero value.
	MethodUnknown Method = iota

	Cash
	Card
	Transfer
	Wallet
	Other
)

func getMethodStrings() map[Method]string {
	//nolint:exhaustive // MethodUnknown is intentionally excluded as it's invalid
	return map[Method]string{
		Cash:     "cash",
		Card:     "card",
		Transfer: "transfer",
		Wallet:   "wallet",
		Other:    "other",
	}
}

// MethodFromString parses the wire form ("cash", "card", ...).
func MethodFromString(s string) (Method, error) {
	for method, name := range getMethodStrings() {
		if name == s {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause("method",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks that the Method is one of the defined methods.
func (m Method) Validate() error {
	if _, ok := getMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire form of the method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

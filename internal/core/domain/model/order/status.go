package order

import (
	"errors"
	"fmt"

	"laundry/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel for all rejected status transitions.
// Use errors.Is against it; the concrete *InvalidTransitionError names the
// current and requested states.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError describes a rejected status transition.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the processing state of a laundry order. It implements
// a state machine over the physical pipeline:
//
//	New → Processing → Washing → Drying → Folding → Ready → Delivered
//
// Cancelled is reachable from any non-terminal state. Delivered and
// Cancelled are terminal. A transition is valid only to the immediate next
// state in sequence or to Cancelled; skipping a phase, reversing, or leaving
// a terminal state is rejected. A physical order passes through each phase
// exactly once, so a skipped or revived order indicates a caller bug and
// must not be silently accepted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// The zero value helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned at order creation.
	New

	// Processing means the order has been accepted into the pipeline.
	Processing

	// Washing, Drying, Folding are the physical processing phases.
	Washing
	Drying
	Folding

	// Ready means the order awaits pickup or delivery.
	Ready

	// Delivered is the successful terminal state.
	Delivered

	// Cancelled is the abort terminal state, reachable from any
	// non-terminal status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		New:        "new",
		Processing: "processing",
		Washing:    "washing",
		Drying:     "drying",
		Folding:    "folding",
		Ready:      "ready",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "new",
		Processing: "processing",
		Washing:    "washing",
		Drying:     "drying",
		Folding:    "folding",
		Ready:      "ready",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// next maps each status to its immediate successor in the pipeline.
// Terminal states have no successor.
func next(s Status) (Status, bool) {
	switch s {
	case New:
		return Processing, true
	case Processing:
		return Washing, true
	case Washing:
		return Drying, true
	case Drying:
		return Folding, true
	case Folding:
		return Ready, true
	case Ready:
		return Delivered, true
	case Unknown, Delivered, Cancelled:
		return Unknown, false
	default:
		return Unknown, false
	}
}

// StatusFromString parses the lower-case wire form ("new", "washing", ...).
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lower-case name of the status. It implements
// fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransition reports whether s may transition to the requested status
// without performing the transition.
func (s Status) CanTransition(to Status) bool {
	if s.Validate() != nil || to.Validate() != nil {
		return false
	}
	if s.IsTerminal() {
		return false
	}
	if to == Cancelled {
		return true
	}
	successor, ok := next(s)
	return ok && successor == to
}

// TransitionTo validates and performs a transition, returning the new
// status. Invalid requests fail with *InvalidTransitionError naming the
// current and requested states.
func (s Status) TransitionTo(to Status) (Status, error) {
	if err := to.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransition(to) {
		return Unknown, &InvalidTransitionError{From: s, To: to}
	}
	return to, nil
}

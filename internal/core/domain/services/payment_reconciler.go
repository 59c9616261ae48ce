package services

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
)

// ErrOverpayment is returned by ReconcileStrict when completed payments
// exceed the order total with no recorded change. The default Reconcile
// tolerates the excess and leaves surfacing it as change to the caller.
var ErrOverpayment = errors.New("completed payments exceed the order total")

// Reconciliation is the result of matching an order's payments against its
// total.
type Reconciliation struct {
	// PaidAmount is the sum of completed, non-placeholder payment amounts.
	PaidAmount kernel.Money

	// RemainingAmount is the unpaid balance, floored at zero.
	RemainingAmount kernel.Money

	// IsFullyPaid reports whether the remaining balance is zero.
	IsFullyPaid bool

	// NeedsPlaceholder signals that the order has no real payment records
	// and the caller should synthesize payment.Placeholder for display.
	NeedsPlaceholder bool
}

// PaymentReconciler is a domain service that computes payment-derived fields
// for an order: paid amount, remaining balance, completion, and change due
// for a payment being submitted.
//
// Business rules:
//   - only completed payments count toward the paid amount
//   - placeholder records never count
//   - change due belongs to the payment being submitted, not to the order
//   - an order without payment records is bootstrapped with a placeholder
type PaymentReconciler struct{}

// NewPaymentReconciler creates a PaymentReconciler.
func NewPaymentReconciler() PaymentReconciler {
	return PaymentReconciler{}
}

// Reconcile computes the paid amount, remaining balance, and completion for
// the given order total and payment records. Overpayment is tolerated: the
// remaining balance floors at zero and the excess is reported as change by
// ChangeFor at payment-submission time.
func (r PaymentReconciler) Reconcile(orderTotal kernel.Money, payments []*payment.Payment) (Reconciliation, error) {
	paid := kernel.MoneyZero()
	realRecords := 0

	for _, p := range payments {
		if err := p.Validate(); err != nil {
			return Reconciliation{}, err
		}
		if p.IsPlaceholder() {
			continue
		}
		realRecords++
		if p.CountsTowardPaid() {
			paid = paid.Add(p.Amount())
		}
	}

	remaining := orderTotal.SubFloor(paid)

	return Reconciliation{
		PaidAmount:       paid,
		RemainingAmount:  remaining,
		IsFullyPaid:      remaining.IsZero(),
		NeedsPlaceholder: realRecords == 0,
	}, nil
}

// ReconcileStrict behaves like Reconcile but fails with ErrOverpayment when
// the paid amount exceeds the order total. Used when the caller requests
// strict mode on payment submission.
func (r PaymentReconciler) ReconcileStrict(orderTotal kernel.Money, payments []*payment.Payment) (Reconciliation, error) {
	result, err := r.Reconcile(orderTotal, payments)
	if err != nil {
		return Reconciliation{}, err
	}
	if result.PaidAmount.IsGreaterThan(orderTotal) {
		return Reconciliation{}, ErrOverpayment
	}
	return result, nil
}

// ChangeFor computes the change due for a payment being submitted: the
// tendered amount minus the balance remaining before this payment, floored
// at zero. Change is a property of the submitted payment, never stored on
// the order.
func (r PaymentReconciler) ChangeFor(tendered, remainingBefore kernel.Money) kernel.Money {
	return tendered.SubFloor(remainingBefore)
}

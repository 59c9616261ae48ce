package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/domain/services"
)

// PaymentReceipt is the result of recording a payment: the payment id, the
// paid and remaining totals after the payment, and the change due for this
// payment. Change belongs to the receipt, never to the order.
type PaymentReceipt struct {
	PaymentID       kernel.UUID
	PaidAmount      kernel.Money
	RemainingAmount kernel.Money
	ChangeDue       kernel.Money
	IsFullyPaid     bool
}

// RecordPaymentCommandHandler appends a completed payment to an order and
// returns the resulting receipt.
type RecordPaymentCommandHandler struct {
	uowFactory PaymentUoWFactory
	reconciler services.PaymentReconciler
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
func NewRecordPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	reconciler services.PaymentReconciler,
) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
		reconciler: reconciler,
	}
}

// Handle records the payment. The order row is re-written with its version
// predicate even though no order field changes, which serializes payment
// recording against concurrent status or item updates on the same order.
func (h *RecordPaymentCommandHandler) Handle(
	ctx context.Context,
	cmd RecordPaymentCommand,
) (PaymentReceipt, error) {
	if err := cmd.Validate(); err != nil {
		return PaymentReceipt{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PaymentReceipt{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	paidOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return PaymentReceipt{}, err
	}

	paymentRepo := uow.PaymentRepository()
	payments, err := paymentRepo.GetByOrder(ctx, paidOrder.ID())
	if err != nil {
		return PaymentReceipt{}, err
	}

	before, err := h.reconciler.Reconcile(paidOrder.Total(), payments)
	if err != nil {
		return PaymentReceipt{}, err
	}
	changeDue := h.reconciler.ChangeFor(cmd.Amount(), before.RemainingAmount)

	newPayment, err := payment.RestorePayment(
		kernel.NewUUID(),
		paidOrder.ID(),
		paidOrder.CustomerID(),
		cmd.Amount(),
		cmd.Method(),
		payment.Completed,
		"",
		cmd.ReferenceNumber(),
		time.Now().UTC(),
	)
	if err != nil {
		return PaymentReceipt{}, err
	}

	reconcile := h.reconciler.Reconcile
	if cmd.Strict() {
		reconcile = h.reconciler.ReconcileStrict
	}
	after, err := reconcile(paidOrder.Total(), append(payments, newPayment))
	if err != nil {
		return PaymentReceipt{}, err
	}

	if err = paymentRepo.Add(ctx, newPayment); err != nil {
		return PaymentReceipt{}, err
	}

	if err = orderRepo.Update(ctx, paidOrder); err != nil {
		return PaymentReceipt{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PaymentReceipt{}, err
	}

	return PaymentReceipt{
		PaymentID:       newPayment.ID(),
		PaidAmount:      after.PaidAmount,
		RemainingAmount: after.RemainingAmount,
		ChangeDue:       changeDue,
		IsFullyPaid:     after.IsFullyPaid,
	}, nil
}

package commands

import (
	"context"

	"laundry/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes an order with its line items and
// payment records in one transaction.
type DeleteOrderCommandHandler struct {
	uowFactory DeleteOrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory DeleteOrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the order and returns the number of orders removed.
// A missing order fails with errs.ObjectNotFoundError rather than
// reporting a zero-row success.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.PaymentRepository().DeleteByOrder(ctx, cmd.OrderID()); err != nil {
		return 0, err
	}

	affected, err := uow.OrderRepository().Delete(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, errs.NewObjectNotFoundError("orderId", cmd.OrderID())
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return affected, nil
}

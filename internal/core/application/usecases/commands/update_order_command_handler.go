package commands

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
)

// UpdateOrderCommandHandler applies partial updates to an order: notes,
// scheduled pickup, and line-item replacement. Item edits go through the
// aggregate, so terminal-status orders refuse them and the total is
// recomputed before persisting.
type UpdateOrderCommandHandler struct {
	uowFactory       UpdateOrderUoWFactory
	defaultUnitPrice kernel.Money
}

// NewUpdateOrderCommandHandler creates a handler for partial order updates.
func NewUpdateOrderCommandHandler(
	uowFactory UpdateOrderUoWFactory,
	defaultUnitPrice kernel.Money,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory:       uowFactory,
		defaultUnitPrice: defaultUnitPrice,
	}
}

// Handle processes the partial update. The write carries the loaded
// version, so a writer that lost a concurrent race fails with
// errs.ConcurrentModificationError instead of overwriting.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if cmd.Items() != nil {
		items, err := buildLineItems(ctx, uow.ServiceRepository(), cmd.Items(), h.defaultUnitPrice)
		if err != nil {
			return err
		}
		if err = existing.ReplaceItems(items); err != nil {
			return err
		}
	}
	if cmd.Notes() != nil {
		existing.SetNotes(*cmd.Notes())
	}
	if cmd.PickupAt() != nil {
		existing.SchedulePickup(*cmd.PickupAt())
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

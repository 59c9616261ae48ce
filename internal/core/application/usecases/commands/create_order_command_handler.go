package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/errs"
)

// maxOrderNumberAttempts bounds retries on order-number collisions. The
// suffix space is 100,000 per day, so hitting this limit is an operational
// signal, not a normal outcome.
const maxOrderNumberAttempts = 5

// CreateOrderCommandHandler handles the business logic for order creation:
// customer validation, catalog pricing of every line item, order-number
// generation, and transactional persistence of the order plus an optional
// drop-off payment.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, defaultUnitPrice)
//	cmd, _ := NewCreateOrderCommand(orderID, customerID, items, "", nil, nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory       CreateOrderUoWFactory
	defaultUnitPrice kernel.Money
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// defaultUnitPrice is applied to line items that neither carry their own
// unit price nor reference a catalog service that has one.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	defaultUnitPrice kernel.Money,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:       uowFactory,
		defaultUnitPrice: defaultUnitPrice,
	}
}

// Handle processes the order creation command.
//
// On an order-number collision the whole attempt is retried with a freshly
// generated number. Each attempt runs in its own unit of work: a unique
// violation aborts the Postgres transaction it happened in, so retrying
// inside the same one would only produce follow-up errors.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		err := h.attempt(ctx, cmd)
		if err == nil {
			return nil
		}

		var alreadyExists *errs.ObjectAlreadyExistsError
		if errors.As(err, &alreadyExists) {
			continue
		}
		return err
	}

	return order.ErrOrderNumberExhausted
}

func (h *CreateOrderCommandHandler) attempt(ctx context.Context, cmd CreateOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	items, err := buildLineItems(ctx, uow.ServiceRepository(), cmd.Items(), h.defaultUnitPrice)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	number := kernel.GenerateOrderNumber(now)

	newOrder, err := order.NewOrder(cmd.OrderID(), number, cmd.CustomerID(), items)
	if err != nil {
		return err
	}
	if cmd.Notes() != "" {
		newOrder.SetNotes(cmd.Notes())
	}
	if cmd.PickupAt() != nil {
		newOrder.SchedulePickup(*cmd.PickupAt())
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if spec := cmd.InitialPayment(); spec != nil {
		amount, err := kernel.NewMoney(spec.AmountMinor)
		if err != nil {
			return err
		}

		dropOffPayment, err := payment.NewPayment(
			kernel.NewUUID(),
			newOrder.ID(),
			newOrder.CustomerID(),
			amount,
			spec.Method,
			payment.Completed,
			now,
		)
		if err != nil {
			return err
		}

		if err = uow.PaymentRepository().Add(ctx, dropOffPayment); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

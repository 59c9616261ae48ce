package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// GetOrderQueryHandler loads one order and enriches it for display. Unlike
// the list projection it goes through the domain model: the total is
// recomputed from the line items, balances come from the reconciler, and an
// order without payment rows gets a synthesized placeholder record. Missing
// display data (a deleted customer) degrades to a fallback name, never to a
// failed read.
type GetOrderQueryHandler struct {
	orderRepo    ports.OrderRepository
	paymentRepo  ports.PaymentRepository
	customerRepo ports.CustomerRepository
	reconciler   services.PaymentReconciler
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(
	orderRepo ports.OrderRepository,
	paymentRepo ports.PaymentRepository,
	customerRepo ports.CustomerRepository,
	reconciler services.PaymentReconciler,
) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		customerRepo: customerRepo,
		reconciler:   reconciler,
	}
}

// Handle executes the query. A missing order fails with
// errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	loaded, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if err = loaded.RecomputeTotal(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	payments, err := h.paymentRepo.GetByOrder(ctx, loaded.ID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	reconciliation, err := h.reconciler.Reconcile(loaded.Total(), payments)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if reconciliation.NeedsPlaceholder {
		placeholder, phErr := payment.Placeholder(
			loaded.ID(), loaded.CustomerID(), loaded.Total(), time.Now().UTC())
		if phErr != nil {
			return GetOrderQueryResponse{}, phErr
		}
		payments = append(payments, placeholder)
	}

	return GetOrderQueryResponse{
		ID:             loaded.ID(),
		Number:         loaded.Number().String(),
		CustomerID:     loaded.CustomerID(),
		CustomerName:   h.customerName(ctx, loaded),
		Status:         loaded.Status().String(),
		Notes:          loaded.Notes(),
		PickupAt:       loaded.PickupAt(),
		DeliveredAt:    loaded.DeliveredAt(),
		TotalMinor:     loaded.Total().MinorUnits(),
		Version:        loaded.Version(),
		PaidMinor:      reconciliation.PaidAmount.MinorUnits(),
		RemainingMinor: reconciliation.RemainingAmount.MinorUnits(),
		IsFullyPaid:    reconciliation.IsFullyPaid,
		Items:          itemViews(loaded.Items()),
		Payments:       paymentViews(payments),
	}, nil
}

// customerName resolves the customer's display name, degrading to the
// fallback when the customer record is gone.
func (h GetOrderQueryHandler) customerName(ctx context.Context, loaded *order.Order) string {
	c, err := h.customerRepo.Get(ctx, loaded.CustomerID())
	if err != nil {
		return customer.UnknownDisplayName
	}
	return c.DisplayName()
}

func itemViews(items []order.LineItem) []LineItemView {
	views := make([]LineItemView, 0, len(items))
	for _, item := range items {
		view := LineItemView{
			ID:             item.ID(),
			ServiceID:      item.ServiceID(),
			ServiceName:    item.ServiceName(),
			UnitPriceMinor: item.UnitPrice().MinorUnits(),
			PricingModel:   item.Pricing().Model().String(),
			SubtotalMinor:  item.Subtotal().MinorUnits(),
		}
		if weight, ok := item.Pricing().Weight(); ok {
			tenths := weight.Tenths()
			view.WeightTenths = &tenths
		}
		if quantity, ok := item.Pricing().Quantity(); ok {
			view.Quantity = &quantity
		}
		views = append(views, view)
	}
	return views
}

func paymentViews(payments []*payment.Payment) []PaymentView {
	views := make([]PaymentView, 0, len(payments))
	for _, p := range payments {
		views = append(views, PaymentView{
			ID:              p.ID(),
			AmountMinor:     p.Amount().MinorUnits(),
			Method:          p.Method().String(),
			Status:          p.Status().String(),
			TransactionID:   p.TransactionID(),
			ReferenceNumber: p.ReferenceNumber(),
			CreatedAt:       p.CreatedAt(),
			Placeholder:     p.IsPlaceholder(),
		})
	}
	return views
}

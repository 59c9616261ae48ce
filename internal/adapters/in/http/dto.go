package http

import (
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
)

// weightString renders a stored weight in kilograms, e.g. "2.5".
func weightString(tenths int64) string {
	w, err := kernel.NewWeightFromTenths(tenths)
	if err != nil {
		return "0"
	}
	return w.String()
}

// Error is the uniform error payload for all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineItemRequest is one requested line item. ServiceID references the
// catalog; serviceName and unitPriceMinor override or replace the catalog
// values. WeightKg is required for per_weight, quantity for per_unit.
type LineItemRequest struct {
	ServiceID      *string  `json:"serviceId,omitempty"`
	ServiceName    string   `json:"serviceName,omitempty"`
	UnitPriceMinor *int64   `json:"unitPriceMinor,omitempty"`
	PricingModel   string   `json:"pricingModel"`
	WeightKg       *float64 `json:"weightKg,omitempty"`
	Quantity       *int     `json:"quantity,omitempty"`
}

// PaymentRequest is a payment tendered against an order.
type PaymentRequest struct {
	AmountMinor     int64  `json:"amountMinor"`
	Method          string `json:"method"`
	ReferenceNumber string `json:"referenceNumber,omitempty"`
	Strict          bool   `json:"strict,omitempty"`
}

// CreateOrderRequest is the payload for POST /api/v1/orders. Payment is an
// optional amount tendered at drop-off.
type CreateOrderRequest struct {
	CustomerID string            `json:"customerId"`
	Items      []LineItemRequest `json:"items"`
	Notes      string            `json:"notes,omitempty"`
	PickupAt   *time.Time        `json:"pickupAt,omitempty"`
	Payment    *PaymentRequest   `json:"payment,omitempty"`
}

// UpdateOrderRequest is the payload for PATCH /api/v1/orders/:id. Absent
// fields are left unchanged; a present items list replaces the order's
// items entirely.
type UpdateOrderRequest struct {
	Notes    *string           `json:"notes,omitempty"`
	PickupAt *time.Time        `json:"pickupAt,omitempty"`
	Items    []LineItemRequest `json:"items,omitempty"`
}

// UpdateStatusRequest is the payload for PATCH /api/v1/orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// LineItemResponse is the display form of one line item.
type LineItemResponse struct {
	ID             string  `json:"id"`
	ServiceID      *string `json:"serviceId,omitempty"`
	ServiceName    string  `json:"serviceName"`
	UnitPriceMinor int64   `json:"unitPriceMinor"`
	PricingModel   string  `json:"pricingModel"`
	WeightKg       *string `json:"weightKg,omitempty"`
	Quantity       *int    `json:"quantity,omitempty"`
	SubtotalMinor  int64   `json:"subtotalMinor"`
}

// PaymentResponse is the display form of one payment record.
type PaymentResponse struct {
	ID              string    `json:"id"`
	AmountMinor     int64     `json:"amountMinor"`
	Method          string    `json:"method"`
	Status          string    `json:"status"`
	TransactionID   string    `json:"transactionId,omitempty"`
	ReferenceNumber string    `json:"referenceNumber,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	Placeholder     bool      `json:"placeholder"`
}

// OrderResponse is the enriched order view returned by the single-order
// endpoints.
type OrderResponse struct {
	ID             string             `json:"id"`
	Number         string             `json:"number"`
	CustomerID     string             `json:"customerId"`
	CustomerName   string             `json:"customerName"`
	Status         string             `json:"status"`
	Notes          string             `json:"notes,omitempty"`
	PickupAt       *time.Time         `json:"pickupAt,omitempty"`
	DeliveredAt    *time.Time         `json:"deliveredAt,omitempty"`
	TotalMinor     int64              `json:"totalMinor"`
	PaidMinor      int64              `json:"paidMinor"`
	RemainingMinor int64              `json:"remainingMinor"`
	IsFullyPaid    bool               `json:"isFullyPaid"`
	Version        int64              `json:"version"`
	Items          []LineItemResponse `json:"items"`
	Payments       []PaymentResponse  `json:"payments"`
}

// OrderSummaryResponse is one row of the order list.
type OrderSummaryResponse struct {
	ID         string `json:"id"`
	Number     string `json:"number"`
	CustomerID string `json:"customerId"`
	Status     string `json:"status"`
	TotalMinor int64  `json:"totalMinor"`
	ItemCount  int    `json:"itemCount"`
}

// OrderListResponse is the paginated order list.
type OrderListResponse struct {
	Orders     []OrderSummaryResponse `json:"orders"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalCount int64                  `json:"totalCount"`
}

// PaymentReceiptResponse is returned after recording a payment. ChangeDue
// belongs to this receipt; it is never stored on the order.
type PaymentReceiptResponse struct {
	PaymentID      string `json:"paymentId"`
	PaidMinor      int64  `json:"paidMinor"`
	RemainingMinor int64  `json:"remainingMinor"`
	ChangeDueMinor int64  `json:"changeDueMinor"`
	IsFullyPaid    bool   `json:"isFullyPaid"`
}

// DeleteOrderResponse reports the number of orders removed.
type DeleteOrderResponse struct {
	Affected int64 `json:"affected"`
}

func orderResponseFromQuery(resp queries.GetOrderQueryResponse) OrderResponse {
	items := make([]LineItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		view := LineItemResponse{
			ID:             item.ID.String(),
			ServiceName:    item.ServiceName,
			UnitPriceMinor: item.UnitPriceMinor,
			PricingModel:   item.PricingModel,
			Quantity:       item.Quantity,
			SubtotalMinor:  item.SubtotalMinor,
		}
		if item.ServiceID != nil {
			id := item.ServiceID.String()
			view.ServiceID = &id
		}
		if item.WeightTenths != nil {
			kg := weightString(*item.WeightTenths)
			view.WeightKg = &kg
		}
		items = append(items, view)
	}

	payments := make([]PaymentResponse, 0, len(resp.Payments))
	for _, p := range resp.Payments {
		payments = append(payments, PaymentResponse{
			ID:              p.ID.String(),
			AmountMinor:     p.AmountMinor,
			Method:          p.Method,
			Status:          p.Status,
			TransactionID:   p.TransactionID,
			ReferenceNumber: p.ReferenceNumber,
			CreatedAt:       p.CreatedAt,
			Placeholder:     p.Placeholder,
		})
	}

	return OrderResponse{
		ID:             resp.ID.String(),
		Number:         resp.Number,
		CustomerID:     resp.CustomerID.String(),
		CustomerName:   resp.CustomerName,
		Status:         resp.Status,
		Notes:          resp.Notes,
		PickupAt:       resp.PickupAt,
		DeliveredAt:    resp.DeliveredAt,
		TotalMinor:     resp.TotalMinor,
		PaidMinor:      resp.PaidMinor,
		RemainingMinor: resp.RemainingMinor,
		IsFullyPaid:    resp.IsFullyPaid,
		Version:        resp.Version,
		Items:          items,
		Payments:       payments,
	}
}

// Package http exposes the order service over REST. It binds request
// payloads into commands and queries, delegates to the application layer,
// and maps application errors onto HTTP statuses.
package http

import (
	"net/http"
	"strconv"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	updateOrderHandler    commands.UpdateOrderCommandHandler
	updateStatusHandler   commands.UpdateOrderStatusCommandHandler
	recordPaymentHandler  commands.RecordPaymentCommandHandler
	deleteOrderHandler    commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates the HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	recordPaymentHandler commands.RecordPaymentCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		updateOrderHandler:   updateOrderHandler,
		updateStatusHandler:  updateStatusHandler,
		recordPaymentHandler: recordPaymentHandler,
		deleteOrderHandler:   deleteOrderHandler,
		getOrderHandler:      getOrderHandler,
		listOrdersHandler:    listOrdersHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.ListOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PATCH("/orders/:id", s.UpdateOrder)
	v1.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	v1.DELETE("/orders/:id", s.DeleteOrder)
	v1.POST("/orders/:id/payments", s.RecordPayment)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders. On success it returns the
// enriched order, 201.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return fail(ctx, errs.NewValueIsInvalidErrorWithCause("customerId", err))
	}

	items, err := itemSpecs(req.Items)
	if err != nil {
		return fail(ctx, err)
	}

	var initialPayment *commands.InitialPaymentSpec
	if req.Payment != nil {
		method, methodErr := payment.MethodFromString(req.Payment.Method)
		if methodErr != nil {
			return fail(ctx, methodErr)
		}
		initialPayment = &commands.InitialPaymentSpec{
			AmountMinor: req.Payment.AmountMinor,
			Method:      method,
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, items, req.Notes, req.PickupAt, initialPayment)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusCreated)
}

// ListOrders handles GET /api/v1/orders with page, limit, and status query
// parameters.
func (s *Server) ListOrders(ctx echo.Context) error {
	page, err := queryInt(ctx, "page")
	if err != nil {
		return fail(ctx, err)
	}
	limit, err := queryInt(ctx, "limit")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(page, limit, ctx.QueryParam("status"))
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	orders := make([]OrderSummaryResponse, 0, len(result.Orders))
	for _, summary := range result.Orders {
		orders = append(orders, OrderSummaryResponse{
			ID:         summary.ID.String(),
			Number:     summary.Number,
			CustomerID: summary.CustomerID.String(),
			Status:     summary.Status,
			TotalMinor: summary.TotalMinor,
			ItemCount:  summary.ItemCount,
		})
	}

	return ctx.JSON(http.StatusOK, OrderListResponse{
		Orders:     orders,
		Page:       result.Page,
		Limit:      result.Limit,
		TotalCount: result.TotalCount,
	})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return fail(ctx, err)
	}
	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// UpdateOrder handles PATCH /api/v1/orders/:id. Returns the enriched order
// after the update.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	var items []commands.LineItemSpec
	if req.Items != nil {
		if items, err = itemSpecs(req.Items); err != nil {
			return fail(ctx, err)
		}
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, req.Notes, req.PickupAt, items)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID, http.StatusOK)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	affected, err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeleteOrderResponse{Affected: affected})
}

// RecordPayment handles POST /api/v1/orders/:id/payments. Returns the
// payment receipt, 201.
func (s *Server) RecordPayment(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return fail(ctx, err)
	}

	var req PaymentRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	method, err := payment.MethodFromString(req.Method)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRecordPaymentCommand(
		orderID, req.AmountMinor, method, req.ReferenceNumber, req.Strict)
	if err != nil {
		return fail(ctx, err)
	}

	receipt, err := s.recordPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PaymentReceiptResponse{
		PaymentID:      receipt.PaymentID.String(),
		PaidMinor:      receipt.PaidAmount.MinorUnits(),
		RemainingMinor: receipt.RemainingAmount.MinorUnits(),
		ChangeDueMinor: receipt.ChangeDue.MinorUnits(),
		IsFullyPaid:    receipt.IsFullyPaid,
	})
}

func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID, status int) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(status, orderResponseFromQuery(resp))
}

func pathOrderID(ctx echo.Context) (kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return orderID, nil
}

func queryInt(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

// itemSpecs converts request items into command specs, translating
// kilogram weights into the domain's tenth-of-a-kilogram granularity.
func itemSpecs(reqItems []LineItemRequest) ([]commands.LineItemSpec, error) {
	specs := make([]commands.LineItemSpec, 0, len(reqItems))
	for i, item := range reqItems {
		model, err := order.PricingModelFromString(item.PricingModel)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"items["+strconv.Itoa(i)+"].pricingModel", err)
		}

		spec := commands.LineItemSpec{
			ServiceName:    item.ServiceName,
			UnitPriceMinor: item.UnitPriceMinor,
			Model:          model,
		}

		if item.ServiceID != nil {
			serviceID, idErr := kernel.UUIDFromString(*item.ServiceID)
			if idErr != nil {
				return nil, errs.NewValueIsInvalidErrorWithCause(
					"items["+strconv.Itoa(i)+"].serviceId", idErr)
			}
			spec.ServiceID = &serviceID
		}
		if item.WeightKg != nil {
			weight, weightErr := kernel.NewWeightFromKilograms(*item.WeightKg)
			if weightErr != nil {
				return nil, errs.NewValueIsInvalidErrorWithCause(
					"items["+strconv.Itoa(i)+"].weightKg", weightErr)
			}
			spec.WeightTenths = weight.Tenths()
		}
		if item.Quantity != nil {
			spec.Quantity = *item.Quantity
		}

		specs = append(specs, spec)
	}
	return specs, nil
}

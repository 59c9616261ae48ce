package queries_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetStalePending(ctx context.Context, cutoff time.Time) ([]*payment.Payment, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) DeleteByOrder(ctx context.Context, orderID kernel.UUID) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func mustMoney(t *testing.T, minorUnits int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(minorUnits)
	require.NoError(t, err)
	return m
}

func enrichableOrder(t *testing.T, id, customerID kernel.UUID) *order.Order {
	t.Helper()
	pricing, err := order.NewPerUnitPricing(2)
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), nil, "Suit dry cleaning", mustMoney(t, 15000), pricing)
	require.NoError(t, err)
	o, err := order.NewOrder(id, kernel.GenerateOrderNumber(time.Now()), customerID, []order.LineItem{item})
	require.NoError(t, err)
	return o
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	loaded := enrichableOrder(t, orderID, customerID)
	paid, err := payment.NewPayment(
		kernel.NewUUID(), orderID, customerID, mustMoney(t, 10000),
		payment.Card, payment.Completed, time.Now())
	require.NoError(t, err)
	knownCustomer, err := customer.NewCustomer(customerID, "Ada Wong", "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, orderID).Return(loaded, nil).Once()
	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("GetByOrder", mock.Anything, orderID).Return([]*payment.Payment{paid}, nil).Once()
	customerRepo := new(MockCustomerRepository)
	customerRepo.On("Get", mock.Anything, customerID).Return(knownCustomer, nil).Once()

	h := queries.NewGetOrderQueryHandler(orderRepo, paymentRepo, customerRepo, services.NewPaymentReconciler())
	query, err := queries.NewGetOrderQuery(orderID)
	require.NoError(t, err)

	resp, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, "Ada Wong", resp.CustomerName)
	assert.Equal(t, "new", resp.Status)
	assert.Equal(t, int64(30000), resp.TotalMinor)
	assert.Equal(t, int64(10000), resp.PaidMinor)
	assert.Equal(t, int64(20000), resp.RemainingMinor)
	assert.False(t, resp.IsFullyPaid)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "per_unit", resp.Items[0].PricingModel)
	require.NotNil(t, resp.Items[0].Quantity)
	assert.Equal(t, 2, *resp.Items[0].Quantity)
	require.Len(t, resp.Payments, 1)
	assert.False(t, resp.Payments[0].Placeholder)
}

func TestGetOrderQueryHandler_Handle_SynthesizesPlaceholder(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	loaded := enrichableOrder(t, orderID, customerID)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, orderID).Return(loaded, nil).Once()
	paymentRepo := new(MockPaymentRepository)
	paymentRepo.On("GetByOrder", mock.Anything, orderID).Return([]*payment.Payment{}, nil).Once()
	customerRepo := new(MockCustomerRepository)
	customerRepo.On("Get", mock.Anything, customerID).
		Return(nil, errs.NewObjectNotFoundError("customerId", customerID)).Once()

	h := queries.NewGetOrderQueryHandler(orderRepo, paymentRepo, customerRepo, services.NewPaymentReconciler())
	query, err := queries.NewGetOrderQuery(orderID)
	require.NoError(t, err)

	resp, err := h.Handle(ctx, query)
	require.NoError(t, err)

	// the deleted customer degrades to a fallback, never to a failed read
	assert.Equal(t, customer.UnknownDisplayName, resp.CustomerName)

	require.Len(t, resp.Payments, 1)
	synthesized := resp.Payments[0]
	assert.True(t, synthesized.Placeholder)
	assert.Equal(t, "pending", synthesized.Status)
	assert.Equal(t, resp.TotalMinor, synthesized.AmountMinor)
	assert.Contains(t, synthesized.ReferenceNumber, "placeholder-")

	assert.Zero(t, resp.PaidMinor)
	assert.Equal(t, resp.TotalMinor, resp.RemainingMinor)
	assert.False(t, resp.IsFullyPaid)
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", mock.Anything, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once()

	h := queries.NewGetOrderQueryHandler(
		orderRepo, new(MockPaymentRepository), new(MockCustomerRepository), services.NewPaymentReconciler())
	query, err := queries.NewGetOrderQuery(orderID)
	require.NoError(t, err)

	_, err = h.Handle(ctx, query)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

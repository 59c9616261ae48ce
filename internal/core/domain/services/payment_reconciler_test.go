package services_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/payment"
	"laundry/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, minorUnits int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(minorUnits)
	require.NoError(t, err)
	return m
}

func paymentWith(t *testing.T, amount int64, status payment.Status) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		money(t, amount), payment.Cash, status, time.Now(),
	)
	require.NoError(t, err)
	return p
}

func TestPaymentReconciler_Reconcile(t *testing.T) {
	reconciler := services.NewPaymentReconciler()

	t.Run("single completed payment covering the total", func(t *testing.T) {
		result, err := reconciler.Reconcile(money(t, 50_000),
			[]*payment.Payment{paymentWith(t, 50_000, payment.Completed)})

		require.NoError(t, err)
		assert.Equal(t, int64(50_000), result.PaidAmount.MinorUnits())
		assert.True(t, result.RemainingAmount.IsZero())
		assert.True(t, result.IsFullyPaid)
		assert.False(t, result.NeedsPlaceholder)
	})

	t.Run("partial payment leaves a remaining balance", func(t *testing.T) {
		result, err := reconciler.Reconcile(money(t, 50_000),
			[]*payment.Payment{paymentWith(t, 20_000, payment.Completed)})

		require.NoError(t, err)
		assert.Equal(t, int64(20_000), result.PaidAmount.MinorUnits())
		assert.Equal(t, int64(30_000), result.RemainingAmount.MinorUnits())
		assert.False(t, result.IsFullyPaid)
	})

	t.Run("multiple completed payments accumulate", func(t *testing.T) {
		result, err := reconciler.Reconcile(money(t, 50_000), []*payment.Payment{
			paymentWith(t, 20_000, payment.Completed),
			paymentWith(t, 30_000, payment.Completed),
		})

		require.NoError(t, err)
		assert.True(t, result.IsFullyPaid)
	})

	t.Run("only completed payments count", func(t *testing.T) {
		result, err := reconciler.Reconcile(money(t, 50_000), []*payment.Payment{
			paymentWith(t, 10_000, payment.Completed),
			paymentWith(t, 10_000, payment.Pending),
			paymentWith(t, 10_000, payment.Failed),
			paymentWith(t, 10_000, payment.Refunded),
			paymentWith(t, 10_000, payment.Cancelled),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(10_000), result.PaidAmount.MinorUnits())
		assert.Equal(t, int64(40_000), result.RemainingAmount.MinorUnits())
	})

	t.Run("overpayment floors the remaining balance at zero", func(t *testing.T) {
		result, err := reconciler.Reconcile(money(t, 45_000),
			[]*payment.Payment{paymentWith(t, 50_000, payment.Completed)})

		require.NoError(t, err)
		assert.Equal(t, int64(50_000), result.PaidAmount.MinorUnits())
		assert.True(t, result.RemainingAmount.IsZero())
		assert.True(t, result.IsFullyPaid)
	})

	t.Run("zero payment records request a placeholder", func(t *testing.T) {
		result, err := reconciler.Reconcile(money(t, 45_000), nil)

		require.NoError(t, err)
		assert.True(t, result.NeedsPlaceholder)
		assert.Equal(t, int64(45_000), result.RemainingAmount.MinorUnits())
		assert.False(t, result.IsFullyPaid)
	})

	t.Run("placeholders neither count nor satisfy record presence", func(t *testing.T) {
		placeholder, err := payment.Placeholder(
			kernel.NewUUID(), kernel.NewUUID(), money(t, 45_000), time.Now())
		require.NoError(t, err)

		result, err := reconciler.Reconcile(money(t, 45_000),
			[]*payment.Payment{placeholder})

		require.NoError(t, err)
		assert.True(t, result.NeedsPlaceholder)
		assert.True(t, result.PaidAmount.IsZero())
	})

	t.Run("zero-value payment records are rejected", func(t *testing.T) {
		var p payment.Payment

		_, err := reconciler.Reconcile(money(t, 45_000), []*payment.Payment{&p})

		require.Error(t, err)
	})
}

func TestPaymentReconciler_ReconcileStrict(t *testing.T) {
	reconciler := services.NewPaymentReconciler()

	t.Run("passes when paid does not exceed the total", func(t *testing.T) {
		result, err := reconciler.ReconcileStrict(money(t, 50_000),
			[]*payment.Payment{paymentWith(t, 50_000, payment.Completed)})

		require.NoError(t, err)
		assert.True(t, result.IsFullyPaid)
	})

	t.Run("fails with ErrOverpayment when paid exceeds the total", func(t *testing.T) {
		_, err := reconciler.ReconcileStrict(money(t, 45_000),
			[]*payment.Payment{paymentWith(t, 50_000, payment.Completed)})

		require.ErrorIs(t, err, services.ErrOverpayment)
	})
}

func TestPaymentReconciler_ChangeFor(t *testing.T) {
	reconciler := services.NewPaymentReconciler()

	t.Run("tendering 50,000 against 45,000 remaining yields 5,000 change", func(t *testing.T) {
		change := reconciler.ChangeFor(money(t, 50_000), money(t, 45_000))

		assert.Equal(t, int64(5_000), change.MinorUnits())
	})

	t.Run("exact tender yields no change", func(t *testing.T) {
		change := reconciler.ChangeFor(money(t, 45_000), money(t, 45_000))

		assert.True(t, change.IsZero())
	})

	t.Run("partial tender yields no change", func(t *testing.T) {
		change := reconciler.ChangeFor(money(t, 20_000), money(t, 45_000))

		assert.True(t, change.IsZero())
	})
}

package kernel_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeightFromTenths(t *testing.T) {
	t.Run("should accept positive tenths", func(t *testing.T) {
		w, err := kernel.NewWeightFromTenths(25)

		require.NoError(t, err)
		assert.Equal(t, int64(25), w.Tenths())
		assert.Equal(t, "2.5", w.String())
	})

	t.Run("should reject zero", func(t *testing.T) {
		_, err := kernel.NewWeightFromTenths(0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject negative", func(t *testing.T) {
		_, err := kernel.NewWeightFromTenths(-10)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewWeightFromKilograms(t *testing.T) {
	t.Run("should accept values on the tenth grid", func(t *testing.T) {
		w, err := kernel.NewWeightFromKilograms(2.5)

		require.NoError(t, err)
		assert.Equal(t, int64(25), w.Tenths())
	})

	t.Run("should accept whole kilograms", func(t *testing.T) {
		w, err := kernel.NewWeightFromKilograms(3)

		require.NoError(t, err)
		assert.Equal(t, int64(30), w.Tenths())
	})

	t.Run("should reject finer than tenth granularity", func(t *testing.T) {
		_, err := kernel.NewWeightFromKilograms(2.55)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0.1")
	})

	t.Run("should reject zero weight", func(t *testing.T) {
		_, err := kernel.NewWeightFromKilograms(0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestWeight_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var w kernel.Weight

		require.Error(t, w.Validate())
	})

	t.Run("constructed weight is valid", func(t *testing.T) {
		w, _ := kernel.NewWeightFromTenths(1)

		require.NoError(t, w.Validate())
	})
}

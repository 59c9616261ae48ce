package kernel_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNumber(t *testing.T) {
	at := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("should embed the date and a 5-digit suffix", func(t *testing.T) {
		n := kernel.GenerateOrderNumber(at)

		require.NoError(t, n.Validate())
		assert.Regexp(t, `^ORD-20260115-\d{5}$`, n.String())
	})

	t.Run("generated numbers round-trip through parsing", func(t *testing.T) {
		n := kernel.GenerateOrderNumber(at)

		parsed, err := kernel.OrderNumberFromString(n.String())

		require.NoError(t, err)
		assert.True(t, n.IsEqual(parsed))
	})
}

func TestOrderNumberFromString(t *testing.T) {
	t.Run("should accept the canonical form", func(t *testing.T) {
		n, err := kernel.OrderNumberFromString("ORD-20260115-00042")

		require.NoError(t, err)
		assert.Equal(t, "ORD-20260115-00042", n.String())
	})

	invalid := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"missing prefix", "20260115-00042"},
		{"wrong prefix", "INV-20260115-00042"},
		{"short suffix", "ORD-20260115-0042"},
		{"long suffix", "ORD-20260115-000042"},
		{"short date", "ORD-2026015-00042"},
		{"letters in suffix", "ORD-20260115-0004X"},
	}
	for _, tc := range invalid {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			_, err := kernel.OrderNumberFromString(tc.value)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestOrderNumber_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var n kernel.OrderNumber

		err := n.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrOrderNumberIsNotConstructed, err)
	})
}

func TestUUID(t *testing.T) {
	t.Run("new UUID is valid and unique", func(t *testing.T) {
		a := kernel.NewUUID()
		b := kernel.NewUUID()

		require.NoError(t, a.Validate())
		assert.False(t, a.IsEqual(b))
	})

	t.Run("round-trips through string", func(t *testing.T) {
		a := kernel.NewUUID()

		parsed, err := kernel.UUIDFromString(a.String())

		require.NoError(t, err)
		assert.True(t, a.IsEqual(parsed))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var u kernel.UUID

		require.Error(t, u.Validate())
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
	})
}

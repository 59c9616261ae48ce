package order_test

import (
	"errors"
	"testing"

	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pipeline = []order.Status{
	order.New,
	order.Processing,
	order.Washing,
	order.Drying,
	order.Folding,
	order.Ready,
	order.Delivered,
}

func TestStatus_TransitionTo_Pipeline(t *testing.T) {
	t.Run("every single-step transition succeeds", func(t *testing.T) {
		for i := 0; i < len(pipeline)-1; i++ {
			from, to := pipeline[i], pipeline[i+1]

			got, err := from.TransitionTo(to)

			require.NoError(t, err, "%s -> %s", from, to)
			assert.Equal(t, to, got)
		}
	})

	t.Run("skipping a step fails", func(t *testing.T) {
		for i := 0; i < len(pipeline); i++ {
			for j := i + 2; j < len(pipeline); j++ {
				from, to := pipeline[i], pipeline[j]

				_, err := from.TransitionTo(to)

				require.ErrorIs(t, err, order.ErrInvalidTransition, "%s -> %s", from, to)
			}
		}
	})

	t.Run("reversing fails", func(t *testing.T) {
		for i := 1; i < len(pipeline); i++ {
			from, to := pipeline[i], pipeline[i-1]

			_, err := from.TransitionTo(to)

			require.ErrorIs(t, err, order.ErrInvalidTransition, "%s -> %s", from, to)
		}
	})

	t.Run("error names current and requested states", func(t *testing.T) {
		_, err := order.New.TransitionTo(order.Washing)

		require.Error(t, err)
		var transitionErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.New, transitionErr.From)
		assert.Equal(t, order.Washing, transitionErr.To)
		assert.Contains(t, err.Error(), "new")
		assert.Contains(t, err.Error(), "washing")
	})
}

func TestStatus_TransitionTo_Cancellation(t *testing.T) {
	t.Run("cancellation succeeds from any non-terminal state", func(t *testing.T) {
		for _, from := range pipeline[:len(pipeline)-1] {
			got, err := from.TransitionTo(order.Cancelled)

			require.NoError(t, err, "%s -> cancelled", from)
			assert.Equal(t, order.Cancelled, got)
		}
	})

	t.Run("cancellation fails from delivered", func(t *testing.T) {
		_, err := order.Delivered.TransitionTo(order.Cancelled)

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("nothing leaves a terminal state", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
			for _, to := range append(pipeline, order.Cancelled) {
				if to == terminal {
					continue
				}

				_, err := terminal.TransitionTo(to)

				require.ErrorIs(t, err, order.ErrInvalidTransition, "%s -> %s", terminal, to)
			}
		}
	})
}

func TestStatus_CanTransition(t *testing.T) {
	assert.True(t, order.New.CanTransition(order.Processing))
	assert.True(t, order.Ready.CanTransition(order.Delivered))
	assert.True(t, order.Washing.CanTransition(order.Cancelled))
	assert.False(t, order.New.CanTransition(order.Washing))
	assert.False(t, order.Delivered.CanTransition(order.Cancelled))
	assert.False(t, order.Cancelled.CanTransition(order.New))
	assert.False(t, order.Unknown.CanTransition(order.New))
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	for _, s := range pipeline[:len(pipeline)-1] {
		assert.False(t, s.IsTerminal(), s.String())
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses every valid status", func(t *testing.T) {
		for _, s := range append(pipeline, order.Cancelled) {
			parsed, err := order.StatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("ironing")

		require.Error(t, err)
	})

	t.Run("rejects the unknown status name", func(t *testing.T) {
		_, err := order.StatusFromString("unknown")

		require.Error(t, err)
	})
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.New.Validate())
	require.NoError(t, order.Cancelled.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(99).Validate())
}

func TestStatus_String_UnknownValues(t *testing.T) {
	assert.Equal(t, "unknown", order.Unknown.String())
	assert.Equal(t, "unknown", order.Status(99).String())
	assert.False(t, errors.Is(order.Unknown.Validate(), order.ErrInvalidTransition))
}

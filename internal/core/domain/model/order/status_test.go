package order_test

import (
	"fmt"
	"testing"

	"lastmile/internal/core/domain/model/order"
	"lastmile/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all defined statuses including reserved ones", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Created,
			order.PickedUp,
			order.InRoute,
			order.Delivered,
			order.CancelledByDelivery,
			order.CancellationInProgress,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(status.String(), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(100)} {
			t.Run(fmt.Sprintf("value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "CREATED", order.Created.String())
	assert.Equal(t, "PICKED_UP", order.PickedUp.String())
	assert.Equal(t, "IN_ROUTE", order.InRoute.String())
	assert.Equal(t, "DELIVERED", order.Delivered.String())
	assert.Equal(t, "CANCELLED_BY_DELIVERY", order.CancelledByDelivery.String())
	assert.Equal(t, "CANCELLATION_IN_PROGRESS", order.CancellationInProgress.String())
	assert.Equal(t, "CANCELLED", order.Cancelled.String())
	assert.Equal(t, "UNKNOWN", order.Unknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round-trips every valid status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Created, order.PickedUp, order.InRoute, order.Delivered,
			order.CancelledByDelivery, order.CancellationInProgress, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("SHIPPED")
		require.Error(t, err)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("allowed from Created and PickedUp", func(t *testing.T) {
		for _, status := range []order.Status{order.Created, order.PickedUp} {
			newStatus, err := status.Cancel()

			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, newStatus)
		}
	})

	t.Run("rejected from every other status", func(t *testing.T) {
		blocked := []order.Status{
			order.InRoute,
			order.Delivered,
			order.Cancelled,
			order.CancelledByDelivery,
			order.CancellationInProgress,
			order.Unknown,
		}

		for _, status := range blocked {
			t.Run(status.String(), func(t *testing.T) {
				_, err := status.Cancel()

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrInvalidState)
				assert.Contains(t, err.Error(), status.String())
			})
		}
	})
}

func TestStatus_ForwardTransitions(t *testing.T) {
	t.Run("happy path walks the full lifecycle", func(t *testing.T) {
		s := order.Created

		s, err := s.PickUp()
		require.NoError(t, err)
		assert.Equal(t, order.PickedUp, s)

		s, err = s.StartRoute()
		require.NoError(t, err)
		assert.Equal(t, order.InRoute, s)

		s, err = s.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, s)
		assert.True(t, s.IsTerminal())
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		_, err := order.Created.StartRoute()
		require.ErrorIs(t, err, errs.ErrInvalidState)

		_, err = order.Created.Deliver()
		require.ErrorIs(t, err, errs.ErrInvalidState)

		_, err = order.PickedUp.Deliver()
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("terminal states admit no forward transition", func(t *testing.T) {
		for _, status := range []order.Status{order.Delivered, order.Cancelled} {
			_, err := status.PickUp()
			require.Error(t, err)
			_, err = status.StartRoute()
			require.Error(t, err)
			_, err = status.Deliver()
			require.Error(t, err)
		}
	})
}

func TestStatus_ValidateCanPatch(t *testing.T) {
	require.NoError(t, order.Created.ValidateCanPatch())

	for _, status := range []order.Status{
		order.PickedUp, order.InRoute, order.Delivered, order.Cancelled,
	} {
		err := status.ValidateCanPatch()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), status.String())
	}
}

func TestStatus_ValidateCanAssign(t *testing.T) {
	t.Run("only Cancelled blocks assignment", func(t *testing.T) {
		err := order.Cancelled.ValidateCanAssign()
		require.ErrorIs(t, err, errs.ErrInvalidState)

		for _, status := range []order.Status{
			order.Created, order.PickedUp, order.InRoute, order.Delivered,
		} {
			require.NoError(t, status.ValidateCanAssign())
		}
	})
}

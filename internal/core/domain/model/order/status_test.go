package order_test

import (
	"fmt"
	"testing"

	"mealdash/internal/core/domain/model/order"
	"mealdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Delivering))
		assert.Equal(t, 3, int(order.Delivered))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Delivering,
			order.Delivered,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(4),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Unknown, "Unknown"},
		{order.Pending, "Pending"},
		{order.Delivering, "Delivering"},
		{order.Delivered, "Delivered"},
		{order.Status(42), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("status %d is %s", int(tc.status), tc.expected), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Claim(t *testing.T) {
	t.Run("should claim from Pending", func(t *testing.T) {
		newStatus, err := order.Pending.Claim()

		require.NoError(t, err)
		assert.Equal(t, order.Delivering, newStatus)
	})

	t.Run("should reject claim from any other status", func(t *testing.T) {
		nonClaimable := []order.Status{
			order.Unknown,
			order.Delivering,
			order.Delivered,
		}

		for _, status := range nonClaimable {
			t.Run(fmt.Sprintf("from %s", status.String()), func(t *testing.T) {
				_, err := status.Claim()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "not a valid status to claim")
			})
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("should complete from Delivering", func(t *testing.T) {
		newStatus, err := order.Delivering.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("should reject completion from any other status", func(t *testing.T) {
		nonCompletable := []order.Status{
			order.Unknown,
			order.Pending,
			order.Delivered,
		}

		for _, status := range nonCompletable {
			t.Run(fmt.Sprintf("from %s", status.String()), func(t *testing.T) {
				_, err := status.Complete()

				require.Error(t, err)
				assert.Contains(t, err.Error(), "not a valid status to complete")
			})
		}
	})
}

func TestStatus_ValidateCanHaveDriver(t *testing.T) {
	testCases := []struct {
		status    order.Status
		hasDriver bool
		valid     bool
	}{
		{order.Pending, false, true},
		{order.Pending, true, false},
		{order.Delivering, true, true},
		{order.Delivering, false, false},
		{order.Delivered, true, true},
		{order.Delivered, false, false},
	}

	for _, tc := range testCases {
		name := fmt.Sprintf("%s with driver=%t valid=%t", tc.status.String(), tc.hasDriver, tc.valid)
		t.Run(name, func(t *testing.T) {
			err := tc.status.ValidateCanHaveDriver(tc.hasDriver)

			if tc.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

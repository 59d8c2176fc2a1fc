package status_test

import (
	"testing"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildRegistry(t *testing.T, names ...status.Name) *status.Registry {
	t.Helper()
	statuses := make([]status.Status, 0, len(names))
	for i, n := range names {
		s, err := status.NewStatus(kernel.NewUUID(), n, i)
		require.NoError(t, err)
		statuses = append(statuses, s)
	}
	r, err := status.NewRegistry(statuses)
	require.NoError(t, err)
	return r
}

func TestRegistry_Lookup(t *testing.T) {
	r := buildRegistry(t, status.CanonicalNames()...)

	t.Run("should find exact name", func(t *testing.T) {
		s, err := r.Lookup(status.Delivered)

		require.NoError(t, err)
		assert.Equal(t, status.Delivered, s.Name())
	})

	t.Run("should be case sensitive", func(t *testing.T) {
		_, err := r.Lookup("delivered")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.False(t, r.Exists("delivered"))
	})
}

func TestRegistry_Initial(t *testing.T) {
	t.Run("should prefer PENDING_APPROVAL", func(t *testing.T) {
		r := buildRegistry(t, status.Pending, status.PendingApproval)

		s, err := r.Initial()

		require.NoError(t, err)
		assert.Equal(t, status.PendingApproval, s.Name())
	})

	t.Run("should fall back to PENDING", func(t *testing.T) {
		r := buildRegistry(t, status.Pending, status.Delivered)

		s, err := r.Initial()

		require.NoError(t, err)
		assert.Equal(t, status.Pending, s.Name())
	})

	t.Run("should fail when neither exists", func(t *testing.T) {
		r := buildRegistry(t, status.Delivered)

		_, err := r.Initial()

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestNewRegistry_RejectsDuplicates(t *testing.T) {
	a, err := status.NewStatus(kernel.NewUUID(), status.Delivered, 0)
	require.NoError(t, err)
	b, err := status.NewStatus(kernel.NewUUID(), status.Delivered, 1)
	require.NoError(t, err)

	_, err = status.NewRegistry([]status.Status{a, b})

	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestRegistry_RequireWorkflow(t *testing.T) {
	t.Run("canonical vocabulary satisfies workflow", func(t *testing.T) {
		r := buildRegistry(t, status.CanonicalNames()...)

		require.NoError(t, r.RequireWorkflow())
	})

	t.Run("should report every missing name", func(t *testing.T) {
		r := buildRegistry(t, status.Pending, status.Delivered)

		err := r.RequireWorkflow()

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Contains(t, err.Error(), string(status.ReceivedAtHub))
		assert.Contains(t, err.Error(), string(status.ReturnedToOrigin))
		assert.NotContains(t, err.Error(), string(status.PendingApproval))
	})
}

func TestIsRequiredByWorkflow(t *testing.T) {
	assert.True(t, status.IsRequiredByWorkflow(status.Delivered))
	assert.True(t, status.IsRequiredByWorkflow(status.PendingApproval))
	assert.False(t, status.IsRequiredByWorkflow(status.OnHold))
	assert.False(t, status.IsRequiredByWorkflow("AT_LOCKER"))
}

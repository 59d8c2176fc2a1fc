package status_test

import (
	"testing"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/status"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalNames(t *testing.T) {
	names := status.CanonicalNames()

	require.Len(t, names, 21)
	assert.Equal(t, status.Pending, names[0])
	assert.Equal(t, status.PendingApproval, names[1])
	assert.Equal(t, status.Rescheduled, names[20])

	seen := map[status.Name]bool{}
	for _, n := range names {
		assert.False(t, seen[n], "duplicate %s", n)
		seen[n] = true
	}
}

func TestName_IsTerminal(t *testing.T) {
	tests := []struct {
		name     status.Name
		terminal bool
	}{
		{status.Delivered, true},
		{status.Cancelled, true},
		{status.ReturnedToOrigin, true},
		{status.OutForDelivery, false},
		{status.ReturnedToHub, false},
		{status.PendingApproval, false},
	}
	for _, tt := range tests {
		t.Run(tt.name.String(), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.name.IsTerminal())
		})
	}
}

func TestNewStatus(t *testing.T) {
	t.Run("should create status", func(t *testing.T) {
		id := kernel.NewUUID()

		s, err := status.NewStatus(id, status.InTransit, 7)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, status.InTransit, s.Name())
		assert.Equal(t, 7, s.Position())
		assert.True(t, s.Is(status.InTransit))
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := status.NewStatus(kernel.NewUUID(), "", 0)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject padded name", func(t *testing.T) {
		_, err := status.NewStatus(kernel.NewUUID(), " DELIVERED", 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := status.NewStatus(kernel.UUID{}, status.Delivered, 0)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var s status.Status

		require.ErrorIs(t, s.Validate(), status.ErrStatusIsNotConstructed)
	})
}

func TestStatus_Renamed(t *testing.T) {
	s, err := status.NewStatus(kernel.NewUUID(), "AT_LOCKER", 3)
	require.NoError(t, err)

	renamed, err := s.Renamed("IN_LOCKER")

	require.NoError(t, err)
	assert.Equal(t, status.Name("IN_LOCKER"), renamed.Name())
	assert.True(t, renamed.ID().IsEqual(s.ID()))
	assert.Equal(t, status.Name("AT_LOCKER"), s.Name())
}

package guard_test

import (
	"errors"
	"testing"

	"courierhub/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotBuilt := errors.New("command must be created via its constructor")

	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotBuilt))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, errNotBuilt, g.Validate(errNotBuilt))
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type receiveCommand struct {
		trackingNumbers []string
		guard           guard.ConstructorGuard
	}
	errNotBuilt := errors.New("receiveCommand must be created via newReceiveCommand")

	newReceiveCommand := func(numbers ...string) receiveCommand {
		return receiveCommand{trackingNumbers: numbers, guard: guard.NewConstructorGuard()}
	}

	built := newReceiveCommand("CS-1", "CS-2")
	require.NoError(t, built.guard.Validate(errNotBuilt))
	assert.Len(t, built.trackingNumbers, 2)

	literal := receiveCommand{trackingNumbers: []string{"CS-1"}}
	require.ErrorIs(t, literal.guard.Validate(errNotBuilt), errNotBuilt)
}

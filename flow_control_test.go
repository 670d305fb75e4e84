package mqttsn

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlowControllerDisabled(t *testing.T) {
	f := NewFlowController(0, 0)

	assert.True(t, f.Allow())
	assert.NoError(t, f.Wait(context.Background()))
	assert.Equal(t, float64(0), f.Limit())

	// Throttle on a disabled controller is a no-op.
	f.Throttle()
	assert.Equal(t, float64(0), f.Limit())
}

func TestFlowControllerBurst(t *testing.T) {
	f := NewFlowController(10, 2)

	assert.True(t, f.Allow())
	assert.True(t, f.Allow())
	assert.False(t, f.Allow())
}

func TestFlowControllerThrottle(t *testing.T) {
	f := NewFlowController(8, 1)
	assert.Equal(t, float64(8), f.Limit())

	f.Throttle()
	assert.Equal(t, float64(4), f.Limit())

	// The rate floors at one publish per second.
	for i := 0; i < 10; i++ {
		f.Throttle()
	}
	assert.Equal(t, float64(1), f.Limit())
}

func TestFlowControllerWaitCancelled(t *testing.T) {
	f := NewFlowController(1, 1)
	require.True(t, f.Allow())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, f.Wait(ctx))
}

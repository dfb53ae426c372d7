package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextNilSafe(t *testing.T) {
	var c *Context
	assert.False(t, c.Cancelled())
	c.Progress(0.5) // must not panic
}

func TestContextNoHooks(t *testing.T) {
	c := NewContext(nil, nil, nil)
	assert.False(t, c.Cancelled())
	c.Progress(0.5)
	c.Progress(1)
}

func TestContextCancelHook(t *testing.T) {
	stop := false
	c := NewContext(nil, nil, func() bool { return stop })

	assert.False(t, c.Cancelled())
	stop = true
	assert.True(t, c.Cancelled())

	err := c.Err("kernel matrix")
	require.ErrorIs(t, err, ErrCancelled)
	assert.Contains(t, err.Error(), "kernel matrix")
}

func TestContextAmbientCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := NewContext(ctx, nil, nil)

	assert.False(t, c.Cancelled())
	cancel()
	assert.True(t, c.Cancelled())
}

func TestContextProgressMonotone(t *testing.T) {
	var got []float64
	c := NewContext(nil, func(f float64) { got = append(got, f) }, nil)

	c.Progress(0.4)
	c.Progress(0.2) // regression clamps to the last delivered value
	c.Progress(1.5) // out of range clamps to 1

	require.NotEmpty(t, got)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i], got[i-1])
	}
	assert.Equal(t, 1.0, got[len(got)-1])
}

func TestContextProgressTerminalAlwaysDelivered(t *testing.T) {
	var got []float64
	c := NewContext(nil, func(f float64) { got = append(got, f) }, nil)

	// Flood with intermediate reports; the limiter drops most of them but
	// the terminal report must still arrive.
	for i := 0; i < 1000; i++ {
		c.Progress(float64(i) / 1000)
	}
	c.Progress(1)

	require.NotEmpty(t, got)
	assert.Equal(t, 1.0, got[len(got)-1])
	assert.Less(t, len(got), 1000)
}

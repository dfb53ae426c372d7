package resource

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerNil(t *testing.T) {
	var c *Controller
	require.NoError(t, c.Reserve(1<<30))
	c.Release(1 << 30)
	assert.Equal(t, int64(0), c.MemoryUsage())
	assert.Equal(t, runtime.GOMAXPROCS(0), c.Workers())
}

func TestControllerBudget(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	require.NoError(t, c.Reserve(60))
	assert.Equal(t, int64(60), c.MemoryUsage())

	err := c.Reserve(50)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotEnoughMemory)
	assert.Equal(t, int64(60), c.MemoryUsage())

	require.NoError(t, c.Reserve(40))
	assert.Equal(t, int64(100), c.MemoryUsage())

	c.Release(100)
	assert.Equal(t, int64(0), c.MemoryUsage())
	require.NoError(t, c.Reserve(100))
	c.Release(100)
}

func TestControllerUnlimited(t *testing.T) {
	c := NewController(Config{})
	require.NoError(t, c.Reserve(1 << 40))
	assert.Equal(t, int64(1<<40), c.MemoryUsage())
	c.Release(1 << 40)
	assert.Equal(t, int64(0), c.MemoryUsage())
}

func TestControllerWorkers(t *testing.T) {
	assert.Equal(t, 3, NewController(Config{MaxWorkers: 3}).Workers())
	assert.Equal(t, runtime.GOMAXPROCS(0), NewController(Config{}).Workers())
}

func TestControllerZeroReserve(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 10})
	require.NoError(t, c.Reserve(0))
	require.NoError(t, c.Reserve(-5))
	assert.Equal(t, int64(0), c.MemoryUsage())
}

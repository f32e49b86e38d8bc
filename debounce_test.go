package tonemix

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testQuiet = 25 * time.Millisecond

// collector gathers debounced writes.
type collector struct {
	mu     sync.Mutex
	values []string
}

func (c *collector) add(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values = append(c.values, s)
}

func (c *collector) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.values...)
}

func TestDebouncerLastWriteWins(t *testing.T) {
	var c collector
	b := NewDebouncer(testQuiet, c.add)
	defer b.Close()

	b.Set("a")
	b.Set("b")
	b.Set("c")

	require.Eventually(t, func() bool {
		return len(c.snapshot()) == 1
	}, 20*testQuiet, time.Millisecond, "burst should coalesce into one write")

	assert.Equal(t, []string{"c"}, c.snapshot())

	// Once quiet, a new value starts a fresh window.
	b.Set("d")
	require.Eventually(t, func() bool {
		return len(c.snapshot()) == 2
	}, 20*testQuiet, time.Millisecond)
	assert.Equal(t, []string{"c", "d"}, c.snapshot())
}

func TestDebouncerFlush(t *testing.T) {
	var c collector
	b := NewDebouncer(time.Hour, c.add)
	defer b.Close()

	b.Set("now")
	b.Flush()
	assert.Equal(t, []string{"now"}, c.snapshot())

	// Flush with nothing pending is a no-op.
	b.Flush()
	assert.Equal(t, []string{"now"}, c.snapshot())
}

func TestDebouncerClose(t *testing.T) {
	var c collector
	b := NewDebouncer(testQuiet, c.add)

	b.Set("pending")
	b.Close()

	time.Sleep(4 * testQuiet)
	assert.Empty(t, c.snapshot(), "no delivery after Close")

	// Set after Close is ignored.
	b.Set("late")
	time.Sleep(4 * testQuiet)
	assert.Empty(t, c.snapshot())
}

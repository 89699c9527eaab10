package carousel

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingScroller struct {
	mu        sync.Mutex
	failIndex bool
	indexes   []int
	offsets   []float64
}

func (r *recordingScroller) ScrollToIndex(i int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failIndex {
		return errors.New("layout not measured")
	}
	r.indexes = append(r.indexes, i)
	return nil
}

func (r *recordingScroller) ScrollToOffset(o float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offsets = append(r.offsets, o)
	return nil
}

func TestTicksWrapAround(t *testing.T) {
	sc := &recordingScroller{}
	c := New(3, WithScroller(sc))

	var seen []int
	for range 3 {
		require.True(t, c.Tick())
		seen = append(seen, c.Index())
	}
	assert.Equal(t, []int{1, 2, 0}, seen)
	assert.Equal(t, []int{1, 2, 0}, sc.indexes)
}

func TestDragSuspendsUntilSettled(t *testing.T) {
	c := New(3)
	c.BeginDrag()
	assert.False(t, c.Tick())
	assert.Equal(t, Dragging, c.Phase())

	c.EndDrag()
	assert.Equal(t, Settling, c.Phase())
	assert.False(t, c.Tick(), "momentum scroll still running")

	idx := c.Settle(2*DefaultSnapInterval + 40)
	assert.Equal(t, 2, idx)
	assert.Equal(t, Autoplay, c.Phase())

	require.True(t, c.Tick())
	assert.Equal(t, 0, c.Index())
}

func TestUnsettledDragResumesAfterOneTick(t *testing.T) {
	c := New(3)
	c.BeginDrag()
	c.EndDrag()

	assert.False(t, c.Tick(), "the first tick waits for the gesture to settle")
	assert.Equal(t, Autoplay, c.Phase())
	require.True(t, c.Tick())
	assert.Equal(t, 1, c.Index())
}

func TestSettleClampsOffset(t *testing.T) {
	c := New(3, WithSnapInterval(100))
	assert.Equal(t, 2, c.Settle(980))
	assert.Equal(t, 0, c.Settle(-50))
	assert.Equal(t, 1, c.Settle(149))
}

func TestScrollFallsBackToOffset(t *testing.T) {
	sc := &recordingScroller{failIndex: true}
	c := New(4, WithScroller(sc), WithSnapInterval(100))
	c.Tick()
	c.Tick()
	assert.Equal(t, []float64{100, 200}, sc.offsets)
}

func TestNoSlidesNeverTicks(t *testing.T) {
	c := New(0)
	assert.False(t, c.Tick())
	assert.Equal(t, 0, c.Settle(500))

	c.SetCount(2)
	assert.True(t, c.Tick())
	assert.Equal(t, 1, c.Index())
	c.SetCount(1)
	assert.Equal(t, 0, c.Index())
}

func TestRunAdvancesOnTimer(t *testing.T) {
	c := New(3, WithInterval(5*time.Millisecond))
	moved := make(chan int, 8)
	c.Subscribe(func(i int) {
		select {
		case moved <- i:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- c.Run(ctx) }()

	select {
	case i := <-moved:
		assert.Equal(t, 1, i)
	case <-time.After(time.Second):
		t.Fatal("carousel did not advance")
	}
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

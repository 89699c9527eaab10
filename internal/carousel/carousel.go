// Package carousel drives the home screen banner slider: it advances on a
// timer, yields to the user while they drag, and resynchronizes its index
// from the scroll offset once the gesture settles.
package carousel

import (
	"context"
	"io"
	"log"
	"math"
	"sync"
	"time"

	"github.com/Rajvenkat512/fruits-webapp/internal/store"
)

const (
	DefaultInterval = 4000 * time.Millisecond
	// DefaultSnapInterval is one slide width plus the gap between slides.
	DefaultSnapInterval = 358.0
)

type Phase int

const (
	Autoplay Phase = iota
	Dragging
	Settling
)

func (p Phase) String() string {
	switch p {
	case Dragging:
		return "dragging"
	case Settling:
		return "settling"
	default:
		return "autoplay"
	}
}

// Scroller moves the rendered slider.
type Scroller interface {
	ScrollToIndex(index int) error
	ScrollToOffset(offset float64) error
}

type Option func(*Carousel)

func WithInterval(d time.Duration) Option {
	return func(c *Carousel) {
		if d > 0 {
			c.interval = d
		}
	}
}

func WithSnapInterval(px float64) Option {
	return func(c *Carousel) {
		if px > 0 {
			c.snap = px
		}
	}
}

func WithScroller(s Scroller) Option {
	return func(c *Carousel) { c.scroller = s }
}

func WithLogger(l *log.Logger) Option {
	return func(c *Carousel) {
		if l != nil {
			c.logger = l
		}
	}
}

type Carousel struct {
	interval time.Duration
	snap     float64
	scroller Scroller
	logger   *log.Logger

	mu    sync.Mutex
	count int
	index int
	phase Phase

	notifier store.Notifier[int]
}

// New returns a carousel over count slides, starting at slide 0 in Autoplay.
func New(count int, opts ...Option) *Carousel {
	c := &Carousel{
		interval: DefaultInterval,
		snap:     DefaultSnapInterval,
		logger:   log.New(io.Discard, "", 0),
		count:    max(count, 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Carousel) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// SetCount replaces the number of slides, as when the banner list reloads.
// The index is clamped into the new range.
func (c *Carousel) SetCount(n int) {
	c.mu.Lock()
	c.count = max(n, 0)
	if c.index >= c.count {
		c.index = 0
	}
	idx := c.index
	c.mu.Unlock()
	c.notifier.Publish(idx)
}

// Tick advances one slide, wrapping from the last to the first. It does
// nothing outside Autoplay or without slides, and reports whether it moved.
// A tick that finds the carousel still Settling resumes autoplay without
// moving, so a drag that never settles stalls it for one interval at most.
func (c *Carousel) Tick() bool {
	c.mu.Lock()
	if c.phase == Settling {
		c.phase = Autoplay
		c.mu.Unlock()
		return false
	}
	if c.phase != Autoplay || c.count == 0 {
		c.mu.Unlock()
		return false
	}
	c.index = (c.index + 1) % c.count
	idx := c.index
	c.mu.Unlock()

	c.scrollTo(idx)
	c.notifier.Publish(idx)
	return true
}

// BeginDrag suspends autoplay while the user holds the slider.
func (c *Carousel) BeginDrag() {
	c.mu.Lock()
	c.phase = Dragging
	c.mu.Unlock()
}

// EndDrag waits for the momentum scroll to settle before autoplay resumes.
func (c *Carousel) EndDrag() {
	c.mu.Lock()
	if c.phase == Dragging {
		c.phase = Settling
	}
	c.mu.Unlock()
}

// Settle takes the resting scroll offset, derives the visible slide from it
// and resumes autoplay.
func (c *Carousel) Settle(offset float64) int {
	c.mu.Lock()
	idx := int(math.Round(offset / c.snap))
	idx = min(max(idx, 0), max(c.count-1, 0))
	changed := idx != c.index
	c.index = idx
	c.phase = Autoplay
	c.mu.Unlock()

	if changed {
		c.notifier.Publish(idx)
	}
	return idx
}

// Subscribe calls fn with the index whenever it changes.
func (c *Carousel) Subscribe(fn func(int)) func() {
	return c.notifier.Subscribe(fn)
}

// Run ticks every interval until ctx is done.
func (c *Carousel) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Tick()
		}
	}
}

func (c *Carousel) scrollTo(idx int) {
	if c.scroller == nil {
		return
	}
	err := c.scroller.ScrollToIndex(idx)
	if err == nil {
		return
	}
	c.logger.Printf("carousel: scroll to index=%d error=%v, falling back to offset", idx, err)
	if err := c.scroller.ScrollToOffset(float64(idx) * c.snap); err != nil {
		c.logger.Printf("carousel: scroll to offset error=%v", err)
	}
}

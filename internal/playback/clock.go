// Package playback advances the playhead in real time and reports what changed.
package playback

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tessro/cutline/internal/core"
	"github.com/tessro/cutline/internal/render"
)

// Transport is the part of the timeline engine the clock drives.
type Transport interface {
	Playback() core.PlaybackState
	SceneAtFrame(frame int) (core.Scene, int, bool)
	Advance() bool
}

// Clock ticks at the playback rate, advancing the transport while it plays.
type Clock struct {
	transport Transport
	interval  time.Duration
	renderer  render.Renderer
	frames    bool
	logger    *slog.Logger
	events    chan Event
	done      chan struct{}
	stopOnce  sync.Once
	loops     int
}

// Option configures a Clock.
type Option func(*Clock)

// WithInterval overrides the tick interval derived from the frame rate.
func WithInterval(d time.Duration) Option {
	return func(c *Clock) {
		c.interval = d
	}
}

// WithRenderer draws the current scene after every tick.
func WithRenderer(r render.Renderer) Option {
	return func(c *Clock) {
		c.renderer = r
	}
}

// WithFrameEvents enables one EventFrame per advanced frame.
func WithFrameEvents(enabled bool) Option {
	return func(c *Clock) {
		c.frames = enabled
	}
}

// WithLogger sets the logger used for renderer failures.
func WithLogger(l *slog.Logger) Option {
	return func(c *Clock) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClock creates a clock over t.
func NewClock(t Transport, opts ...Option) *Clock {
	c := &Clock{
		transport: t,
		logger:    slog.New(slog.DiscardHandler),
		events:    make(chan Event, 16),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.interval <= 0 {
		c.interval = FrameInterval(t.Playback().FPS)
	}
	return c
}

// FrameInterval returns the duration of one frame at fps.
func FrameInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = core.DefaultFPS
	}
	return time.Duration(float64(time.Second) / fps)
}

// Events returns the channel of playback events. It is closed when Run returns.
func (c *Clock) Events() <-chan Event {
	return c.events
}

// Run ticks until ctx is cancelled or Stop is called.
func (c *Clock) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	defer close(c.events)

	if c.renderer != nil {
		if err := c.renderer.Init(); err != nil {
			c.logger.Warn("renderer init failed, continuing without it", "err", err)
			c.renderer = nil
		}
	}

	prev := sample(c.transport)
	c.emit(diffSnapshots(nil, prev, false, c.frames, 0))
	c.draw(prev.frame)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.done:
			return nil
		case <-ticker.C:
			curr, wrapped := c.tick()
			c.emit(diffSnapshots(&prev, curr, wrapped, c.frames, c.loops))
			prev = curr
		}
	}
}

// tick advances one frame if playing and draws the result.
func (c *Clock) tick() (snapshot, bool) {
	wrapped := false
	if c.transport.Playback().IsPlaying {
		wrapped = c.transport.Advance()
		if wrapped {
			c.loops++
		}
	}
	curr := sample(c.transport)
	c.draw(curr.frame)
	return curr, wrapped
}

// Stop stops the clock. It is safe to call more than once.
func (c *Clock) Stop() {
	c.stopOnce.Do(func() { close(c.done) })
}

func (c *Clock) emit(events []Event) {
	for _, e := range events {
		select {
		case c.events <- e:
		default:
			// Drop event if channel is full
		}
	}
}

func (c *Clock) draw(frame int) {
	if c.renderer == nil {
		return
	}
	if err := render.Draw(c.renderer, c.transport, frame); err != nil {
		c.logger.Warn("render failed", "frame", frame, "err", err)
	}
}

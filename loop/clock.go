package loop

import (
	"errors"
	"fmt"
	"time"

	cfg "github.com/automoto/doomerang-arena/config"
	"go.uber.org/zap"
)

const (
	DefaultTickRate   = 60
	DefaultMaxSteps   = 5
	DefaultFPSWindow  = 60
	DefaultFPSRefresh = 10
)

// OverflowPolicy decides what happens to time owed beyond the step cap.
type OverflowPolicy int

const (
	// OverflowDrop discards whole steps beyond the cap and keeps only the
	// remainder below one step.
	OverflowDrop OverflowPolicy = iota
	// OverflowCarry keeps the owed time for later frames.
	OverflowCarry
)

var ErrUnknownOverflow = errors.New("unknown overflow policy")

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowDrop:
		return "drop"
	case OverflowCarry:
		return "carry"
	}
	return fmt.Sprintf("overflow(%d)", int(p))
}

func ParseOverflow(s string) (OverflowPolicy, error) {
	switch s {
	case "", "drop":
		return OverflowDrop, nil
	case "carry":
		return OverflowCarry, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOverflow, s)
}

// Clock converts rendered frame times into a bounded number of fixed
// updates.
type Clock struct {
	step     time.Duration
	maxSteps int
	overflow OverflowPolicy
	log      *zap.Logger

	accumulator time.Duration
	paused      bool
	renderDelta time.Duration
	elapsed     time.Duration
	frames      uint64
	updates     uint64
	dropped     uint64 // steps discarded by OverflowDrop

	// FPS averaging over a ring of recent frame times
	window     []time.Duration
	windowNext int
	windowFull bool
	fpsRefresh uint64
	fps        float64
}

type Option func(*Clock)

func WithLogger(l *zap.Logger) Option {
	return func(c *Clock) { c.log = l }
}

func WithMaxSteps(n int) Option {
	return func(c *Clock) { c.maxSteps = max(1, n) }
}

func WithOverflow(p OverflowPolicy) Option {
	return func(c *Clock) { c.overflow = p }
}

// WithFPSWindow averages FPS over size frames, recomputed every refresh
// frames.
func WithFPSWindow(size, refresh int) Option {
	return func(c *Clock) {
		c.window = make([]time.Duration, max(1, size))
		c.fpsRefresh = uint64(max(1, refresh))
	}
}

func NewClock(tickRate int, opts ...Option) *Clock {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	c := &Clock{
		step:       time.Second / time.Duration(tickRate),
		maxSteps:   DefaultMaxSteps,
		log:        zap.NewNop(),
		window:     make([]time.Duration, DefaultFPSWindow),
		fpsRefresh: DefaultFPSRefresh,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromConfig builds a clock from loop settings.
func FromConfig(lc cfg.LoopConfig, opts ...Option) (*Clock, error) {
	p, err := ParseOverflow(lc.Overflow)
	if err != nil {
		return nil, err
	}
	base := []Option{
		WithMaxSteps(lc.MaxSteps),
		WithOverflow(p),
		WithFPSWindow(lc.FPSWindow, lc.FPSRefresh),
	}
	return NewClock(lc.TickRate, append(base, opts...)...), nil
}

// BeginFrame records a rendered frame that took frameTime and returns how
// many fixed updates to run for it. A paused clock returns 0 and does not
// accumulate time.
func (c *Clock) BeginFrame(frameTime time.Duration) int {
	if frameTime < 0 {
		frameTime = 0
	}
	c.frames++
	c.elapsed += frameTime
	c.renderDelta = frameTime
	c.recordFrame(frameTime)

	if c.paused {
		return 0
	}

	c.accumulator += frameTime
	n := 0
	for c.accumulator >= c.step && n < c.maxSteps {
		c.accumulator -= c.step
		n++
	}
	if c.overflow == OverflowDrop && c.accumulator >= c.step {
		owed := c.accumulator / c.step
		c.accumulator -= owed * c.step
		c.dropped += uint64(owed)
		c.log.Debug("dropped fixed steps", zap.Int64("steps", int64(owed)), zap.Uint64("frame", c.frames))
	}
	c.updates += uint64(n)
	return n
}

func (c *Clock) recordFrame(d time.Duration) {
	c.window[c.windowNext] = d
	c.windowNext = (c.windowNext + 1) % len(c.window)
	if c.windowNext == 0 {
		c.windowFull = true
	}
	if c.frames%c.fpsRefresh == 0 {
		c.updateFPS()
	}
}

func (c *Clock) updateFPS() {
	n := c.windowNext
	if c.windowFull {
		n = len(c.window)
	}
	var total time.Duration
	for _, d := range c.window[:n] {
		total += d
	}
	if n == 0 || total <= 0 {
		c.fps = 0
		return
	}
	avg := total.Seconds() / float64(n)
	c.fps = 1 / avg
}

// FixedStep is the fixed update length in seconds.
func (c *Clock) FixedStep() float64 { return c.step.Seconds() }

func (c *Clock) Step() time.Duration        { return c.step }
func (c *Clock) RenderDelta() time.Duration { return c.renderDelta }
func (c *Clock) Elapsed() time.Duration     { return c.elapsed }
func (c *Clock) FPS() float64               { return c.fps }
func (c *Clock) FrameCount() uint64         { return c.frames }
func (c *Clock) UpdateCount() uint64        { return c.updates }
func (c *Clock) DroppedSteps() uint64       { return c.dropped }
func (c *Clock) Overflow() OverflowPolicy   { return c.overflow }

// Alpha is the fraction of a step left in the accumulator, for
// interpolating between the last two fixed updates.
func (c *Clock) Alpha() float64 {
	return float64(c.accumulator) / float64(c.step)
}

func (c *Clock) IsPaused() bool { return c.paused }

func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.log.Info("game paused")
}

// Resume clears the accumulator so no burst of updates follows a pause.
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.accumulator = 0
	c.log.Info("game resumed")
}

func (c *Clock) TogglePause() {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
}

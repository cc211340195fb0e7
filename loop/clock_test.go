package loop

import (
	"testing"
	"time"

	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestClock_Accumulates(t *testing.T) {
	c := NewClock(60)
	step := c.Step()

	assert.Equal(t, 0, c.BeginFrame(step/2))
	assert.InDelta(t, 0.5, c.Alpha(), 1e-6)
	assert.Equal(t, 1, c.BeginFrame(step/2+step/4))
	assert.Equal(t, 2, c.BeginFrame(2*step))
	assert.Equal(t, uint64(3), c.UpdateCount())
	assert.Equal(t, uint64(3), c.FrameCount())
	assert.InDelta(t, 1.0/60.0, c.FixedStep(), 1e-6)
}

func TestClock_Overflow(t *testing.T) {
	tests := []struct {
		policy    OverflowPolicy
		nextFrame int
		dropped   uint64
	}{
		{OverflowDrop, 0, 5},
		{OverflowCarry, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			c := NewClock(60, WithOverflow(tt.policy), WithLogger(zaptest.NewLogger(t)))
			step := c.Step()

			assert.Equal(t, DefaultMaxSteps, c.BeginFrame(10*step+step/2))
			assert.Equal(t, tt.dropped, c.DroppedSteps())
			assert.Equal(t, tt.nextFrame, c.BeginFrame(0))
			assert.InDelta(t, 0.5, c.Alpha(), 1e-6)
		})
	}
}

func TestClock_Pause(t *testing.T) {
	c := NewClock(60)
	step := c.Step()
	c.BeginFrame(step / 2)

	c.TogglePause()
	require.True(t, c.IsPaused())
	assert.Equal(t, 0, c.BeginFrame(10*step))
	assert.Equal(t, uint64(2), c.FrameCount(), "paused frames still count")

	c.Resume()
	assert.False(t, c.IsPaused())
	assert.Zero(t, c.Alpha(), "resume clears the accumulator")
	assert.Equal(t, 1, c.BeginFrame(step))
}

func TestClock_FPS(t *testing.T) {
	c := NewClock(60, WithFPSWindow(4, 2))

	c.BeginFrame(10 * time.Millisecond)
	assert.Zero(t, c.FPS(), "not refreshed yet")
	c.BeginFrame(30 * time.Millisecond)
	assert.InDelta(t, 50.0, c.FPS(), 1e-9)

	for i := 0; i < 4; i++ {
		c.BeginFrame(25 * time.Millisecond)
	}
	assert.InDelta(t, 40.0, c.FPS(), 1e-9, "old frames leave the window")
}

func TestFromConfig(t *testing.T) {
	lc := cfg.Defaults().Loop
	lc.Overflow = "carry"
	lc.MaxSteps = 2

	c, err := FromConfig(lc)
	require.NoError(t, err)
	assert.Equal(t, OverflowCarry, c.Overflow())
	assert.Equal(t, 2, c.BeginFrame(3*c.Step()))

	lc.Overflow = "slowmo"
	_, err = FromConfig(lc)
	assert.ErrorIs(t, err, ErrUnknownOverflow)
}

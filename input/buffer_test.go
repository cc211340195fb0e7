package input

import (
	"testing"

	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_Push(t *testing.T) {
	t.Run("duplicate does not grow", func(t *testing.T) {
		b := NewBuffer()
		b.Push(cfg.ActionJump)
		b.Push(cfg.ActionJump)

		assert.Equal(t, 1, b.Len())
	})

	t.Run("never exceeds capacity", func(t *testing.T) {
		b := NewBuffer()
		for i := 0; i < 45; i++ {
			b.Push(cfg.ActionID(100 + i))
		}

		require.Equal(t, cfg.InputBufferCapacity, b.Len())
		entries := b.Entries()
		assert.Equal(t, cfg.ActionID(115), entries[0].Action, "oldest entries are evicted first")
		assert.Equal(t, cfg.ActionID(144), entries[len(entries)-1].Action)
	})

	t.Run("duplicate keeps original countdown", func(t *testing.T) {
		b := NewBuffer()
		b.Push(cfg.ActionJump)
		b.Tick()
		b.Push(cfg.ActionJump)

		assert.Equal(t, cfg.InputBufferFrames-1, b.Entries()[0].FramesRemaining)
	})
}

func TestBuffer_Expiry(t *testing.T) {
	b := NewBuffer()
	b.Push(cfg.ActionJump)

	for i := 0; i < cfg.InputBufferFrames-1; i++ {
		b.Tick()
		require.True(t, b.Has(cfg.ActionJump), "still buffered after %d ticks", i+1)
	}
	b.Tick()

	assert.False(t, b.Has(cfg.ActionJump))
	assert.Zero(t, b.Len())
}

func TestBuffer_Consume(t *testing.T) {
	b := NewBuffer()
	b.Push(cfg.ActionJump)
	b.Push(cfg.ActionDuck)

	assert.True(t, b.Consume(cfg.ActionJump))
	assert.False(t, b.Consume(cfg.ActionJump))
	assert.False(t, b.Has(cfg.ActionJump))
	assert.True(t, b.Has(cfg.ActionDuck))

	b.Clear()
	assert.Zero(t, b.Len())
}

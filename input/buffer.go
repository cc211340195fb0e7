package input

import cfg "github.com/automoto/doomerang-arena/config"

// BufferedInput is a press kept alive for a few ticks so logic that runs
// slightly later still sees it.
type BufferedInput struct {
	Action          cfg.ActionID
	FramesRemaining int
}

// Buffer holds at most one entry per action, oldest first.
type Buffer struct {
	entries  []BufferedInput
	capacity int
	frames   int
}

func NewBuffer() *Buffer {
	return NewBufferSize(cfg.InputBufferCapacity, cfg.InputBufferFrames)
}

func NewBufferSize(capacity, frames int) *Buffer {
	return &Buffer{
		entries:  make([]BufferedInput, 0, capacity),
		capacity: capacity,
		frames:   frames,
	}
}

// Push buffers action unless it is already buffered. The oldest entry is
// evicted when the buffer is full.
func (b *Buffer) Push(action cfg.ActionID) {
	if b.Has(action) {
		return
	}
	b.entries = append(b.entries, BufferedInput{Action: action, FramesRemaining: b.frames})
	if len(b.entries) > b.capacity {
		b.entries = b.entries[1:]
	}
}

func (b *Buffer) Has(action cfg.ActionID) bool {
	return b.index(action) >= 0
}

// Consume removes action from the buffer and reports whether it was there.
func (b *Buffer) Consume(action cfg.ActionID) bool {
	i := b.index(action)
	if i < 0 {
		return false
	}
	b.entries = append(b.entries[:i], b.entries[i+1:]...)
	return true
}

// Tick ages every entry by one frame and drops the expired ones.
func (b *Buffer) Tick() {
	kept := b.entries[:0]
	for _, e := range b.entries {
		e.FramesRemaining--
		if e.FramesRemaining > 0 {
			kept = append(kept, e)
		}
	}
	b.entries = kept
}

func (b *Buffer) Clear() {
	b.entries = b.entries[:0]
}

func (b *Buffer) Len() int {
	return len(b.entries)
}

// Entries returns a copy of the buffered inputs, oldest first.
func (b *Buffer) Entries() []BufferedInput {
	out := make([]BufferedInput, len(b.entries))
	copy(out, b.entries)
	return out
}

func (b *Buffer) index(action cfg.ActionID) int {
	for i, e := range b.entries {
		if e.Action == action {
			return i
		}
	}
	return -1
}

package character

import (
	"testing"

	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRegistry_Spawn(t *testing.T) {
	r := NewRegistry(newArena(t), WithLogger(zaptest.NewLogger(t)))

	a, err := r.Spawn("alpha", 0, cfg.BaseStats(), 4, 3)
	require.NoError(t, err)
	b, err := r.Spawn("beta", 1, cfg.BaseStats(), 8, 3)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	_, err = r.Spawn("gamma", 0, cfg.BaseStats(), 12, 3)
	assert.ErrorIs(t, err, ErrPlayerSlotTaken)
	assert.Equal(t, 2, r.Count())

	for i := 0; i < 2; i++ {
		_, err = r.Spawn("dummy", NoPlayer, cfg.BaseStats(), 16, 3)
		require.NoError(t, err, "unowned characters never collide on a slot")
	}
	assert.Equal(t, 4, r.Count())

	c, ok := r.ByPlayer(1)
	require.True(t, ok)
	assert.Equal(t, "beta", c.Name())
	player, ok := c.Player()
	assert.True(t, ok)
	assert.Equal(t, 1, player)

	_, ok = r.ByPlayer(NoPlayer)
	assert.False(t, ok)
	assert.True(t, r.IsPlayerTaken(0))
	assert.False(t, r.IsPlayerTaken(2))
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry(newArena(t))
	id, err := r.Spawn("alpha", 0, cfg.BaseStats(), 4, 3)
	require.NoError(t, err)
	c, _ := r.Get(id)
	body := c.Body()

	require.True(t, r.Remove(id))
	_, ok := r.Get(id)
	assert.False(t, ok)
	_, ok = r.World().Body(body)
	assert.False(t, ok, "body goes with the character")
	assert.False(t, r.Remove(id))
	assert.False(t, r.IsPlayerTaken(0))

	next, err := r.Spawn("alpha", 0, cfg.BaseStats(), 4, 3)
	require.NoError(t, err)
	assert.Greater(t, uint32(next), uint32(id), "ids are never reused")
}

func TestRegistry_UpdateConsumesJump(t *testing.T) {
	r := NewRegistry(newArena(t))
	c := spawn(t, r, 0, 10, 3)
	tick(r, 1)

	c.SetInput(0, true, false)
	r.Update(dt)

	v, _ := c.Velocity()
	assert.Equal(t, 30.0, v.Y)
	assert.False(t, c.JumpRequested())
	assert.True(t, c.JustJumped())
	assert.Equal(t, cfg.StateJumping, c.State())

	r.Update(dt)
	assert.False(t, c.JustJumped())
}

func TestRegistry_AliveCountAndRenderStates(t *testing.T) {
	r := NewRegistry(newArena(t))
	a := spawn(t, r, 0, 4, 3)
	spawn(t, r, 1, 8, 3)

	a.Die()
	assert.Equal(t, 1, r.AliveCount())

	states := r.RenderStates()
	require.Len(t, states, 2)
	assert.Equal(t, a.ID(), states[0].ID)
	assert.Equal(t, cfg.StateDead, states[0].State)
	assert.Equal(t, cfg.AnimDead, states[0].Animation)
	assert.Equal(t, 4.0, states[0].X)
	assert.Equal(t, 3.0, states[0].Y)
	assert.Equal(t, 1.0, states[0].Width)
	assert.Equal(t, 2.0, states[0].Height)
	assert.Equal(t, cfg.AnimIdle, states[1].Animation)
	assert.Equal(t, 100.0, states[1].Health)
}

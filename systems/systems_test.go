package systems

import (
	"testing"

	"github.com/automoto/doomerang-arena/arena"
	"github.com/automoto/doomerang-arena/assets"
	"github.com/automoto/doomerang-arena/character"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/input"
	"github.com/automoto/doomerang-arena/loop"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap/zaptest"
)

type match struct {
	ecs   *ecs.ECS
	clock *loop.Clock
	reg   *character.Registry
}

// newMatch builds the simulation side of an arena scene with two players
// on the embedded arena.
func newMatch(t *testing.T) *match {
	t.Helper()
	s := cfg.Defaults()
	s.Input.Players = 2

	layouts, _, err := arena.LoadAll(assets.Arenas(), assets.ArenaDir)
	require.NoError(t, err)
	layout := layouts["arena"]

	log := zaptest.NewLogger(t)
	clock, err := loop.FromConfig(s.Loop, loop.WithLogger(log))
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(UpdateInput)
	e.AddSystem(UpdatePause)
	e.AddSystem(UpdateInputTick)
	e.AddSystem(WithGameplayChecks(UpdatePlayerInput))
	e.AddSystem(WithGameplayChecks(UpdateCharacters))
	e.AddSystem(WithGameplayChecks(UpdatePlatforms))
	e.AddSystem(WithGameplayChecks(UpdatePhysics))
	e.AddSystem(WithGameplayChecks(UpdateHazards))
	e.AddSystem(WithGameplayChecks(UpdateRespawns))

	factory.CreateArena(e, layout, s.Physics, s.Arena)
	roster, err := factory.CreateRoster(e, character.WithLogger(log))
	require.NoError(t, err)
	factory.CreateInput(e, input.NewManager(s.Input.Players, input.WithLogger(log)))
	factory.CreateClock(e, clock)
	for i := 0; i < s.Input.Players; i++ {
		_, err := factory.CreatePlayer(e, i, s.Character)
		require.NoError(t, err)
	}

	return &match{ecs: e, clock: clock, reg: components.Roster.Get(roster).Registry}
}

func (m *match) run(n int) {
	for i := 0; i < n; i++ {
		m.ecs.Update()
	}
}

func (m *match) player(t *testing.T, index int) (*components.PlayerData, *character.Character) {
	t.Helper()
	var pd *components.PlayerData
	tags.Player.Each(m.ecs.World, func(e *donburi.Entry) {
		if p := components.Player.Get(e); p.Index == index {
			pd = p
		}
	})
	require.NotNil(t, pd)
	c, ok := m.reg.Get(pd.Character)
	require.True(t, ok)
	return pd, c
}

func (m *match) key(k ebiten.Key, pressed bool) {
	QueueInput(m.ecs, input.KeyEvent(k, pressed, false))
}

func TestMatch_PlayersSpawnAndLand(t *testing.T) {
	m := newMatch(t)
	assert.Equal(t, 2, m.reg.Count())

	m.run(60)
	for i := 0; i < 2; i++ {
		_, c := m.player(t, i)
		assert.True(t, c.IsGrounded(), "player %d", i)
		assert.Equal(t, cfg.StateIdle, c.State())
	}
}

func TestMatch_KeyboardDrivesOnlyItsPlayer(t *testing.T) {
	m := newMatch(t)
	m.run(60)
	_, p1 := m.player(t, 0)
	_, p2 := m.player(t, 1)
	start2, _ := p2.Position()

	m.key(ebiten.KeyD, true)
	m.run(10)

	v, _ := p1.Velocity()
	assert.Equal(t, 10.0, v.X)
	assert.Equal(t, cfg.StateWalking, p1.State())
	pos2, _ := p2.Position()
	assert.Equal(t, start2.X, pos2.X)

	m.key(ebiten.KeyD, false)
	m.run(1)
	v, _ = p1.Velocity()
	assert.Zero(t, v.X)
}

func TestMatch_JumpIsConsumedOnce(t *testing.T) {
	m := newMatch(t)
	m.run(60)
	_, c := m.player(t, 0)

	m.key(ebiten.KeyW, true)
	m.run(1)
	assert.Equal(t, cfg.StateJumping, c.State())
	assert.Equal(t, 0, c.JumpsRemaining())

	st, _ := components.Input.Get(mustFirst(t, m.ecs, components.Input)).Manager.Player(0)
	assert.False(t, st.IsBuffered(cfg.ActionJump))

	m.key(ebiten.KeyW, false)
	m.run(90)
	assert.True(t, c.IsGrounded())
	assert.Equal(t, 1, c.JumpsRemaining())
}

func TestMatch_PauseFreezesGameplay(t *testing.T) {
	m := newMatch(t)
	m.run(60)
	_, c := m.player(t, 0)

	m.key(ebiten.KeyP, true)
	m.key(ebiten.KeyD, true)
	m.run(1)
	require.True(t, m.clock.IsPaused())

	before, _ := c.Position()
	m.run(30)
	after, _ := c.Position()
	assert.Equal(t, before, after)

	m.key(ebiten.KeyP, false)
	m.run(1)
	m.key(ebiten.KeyP, true)
	m.run(1)
	assert.False(t, m.clock.IsPaused())

	m.run(10)
	after, _ = c.Position()
	assert.Greater(t, after.X, before.X)
}

func TestMatch_MenuAlsoPauses(t *testing.T) {
	m := newMatch(t)
	m.key(ebiten.KeyEscape, true)
	m.run(1)
	assert.True(t, IsPaused(m.ecs))
}

func TestMatch_KillPlane(t *testing.T) {
	m := newMatch(t)
	m.run(60)
	pd, c := m.player(t, 0)
	ad := components.Arena.Get(mustFirst(t, m.ecs, components.Arena))

	c.SetPosition(40, ad.KillPlaneY-5)
	m.run(1)

	assert.Equal(t, 1, pd.Falls)
	assert.Equal(t, c.Stats().MaxHealth, c.Health(), "respawning restores health")
	pos, _ := c.Position()
	spawn := ad.Layout.Spawn(0)
	assert.Equal(t, spawn.X, pos.X)
}

func TestMatch_DeadRespawnAfterDelay(t *testing.T) {
	m := newMatch(t)
	m.run(60)
	pd, c := m.player(t, 1)

	c.Die()
	m.run(int(cfg.RespawnDelay*60) - 1)
	assert.False(t, c.IsAlive())

	m.run(1)
	assert.True(t, c.IsAlive(), "back on the tick the delay elapses")
	assert.Equal(t, 1, pd.Deaths)
	assert.Equal(t, c.Stats().MaxHealth, c.Health())
}

func TestMatch_HazardDamages(t *testing.T) {
	m := newMatch(t)
	m.run(60)
	_, c := m.player(t, 0)

	// inside the pit, below the floor
	c.SetPosition(40, 0.5)
	m.run(1)

	assert.Equal(t, c.Stats().MaxHealth-25, c.Health())
	assert.Equal(t, cfg.StateHitStun, c.State())
	assert.NotZero(t, c.PendingKnockback().Y)
}

func TestMatch_MovingPlatformTravels(t *testing.T) {
	m := newMatch(t)
	pd := components.Physics.Get(mustFirst(t, m.ecs, components.Physics))
	e, ok := tags.MovingPlatform.First(m.ecs.World)
	require.True(t, ok)
	b, ok := pd.World.Body(components.Body.Get(e).Handle)
	require.True(t, ok)
	start := b.Position()

	m.run(90)
	assert.Greater(t, b.Position().X, start.X+1)
	assert.InDelta(t, start.Y, b.Position().Y, 1e-9)
	assert.False(t, components.PlatformMotion.Get(e).Returning)

	// past the end of the outward leg the platform heads back
	m.run(120)
	assert.True(t, components.PlatformMotion.Get(e).Returning)
}

func mustFirst[T any](t *testing.T, e *ecs.ECS, c *donburi.ComponentType[T]) *donburi.Entry {
	t.Helper()
	entry, ok := c.First(e.World)
	require.True(t, ok)
	return entry
}

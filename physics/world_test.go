package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

const dt = 1.0 / 60.0

func step(w *World, n int) {
	for i := 0; i < n; i++ {
		w.Step(dt)
	}
}

func addPlatform(t *testing.T, w *World, x, y, width, height float64) (BodyHandle, ColliderHandle) {
	t.Helper()
	b := w.AddBody(PlatformBody(x, y))
	c, ok := w.AddCollider(PlatformCollider(width, height), b)
	require.True(t, ok)
	return b, c
}

func addPlayer(t *testing.T, w *World, x, y float64) (BodyHandle, ColliderHandle) {
	t.Helper()
	b := w.AddBody(PlayerBody(x, y))
	c, ok := w.AddCollider(PlayerCollider(1, 2), b)
	require.True(t, ok)
	return b, c
}

func TestCollides(t *testing.T) {
	tests := []struct {
		a, b Category
		want bool
	}{
		{CategoryPlayer, CategoryPlatform, true},
		{CategoryPlayer, CategoryHazard, true},
		{CategoryPlayer, CategorySensor, true},
		{CategoryPlayer, CategoryPlayer, false},
		{CategoryPlayer, CategoryProjectile, false},
		{CategoryProjectile, CategoryPlatform, true},
		{CategoryProjectile, CategoryProjectile, true},
		{CategoryProjectile, CategoryAbilityEffect, false},
		{CategoryPlatform, CategoryHazard, false},
		{CategoryPickup, CategoryPlayer, true},
		{CategoryPickup, CategoryPlatform, false},
		{CategorySensor, CategoryDefault, true},
		{CategoryDefault, CategoryPlayer, false},
	}
	for _, tt := range tests {
		t.Run(tt.a.String()+"/"+tt.b.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Collides(tt.a, tt.b))
			assert.Equal(t, tt.want, Collides(tt.b, tt.a), "table is symmetric")
		})
	}
	assert.False(t, Collides(categoryCount, CategoryPlayer))
}

func TestWorld_Handles(t *testing.T) {
	w := NewWorld(20, 20)
	b, c := addPlayer(t, w, 5, 5)

	_, ok := w.Body(b)
	require.True(t, ok)
	require.True(t, w.RemoveBody(b))

	_, ok = w.Body(b)
	assert.False(t, ok)
	_, ok = w.Collider(c)
	assert.False(t, ok)
	assert.False(t, w.RemoveBody(b))

	_, ok = w.AddCollider(PlayerCollider(1, 2), b)
	assert.False(t, ok, "stale parent")

	b2 := w.AddBody(PlayerBody(1, 1))
	assert.Greater(t, uint32(b2), uint32(b), "handles are never reused")
}

func TestWorld_Landing(t *testing.T) {
	w := NewWorld(20, 20, WithGravity(math.Vec2{X: 0, Y: -60}))
	platform, _ := addPlatform(t, w, 10, 1, 20, 2)
	player, _ := addPlayer(t, w, 10, 5)

	step(w, 120)

	b, _ := w.Body(player)
	assert.InDelta(t, 3.0, b.Position().Y, 1e-9, "feet rest on the platform top")
	assert.InDelta(t, 0.0, b.Velocity().Y, 1e-9)
	ground, ok := b.Ground()
	require.True(t, ok)
	assert.Equal(t, platform, ground)
}

func TestWorld_WallStopsHorizontalMotion(t *testing.T) {
	w := NewWorld(20, 20, WithGravity(math.Vec2{}))
	addPlatform(t, w, 10, 5, 1, 10)
	player, _ := addPlayer(t, w, 5, 5)
	b, _ := w.Body(player)
	b.SetVelocity(math.Vec2{X: 30, Y: 0})

	step(w, 30)

	assert.InDelta(t, 9.0, b.Position().X, 1e-9)
	assert.InDelta(t, 0.0, b.Velocity().X, 1e-9)
}

func TestWorld_SweepEndsFlushWithObstacle(t *testing.T) {
	w := NewWorld(20, 20, WithGravity(math.Vec2{}))
	addPlatform(t, w, 2, 10, 1, 20)
	addPlatform(t, w, 12, 1, 16, 2)
	player, _ := addPlayer(t, w, 8, 7.3)
	b, _ := w.Body(player)

	b.SetVelocity(math.Vec2{X: 0, Y: -600})
	w.Step(dt)
	assert.InDelta(t, 3.0, b.Position().Y, 1e-9, "one long step down stops on the platform top")
	assert.InDelta(t, 0.0, b.Velocity().Y, 1e-9)

	b.SetVelocity(math.Vec2{X: -45, Y: 0})
	step(w, 20)
	assert.InDelta(t, 3.0, b.Position().X, 1e-9, "moving left stops against the wall's right face")
	assert.InDelta(t, 0.0, b.Velocity().X, 1e-9)
}

func TestWorld_ProjectileBounce(t *testing.T) {
	w := NewWorld(20, 20, WithGravity(math.Vec2{X: 0, Y: -60}))
	addPlatform(t, w, 10, 1, 20, 2)
	h := w.AddBody(ProjectileBody(10, 5, 0, -10))
	_, ok := w.AddCollider(ProjectileCollider(0.25), h)
	require.True(t, ok)

	step(w, 30)

	b, _ := w.Body(h)
	assert.InDelta(t, 4.0, b.Velocity().Y, 1e-9, "bounces with the averaged restitution")
	assert.GreaterOrEqual(t, b.Position().Y, 2.25)
}

func TestWorld_KinematicCarriesRider(t *testing.T) {
	w := NewWorld(20, 20, WithGravity(math.Vec2{X: 0, Y: -60}))
	ph := w.AddBody(MovingPlatformBody(10, 2))
	_, ok := w.AddCollider(PlatformCollider(4, 1), ph)
	require.True(t, ok)
	player, _ := addPlayer(t, w, 10, 3.5)

	platform, _ := w.Body(ph)
	platform.SetVelocity(math.Vec2{X: 1, Y: 1})
	step(w, 60)

	rider, _ := w.Body(player)
	assert.InDelta(t, 3.0, platform.Position().Y, 1e-9)
	assert.InDelta(t, platform.Position().Y+1.5, rider.Position().Y, 1e-9)
	assert.InDelta(t, platform.Position().X, rider.Position().X, 1e-9)
}

func TestWorld_CollisionEvents(t *testing.T) {
	w := NewWorld(20, 20, WithGravity(math.Vec2{}))
	zb := w.AddBody(PlatformBody(5, 5))
	zone, ok := w.AddCollider(SensorCollider(2, 2), zb)
	require.True(t, ok)
	player, pc := addPlayer(t, w, 5, 5)

	w.Step(dt)
	events := w.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, CollisionEvent{Kind: CollisionStarted, A: zone, B: pc, Sensor: true}, events[0])
	assert.True(t, w.Touching(pc, zone))

	w.Step(dt)
	assert.Empty(t, w.DrainEvents(), "continuing contact is not reported again")

	b, _ := w.Body(player)
	b.SetPosition(math.Vec2{X: 15, Y: 15})
	w.Step(dt)
	events = w.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, CollisionStopped, events[0].Kind)
	assert.False(t, w.Touching(zone, pc))
}

func TestWorld_RemoveColliderStopsContacts(t *testing.T) {
	w := NewWorld(20, 20, WithGravity(math.Vec2{}))
	zb := w.AddBody(PlatformBody(5, 5))
	zone, _ := w.AddCollider(SensorCollider(2, 2), zb)
	_, pc := addPlayer(t, w, 5, 5)
	w.Step(dt)
	w.DrainEvents()

	require.True(t, w.RemoveCollider(pc))

	assert.Equal(t, []CollisionEvent{{Kind: CollisionStopped, A: zone, B: pc, Sensor: true}}, w.DrainEvents())
}

func TestWorld_Raycast(t *testing.T) {
	w := NewWorld(20, 20, WithGravity(math.Vec2{}))
	platform, pc := addPlatform(t, w, 10, 1, 20, 2)
	player, playerCollider := addPlayer(t, w, 10, 3)

	t.Run("ground probe excluding own body", func(t *testing.T) {
		hit, ok := w.Raycast(math.Vec2{X: 10, Y: 2.1}, math.Vec2{X: 0, Y: -1}, 0.2, true, RayFilter{ExcludeBody: player})
		require.True(t, ok)
		assert.Equal(t, pc, hit.Collider)
		assert.Equal(t, platform, hit.Body)
		assert.InDelta(t, 0.1, hit.Distance, 1e-9)
		assert.InDelta(t, 2.0, hit.Point.Y, 1e-9)
	})

	t.Run("solid ray inside a box hits at zero", func(t *testing.T) {
		hit, ok := w.Raycast(math.Vec2{X: 10, Y: 3}, math.Vec2{X: 0, Y: -5}, 0.2, true, RayFilter{})
		require.True(t, ok)
		assert.Equal(t, playerCollider, hit.Collider)
		assert.Zero(t, hit.Distance)
	})

	t.Run("hollow ray inside a box hits where it leaves", func(t *testing.T) {
		hit, ok := w.Raycast(math.Vec2{X: 10, Y: 3.5}, math.Vec2{X: 0, Y: 1}, 5, false, RayFilter{})
		require.True(t, ok)
		assert.Equal(t, playerCollider, hit.Collider)
		assert.InDelta(t, 0.5, hit.Distance, 1e-9)
	})

	t.Run("too short", func(t *testing.T) {
		_, ok := w.Raycast(math.Vec2{X: 10, Y: 2.5}, math.Vec2{X: 0, Y: -1}, 0.2, true, RayFilter{ExcludeBody: player})
		assert.False(t, ok)
	})

	t.Run("category filter", func(t *testing.T) {
		_, ok := w.Raycast(math.Vec2{X: 10, Y: 2.1}, math.Vec2{X: 0, Y: -1}, 0.2, true,
			RayFilter{ExcludeBody: player, Categories: []Category{CategoryHazard}})
		assert.False(t, ok)
	})

	t.Run("zero direction", func(t *testing.T) {
		_, ok := w.Raycast(math.Vec2{X: 10, Y: 2.1}, math.Vec2{}, 1, true, RayFilter{})
		assert.False(t, ok)
	})
}

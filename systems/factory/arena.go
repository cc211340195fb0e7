package factory

import (
	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/arena"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateArena builds the physics world for layout, spawns an entity for
// every platform and hazard, and returns the physics singleton.
func CreateArena(ecs *ecs.ECS, layout *arena.Layout, pc cfg.PhysicsConfig, ac cfg.ArenaConfig) *donburi.Entry {
	w := layout.NewWorld(
		physics.WithGravity(math.Vec2{X: pc.GravityX, Y: pc.GravityY}),
		physics.WithCellSize(pc.CellSize),
	)
	built := layout.Build(w)

	for _, h := range built.Platforms {
		CreatePlatform(ecs, h)
	}
	for _, mb := range built.Moving {
		CreateMovingPlatform(ecs, mb)
	}
	hazards := make(map[physics.ColliderHandle]arena.Hazard, len(built.Hazards))
	for _, hb := range built.Hazards {
		hazards[hb.Collider] = hb.Hazard
		if col, ok := w.Collider(hb.Collider); ok {
			CreateHazard(ecs, col.Parent())
		}
	}

	world := archetypes.Physics.Spawn(ecs)
	components.Physics.SetValue(world, components.PhysicsData{World: w})

	level := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(level, components.ArenaData{
		Layout:     layout,
		Hazards:    hazards,
		KillPlaneY: ac.KillPlaneY,
		FallDamage: ac.FallDamage,
	})

	return world
}

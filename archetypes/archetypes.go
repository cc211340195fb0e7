package archetypes

import (
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Body,
	)
	MovingPlatform = newArchetype(
		tags.MovingPlatform,
		components.Body,
		components.PlatformMotion,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Body,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
	)

	// Singletons
	Physics = newArchetype(
		components.Physics,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Roster = newArchetype(
		components.Roster,
	)
	Input = newArchetype(
		components.Input,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Render = newArchetype(
		components.Render,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

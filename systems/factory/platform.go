package factory

import (
	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/arena"
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/physics"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, body physics.BodyHandle) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	components.Body.SetValue(platform, components.BodyData{Handle: body})

	return platform
}

// CreateMovingPlatform adds a platform that travels to Start+Travel and back,
// taking Duration seconds each way.
func CreateMovingPlatform(ecs *ecs.ECS, mb arena.MovingBody) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)
	components.Body.SetValue(platform, components.BodyData{Handle: mb.Body})

	d := float32(mb.Platform.Duration)
	if d <= 0 {
		d = 1
	}
	components.PlatformMotion.SetValue(platform, components.PlatformMotionData{
		Start:  mb.Platform.Center,
		Travel: mb.Platform.Travel,
		Out:    gween.New(0, 1, d, ease.InOutQuad),
		Back:   gween.New(1, 0, d, ease.InOutQuad),
	})

	return platform
}

func CreateHazard(ecs *ecs.ECS, body physics.BodyHandle) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)
	components.Body.SetValue(hazard, components.BodyData{Handle: body})

	return hazard
}

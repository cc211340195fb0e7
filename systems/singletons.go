package systems

import (
	"github.com/automoto/doomerang-arena/character"
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/loop"
	"github.com/yohamta/donburi/ecs"
)

func getInput(ecs *ecs.ECS) (*components.InputData, bool) {
	e, ok := components.Input.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Input.Get(e), true
}

func getClock(ecs *ecs.ECS) (*loop.Clock, bool) {
	e, ok := components.Clock.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Clock.Get(e).Clock, true
}

func getRegistry(ecs *ecs.ECS) (*character.Registry, bool) {
	e, ok := components.Roster.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Roster.Get(e).Registry, true
}

func getPhysics(ecs *ecs.ECS) (*components.PhysicsData, bool) {
	e, ok := components.Physics.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Physics.Get(e), true
}

func getArena(ecs *ecs.ECS) (*components.ArenaData, bool) {
	e, ok := components.Arena.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Arena.Get(e), true
}

func getCamera(ecs *ecs.ECS) (*components.CameraData, bool) {
	e, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(e), true
}

func getRender(ecs *ecs.ECS) (*components.RenderData, bool) {
	e, ok := components.Render.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Render.Get(e), true
}

// fixedStep is the simulated time of one update, falling back to 60 Hz
// when no clock exists.
func fixedStep(ecs *ecs.ECS) float64 {
	if clk, ok := getClock(ecs); ok {
		return clk.FixedStep()
	}
	return 1.0 / float64(loop.DefaultTickRate)
}

// IsPaused reports the clock's pause flag.
func IsPaused(ecs *ecs.ECS) bool {
	clk, ok := getClock(ecs)
	return ok && clk.IsPaused()
}

package components

import (
	"github.com/automoto/doomerang-arena/physics"
	"github.com/yohamta/donburi"
)

// PhysicsData holds the physics world and the collision events of the last
// step.
type PhysicsData struct {
	World  *physics.World
	Events []physics.CollisionEvent
}

var Physics = donburi.NewComponentType[PhysicsData]()

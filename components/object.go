package components

import (
	"github.com/automoto/doomerang-arena/physics"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its physics body.
type BodyData struct {
	Handle physics.BodyHandle
}

var Body = donburi.NewComponentType[BodyData]()

package components

import (
	"github.com/automoto/doomerang-arena/arena"
	"github.com/automoto/doomerang-arena/physics"
	"github.com/yohamta/donburi"
)

type ArenaData struct {
	Layout     *arena.Layout
	Hazards    map[physics.ColliderHandle]arena.Hazard
	KillPlaneY float64
	FallDamage float64
}

var Arena = donburi.NewComponentType[ArenaData]()

package components

import (
	"github.com/automoto/doomerang-arena/loop"
	"github.com/yohamta/donburi"
)

// ClockData holds the fixed-step clock. Its pause flag is the game's pause
// state.
type ClockData struct {
	Clock *loop.Clock
}

var Clock = donburi.NewComponentType[ClockData]()

package components

import (
	"github.com/automoto/doomerang-arena/input"
	"github.com/yohamta/donburi"
)

// InputData holds the input manager and the device events queued by the
// host since the last fixed update.
type InputData struct {
	Manager *input.Manager
	Queue   []input.Event
}

var Input = donburi.NewComponentType[InputData]()

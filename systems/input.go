package systems

import (
	"github.com/automoto/doomerang-arena/input"
	"github.com/yohamta/donburi/ecs"
)

// QueueInput stores a device event for the next fixed update.
func QueueInput(ecs *ecs.ECS, ev input.Event) {
	in, ok := getInput(ecs)
	if !ok {
		return
	}
	in.Queue = append(in.Queue, ev)
}

// UpdateInput applies the queued device events to the input manager.
// Must run first in the system order.
func UpdateInput(ecs *ecs.ECS) {
	in, ok := getInput(ecs)
	if !ok {
		return
	}
	for _, ev := range in.Queue {
		in.Manager.Handle(ev)
	}
	in.Queue = in.Queue[:0]
}

// UpdateInputTick ages press edges and buffered actions. Runs after every
// system that reads JustPressed.
func UpdateInputTick(ecs *ecs.ECS) {
	if in, ok := getInput(ecs); ok {
		in.Manager.Tick()
	}
}

package factory

import (
	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/input"
	"github.com/automoto/doomerang-arena/loop"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateInput(ecs *ecs.ECS, m *input.Manager) *donburi.Entry {
	in := archetypes.Input.Spawn(ecs)
	components.Input.SetValue(in, components.InputData{Manager: m})
	return in
}

func CreateClock(ecs *ecs.ECS, c *loop.Clock) *donburi.Entry {
	clk := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clk, components.ClockData{Clock: c})
	return clk
}

func CreateRender(ecs *ecs.ECS, rd components.RenderData) *donburi.Entry {
	r := archetypes.Render.Spawn(ecs)
	components.Render.SetValue(r, rd)
	return r
}

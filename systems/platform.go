package systems

import (
	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlatforms drives moving platforms back and forth along their path.
// The platform body is kinematic, so it is steered by velocity and the
// physics step carries riders with it.
func UpdatePlatforms(ecs *ecs.ECS) {
	pd, ok := getPhysics(ecs)
	if !ok {
		return
	}
	dt := fixedStep(ecs)

	tags.MovingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		b, ok := pd.World.Body(components.Body.Get(e).Handle)
		if !ok {
			return
		}
		m := components.PlatformMotion.Get(e)

		tw := m.Out
		if m.Returning {
			tw = m.Back
		}
		t, done := tw.Update(float32(dt))
		if done {
			tw.Reset()
			m.Returning = !m.Returning
		}

		targetX := m.Start.X + m.Travel.X*float64(t)
		targetY := m.Start.Y + m.Travel.Y*float64(t)
		pos := b.Position()
		b.SetVelocity(math.Vec2{X: (targetX - pos.X) / dt, Y: (targetY - pos.Y) / dt})
	})
}

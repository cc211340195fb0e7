package arena

import (
	"github.com/automoto/doomerang-arena/physics"
)

// Built holds the physics handles created for a layout.
type Built struct {
	Platforms []physics.BodyHandle
	Moving    []MovingBody
	Hazards   []HazardBody
}

type MovingBody struct {
	Body     physics.BodyHandle
	Platform MovingPlatform
}

type HazardBody struct {
	Collider physics.ColliderHandle
	Hazard   Hazard
}

// NewWorld creates a physics world sized to the layout.
func (l *Layout) NewWorld(opts ...physics.Option) *physics.World {
	return physics.NewWorld(l.Width, l.Height, opts...)
}

// Build adds the layout's static platforms, moving platforms and hazards
// to w.
func (l *Layout) Build(w *physics.World) Built {
	var b Built
	for _, p := range l.Platforms {
		h := w.AddBody(physics.PlatformBody(p.Center.X, p.Center.Y))
		w.AddCollider(physics.PlatformCollider(p.Width, p.Height), h)
		b.Platforms = append(b.Platforms, h)
	}
	for _, mp := range l.MovingPlatforms {
		h := w.AddBody(physics.MovingPlatformBody(mp.Center.X, mp.Center.Y))
		w.AddCollider(physics.PlatformCollider(mp.Width, mp.Height), h)
		b.Moving = append(b.Moving, MovingBody{Body: h, Platform: mp})
	}
	for _, hz := range l.Hazards {
		h := w.AddBody(physics.PlatformBody(hz.Center.X, hz.Center.Y))
		c, _ := w.AddCollider(physics.HazardCollider(hz.Width, hz.Height), h)
		b.Hazards = append(b.Hazards, HazardBody{Collider: c, Hazard: hz})
	}
	return b
}

package systems

import (
	"github.com/automoto/doomerang-arena/character"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/physics"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hazardKnockback = 15.0

// UpdatePhysics steps the physics world and keeps the step's collision
// events for the systems that follow.
func UpdatePhysics(ecs *ecs.ECS) {
	pd, ok := getPhysics(ecs)
	if !ok {
		return
	}
	pd.World.Step(fixedStep(ecs))
	pd.Events = pd.World.DrainEvents()
}

// UpdateHazards damages characters that started touching a hazard this
// step.
func UpdateHazards(ecs *ecs.ECS) {
	pd, ok := getPhysics(ecs)
	if !ok {
		return
	}
	ad, ok := getArena(ecs)
	if !ok || len(ad.Hazards) == 0 {
		return
	}
	reg, ok := getRegistry(ecs)
	if !ok {
		return
	}

	for _, ev := range pd.Events {
		if ev.Kind != physics.CollisionStarted {
			continue
		}
		hz, ok := ad.Hazards[ev.A]
		other := ev.B
		if !ok {
			hz, ok = ad.Hazards[ev.B]
			other = ev.A
		}
		if !ok {
			continue
		}
		c, ok := characterFor(pd.World, reg, other)
		if !ok {
			continue
		}
		kx := 0.0
		if pos, ok := c.Position(); ok {
			if pos.X < hz.Center.X {
				kx = -hazardKnockback
			} else {
				kx = hazardKnockback
			}
		}
		c.TakeDamage(hz.Damage, kx, hazardKnockback)
	}
}

// characterFor resolves the character owning a collider through its body's
// user data.
func characterFor(w *physics.World, reg *character.Registry, h physics.ColliderHandle) (*character.Character, bool) {
	col, ok := w.Collider(h)
	if !ok {
		return nil, false
	}
	b, ok := w.Body(col.Parent())
	if !ok {
		return nil, false
	}
	id, ok := b.UserData.(character.CharacterID)
	if !ok {
		return nil, false
	}
	return reg.Get(id)
}

// UpdateRespawns handles characters that fell out of the arena and brings
// dead characters back after RespawnDelay.
func UpdateRespawns(ecs *ecs.ECS) {
	ad, ok := getArena(ecs)
	if !ok {
		return
	}
	reg, ok := getRegistry(ecs)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		c, ok := reg.Get(p.Character)
		if !ok {
			return
		}
		spawn := ad.Layout.Spawn(p.Index)

		if !c.IsAlive() {
			if c.StateMachine().TimeInState()+cfg.TimerEpsilon >= cfg.RespawnDelay {
				p.Deaths++
				c.Respawn(spawn.X, spawn.Y)
			}
			return
		}

		pos, ok := c.Position()
		if !ok || pos.Y >= ad.KillPlaneY {
			return
		}
		p.Falls++
		c.TakeDamage(ad.FallDamage, 0, 0)
		if c.IsAlive() {
			c.Respawn(spawn.X, spawn.Y)
		}
	})
}

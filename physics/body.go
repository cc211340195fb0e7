package physics

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

// BodyHandle identifies a body. Handles are never reused, so a handle of a
// removed body stays invalid.
type BodyHandle uint32

// ColliderHandle identifies a collider.
type ColliderHandle uint32

// InvalidBody and InvalidCollider are never returned by a World.
const (
	InvalidBody     BodyHandle     = 0
	InvalidCollider ColliderHandle = 0
)

type BodyKind int

const (
	BodyDynamic   BodyKind = iota // integrated and collided
	BodyFixed                     // never moves
	BodyKinematic                 // moved by its velocity, pushes nothing but carries riders
)

// BodyDesc describes a body to add to the world.
type BodyDesc struct {
	Kind         BodyKind
	Position     math.Vec2
	Velocity     math.Vec2
	GravityScale float64
	UserData     any
}

// Body is a point mass with colliders attached. Positions are in world
// units with y pointing up.
type Body struct {
	handle       BodyHandle
	world        *World
	kind         BodyKind
	pos          math.Vec2
	vel          math.Vec2
	gravityScale float64
	colliders    []ColliderHandle
	ground       BodyHandle // body stood on after the last step

	UserData any
}

func (b *Body) Handle() BodyHandle  { return b.handle }
func (b *Body) Kind() BodyKind      { return b.kind }
func (b *Body) Position() math.Vec2 { return b.pos }
func (b *Body) Velocity() math.Vec2 { return b.vel }

func (b *Body) GravityScale() float64 { return b.gravityScale }

// Ground is the body this one rested on after the last step.
func (b *Body) Ground() (BodyHandle, bool) {
	return b.ground, b.ground != InvalidBody
}

func (b *Body) Colliders() []ColliderHandle {
	out := make([]ColliderHandle, len(b.colliders))
	copy(out, b.colliders)
	return out
}

// SetPosition teleports the body and its colliders.
func (b *Body) SetPosition(p math.Vec2) {
	b.pos = p
	b.ground = InvalidBody
	b.world.syncColliders(b)
}

func (b *Body) SetVelocity(v math.Vec2) {
	b.vel = v
}

func (b *Body) SetGravityScale(s float64) {
	b.gravityScale = s
}

// ColliderDesc describes an axis-aligned box attached to a body.
type ColliderDesc struct {
	HalfWidth   float64
	HalfHeight  float64
	Offset      math.Vec2 // from the body position to the box center
	Category    Category
	Sensor      bool // reports contacts, never blocks
	Friction    float64
	Restitution float64
	Density     float64
}

// Collider is a box attached to a body.
type Collider struct {
	handle ColliderHandle
	parent BodyHandle
	desc   ColliderDesc
	obj    *resolv.Object
}

func (c *Collider) Handle() ColliderHandle { return c.handle }
func (c *Collider) Parent() BodyHandle     { return c.parent }
func (c *Collider) Category() Category     { return c.desc.Category }
func (c *Collider) IsSensor() bool         { return c.desc.Sensor }
func (c *Collider) Desc() ColliderDesc     { return c.desc }

// AABB is a box in world units.
type AABB struct {
	MinX, MinY, MaxX, MaxY float64
}

func (a AABB) Overlaps(o AABB) bool {
	return a.MinX < o.MaxX && a.MaxX > o.MinX && a.MinY < o.MaxY && a.MaxY > o.MinY
}

// Touches is Overlaps with a tolerance, so resting contacts count.
func (a AABB) Touches(o AABB, slop float64) bool {
	return a.MinX <= o.MaxX+slop && a.MaxX >= o.MinX-slop &&
		a.MinY <= o.MaxY+slop && a.MaxY >= o.MinY-slop
}

func (a AABB) Width() float64  { return a.MaxX - a.MinX }
func (a AABB) Height() float64 { return a.MaxY - a.MinY }

func boxAt(center math.Vec2, desc ColliderDesc) AABB {
	cx := center.X + desc.Offset.X
	cy := center.Y + desc.Offset.Y
	return AABB{
		MinX: cx - desc.HalfWidth,
		MinY: cy - desc.HalfHeight,
		MaxX: cx + desc.HalfWidth,
		MaxY: cy + desc.HalfHeight,
	}
}

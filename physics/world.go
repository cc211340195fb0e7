package physics

import (
	stdmath "math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

const (
	// DefaultGravity is the vertical acceleration of a new world.
	DefaultGravity = -9.81

	// resolv works on an integer pixel grid; one world unit spans this many
	// grid pixels.
	pixelsPerUnit = 16.0

	// queryPad widens broadphase queries so objects sitting exactly on a
	// cell edge are still returned.
	queryPad = 1.0

	contactSlop = 1e-4
	aheadSlop   = 1e-6
)

// World owns every body and collider and steps them. Bodies and
// colliders are stored by handle and iterated in creation order.
type World struct {
	space    *resolv.Space
	width    float64
	height   float64
	gravity  math.Vec2
	cellSize int

	bodies        map[BodyHandle]*Body
	bodyOrder     []BodyHandle
	colliders     map[ColliderHandle]*Collider
	colliderOrder []ColliderHandle
	nextBody      BodyHandle
	nextCollider  ColliderHandle

	contacts map[contactPair]bool
	events   []CollisionEvent
}

type Option func(*World)

func WithGravity(g math.Vec2) Option {
	return func(w *World) { w.gravity = g }
}

// WithCellSize sets the broadphase cell size in world units.
func WithCellSize(units int) Option {
	return func(w *World) {
		if units > 0 {
			w.cellSize = units
		}
	}
}

// NewWorld creates a world covering [0, width] x [0, height]. Bodies may
// leave the area but are only collided inside it.
func NewWorld(width, height float64, opts ...Option) *World {
	w := &World{
		width:     width,
		height:    height,
		gravity:   math.Vec2{X: 0, Y: DefaultGravity},
		cellSize:  1,
		bodies:    make(map[BodyHandle]*Body),
		colliders: make(map[ColliderHandle]*Collider),
		contacts:  make(map[contactPair]bool),
	}
	for _, opt := range opts {
		opt(w)
	}
	cell := int(float64(w.cellSize) * pixelsPerUnit)
	w.space = resolv.NewSpace(int(width*pixelsPerUnit), int(height*pixelsPerUnit), cell, cell)
	return w
}

func (w *World) Size() (width, height float64) {
	return w.width, w.height
}

func (w *World) Gravity() math.Vec2 {
	return w.gravity
}

func (w *World) SetGravity(g math.Vec2) {
	w.gravity = g
}

func (w *World) AddBody(desc BodyDesc) BodyHandle {
	w.nextBody++
	b := &Body{
		handle:       w.nextBody,
		world:        w,
		kind:         desc.Kind,
		pos:          desc.Position,
		vel:          desc.Velocity,
		gravityScale: desc.GravityScale,
		UserData:     desc.UserData,
	}
	w.bodies[b.handle] = b
	w.bodyOrder = append(w.bodyOrder, b.handle)
	return b.handle
}

// AddCollider attaches a box to parent. It fails when parent is not a
// live body.
func (w *World) AddCollider(desc ColliderDesc, parent BodyHandle) (ColliderHandle, bool) {
	b, ok := w.bodies[parent]
	if !ok {
		return InvalidCollider, false
	}
	w.nextCollider++
	c := &Collider{
		handle: w.nextCollider,
		parent: parent,
		desc:   desc,
	}
	box := boxAt(b.pos, desc)
	kindTag := "solid"
	if desc.Sensor {
		kindTag = "sensor"
	}
	c.obj = resolv.NewObject(
		box.MinX*pixelsPerUnit, box.MinY*pixelsPerUnit,
		box.Width()*pixelsPerUnit, box.Height()*pixelsPerUnit,
		desc.Category.tag(), kindTag,
	)
	c.obj.Data = c
	w.space.Add(c.obj)

	w.colliders[c.handle] = c
	w.colliderOrder = append(w.colliderOrder, c.handle)
	b.colliders = append(b.colliders, c.handle)
	return c.handle, true
}

func (w *World) Body(h BodyHandle) (*Body, bool) {
	b, ok := w.bodies[h]
	return b, ok
}

func (w *World) Collider(h ColliderHandle) (*Collider, bool) {
	c, ok := w.colliders[h]
	return c, ok
}

// ColliderAABB returns the current box of a collider.
func (w *World) ColliderAABB(h ColliderHandle) (AABB, bool) {
	c, ok := w.colliders[h]
	if !ok {
		return AABB{}, false
	}
	return w.aabb(c), true
}

// Bodies returns the live bodies in creation order.
func (w *World) Bodies() []*Body {
	out := make([]*Body, 0, len(w.bodyOrder))
	for _, h := range w.bodyOrder {
		out = append(out, w.bodies[h])
	}
	return out
}

// Colliders returns the live colliders in creation order.
func (w *World) Colliders() []*Collider {
	out := make([]*Collider, 0, len(w.colliderOrder))
	for _, h := range w.colliderOrder {
		out = append(out, w.colliders[h])
	}
	return out
}

// RemoveCollider detaches and deletes a collider. Contacts it was part of
// are reported as stopped.
func (w *World) RemoveCollider(h ColliderHandle) bool {
	c, ok := w.colliders[h]
	if !ok {
		return false
	}
	for _, p := range w.sortedContacts() {
		if p.a == h || p.b == h {
			delete(w.contacts, p)
			w.events = append(w.events, w.event(CollisionStopped, p))
		}
	}
	w.space.Remove(c.obj)
	delete(w.colliders, h)
	w.colliderOrder = removeHandle(w.colliderOrder, h)
	if b, ok := w.bodies[c.parent]; ok {
		b.colliders = removeHandle(b.colliders, h)
	}
	return true
}

// RemoveBody deletes a body together with its colliders.
func (w *World) RemoveBody(h BodyHandle) bool {
	b, ok := w.bodies[h]
	if !ok {
		return false
	}
	for _, c := range b.Colliders() {
		w.RemoveCollider(c)
	}
	delete(w.bodies, h)
	w.bodyOrder = removeHandle(w.bodyOrder, h)
	for _, other := range w.bodies {
		if other.ground == h {
			other.ground = InvalidBody
		}
	}
	return true
}

// Step advances the simulation by dt seconds. Dynamic bodies are moved
// first against fixed and kinematic geometry, then kinematic bodies move
// and carry the dynamic bodies resting on them.
func (w *World) Step(dt float64) {
	for _, h := range w.bodyOrder {
		b := w.bodies[h]
		if b.kind != BodyDynamic {
			continue
		}
		b.vel.X += w.gravity.X * b.gravityScale * dt
		b.vel.Y += w.gravity.Y * b.gravityScale * dt
		b.ground = InvalidBody
		w.moveAxis(b, b.vel.X*dt, false)
		w.moveAxis(b, b.vel.Y*dt, true)
	}

	for _, h := range w.bodyOrder {
		k := w.bodies[h]
		if k.kind != BodyKinematic {
			continue
		}
		dx, dy := k.vel.X*dt, k.vel.Y*dt
		if dx == 0 && dy == 0 {
			continue
		}
		k.pos.X += dx
		k.pos.Y += dy
		w.syncColliders(k)
		for _, rh := range w.bodyOrder {
			r := w.bodies[rh]
			if r.kind == BodyDynamic && r.ground == k.handle && r.vel.Y <= 0 {
				r.pos.X += dx
				r.pos.Y += dy
				w.syncColliders(r)
			}
		}
	}

	w.updateContacts()
}

// moveAxis moves b by d along one axis in chunks no larger than half of
// its smallest collider, stopping at the first blocking collider.
func (w *World) moveAxis(b *Body, d float64, vertical bool) {
	if d == 0 {
		return
	}
	chunk := w.maxChunk(b)
	for remaining := d; remaining != 0; {
		step := remaining
		if stdmath.Abs(step) > chunk {
			step = stdmath.Copysign(chunk, remaining)
		}
		allowed, hit := w.sweep(b, step, vertical)
		if vertical {
			b.pos.Y += allowed
		} else {
			b.pos.X += allowed
		}
		w.syncColliders(b)
		if hit != nil {
			w.block(b, hit, step, vertical)
			return
		}
		remaining -= step
	}
}

func (w *World) maxChunk(b *Body) float64 {
	chunk := 0.5 * float64(w.cellSize)
	for _, ch := range b.colliders {
		c := w.colliders[ch]
		if c.desc.Sensor {
			continue
		}
		chunk = stdmath.Min(chunk, stdmath.Min(c.desc.HalfWidth, c.desc.HalfHeight))
	}
	if chunk <= 0 {
		chunk = 0.5
	}
	return chunk
}

// sweep finds how far b can travel by step before one of its solid
// colliders meets a solid fixed or kinematic collider.
func (w *World) sweep(b *Body, step float64, vertical bool) (float64, *Collider) {
	allowed := step
	var hit *Collider
	for _, ch := range b.colliders {
		c := w.colliders[ch]
		if c.desc.Sensor {
			continue
		}
		box := w.aabb(c)
		qx, qy := 0.0, 0.0
		pad := stdmath.Copysign(queryPad, step)
		if vertical {
			qy = step*pixelsPerUnit + pad
		} else {
			qx = step*pixelsPerUnit + pad
		}
		tags := partnerTags(c.desc.Category)
		if len(tags) == 0 {
			continue
		}
		check := c.obj.Check(qx, qy, tags...)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags("solid") {
			other, ok := o.Data.(*Collider)
			if !ok || other.parent == b.handle {
				continue
			}
			if ob := w.bodies[other.parent]; ob == nil || ob.kind == BodyDynamic {
				continue
			}
			gap, blocks := sweepGap(box, w.aabb(other), contactGap(check, o, vertical), step, vertical)
			if !blocks {
				continue
			}
			closer := stdmath.Abs(gap) < stdmath.Abs(allowed)
			tie := stdmath.Abs(gap) == stdmath.Abs(allowed) && (hit == nil || other.handle < hit.handle)
			if closer || tie {
				allowed = gap
				hit = other
			}
		}
	}
	return allowed, hit
}

// contactGap is how far, in world units, the checked collider can move
// along the axis before touching o, as resolv reports it.
func contactGap(check *resolv.Collision, o *resolv.Object, vertical bool) float64 {
	contact := check.ContactWithObject(o)
	if vertical {
		return contact.Y() / pixelsPerUnit
	}
	return contact.X() / pixelsPerUnit
}

// sweepGap decides whether o is in the way of a move of size step and
// clamps the contact distance so an overlapping box never moves backwards.
func sweepGap(box, o AABB, contact, step float64, vertical bool) (float64, bool) {
	if vertical {
		if !(box.MinX < o.MaxX && box.MaxX > o.MinX) {
			return 0, false
		}
		if step < 0 {
			if o.MaxY > box.MinY+aheadSlop {
				return 0, false
			}
			gap := stdmath.Min(0, contact)
			return gap, gap >= step
		}
		if o.MinY < box.MaxY-aheadSlop {
			return 0, false
		}
		gap := stdmath.Max(0, contact)
		return gap, gap <= step
	}
	if !(box.MinY < o.MaxY && box.MaxY > o.MinY) {
		return 0, false
	}
	if step < 0 {
		if o.MaxX > box.MinX+aheadSlop {
			return 0, false
		}
		gap := stdmath.Min(0, contact)
		return gap, gap >= step
	}
	if o.MinX < box.MaxX-aheadSlop {
		return 0, false
	}
	gap := stdmath.Max(0, contact)
	return gap, gap <= step
}

// block applies the response to hitting other: the velocity along the
// axis bounces by the averaged restitution, and a downward hit grounds b.
func (w *World) block(b *Body, other *Collider, step float64, vertical bool) {
	restitution := other.desc.Restitution
	for _, ch := range b.colliders {
		if c := w.colliders[ch]; !c.desc.Sensor {
			restitution = (restitution + c.desc.Restitution) / 2
			break
		}
	}
	if vertical {
		b.vel.Y = -b.vel.Y * restitution
		if step < 0 {
			b.ground = other.parent
		}
		return
	}
	b.vel.X = -b.vel.X * restitution
}

func (w *World) aabb(c *Collider) AABB {
	b := w.bodies[c.parent]
	return boxAt(b.pos, c.desc)
}

func (w *World) syncColliders(b *Body) {
	for _, ch := range b.colliders {
		c := w.colliders[ch]
		box := boxAt(b.pos, c.desc)
		c.obj.X = box.MinX * pixelsPerUnit
		c.obj.Y = box.MinY * pixelsPerUnit
		c.obj.Update()
	}
}

func removeHandle[H comparable](s []H, h H) []H {
	for i, v := range s {
		if v == h {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

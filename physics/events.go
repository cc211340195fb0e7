package physics

import "sort"

type EventKind int

const (
	CollisionStarted EventKind = iota
	CollisionStopped
)

func (k EventKind) String() string {
	if k == CollisionStopped {
		return "stopped"
	}
	return "started"
}

// CollisionEvent reports a pair of colliders that started or stopped
// touching during a step. A is always the older collider.
type CollisionEvent struct {
	Kind   EventKind
	A, B   ColliderHandle
	Sensor bool // at least one side is a sensor
}

type contactPair struct {
	a, b ColliderHandle
}

// DrainEvents returns the events produced since the last call.
func (w *World) DrainEvents() []CollisionEvent {
	out := w.events
	w.events = nil
	return out
}

// Touching reports whether two colliders were in contact after the last
// step.
func (w *World) Touching(a, b ColliderHandle) bool {
	if a > b {
		a, b = b, a
	}
	return w.contacts[contactPair{a, b}]
}

func (w *World) updateContacts() {
	current := make(map[contactPair]bool)
	var started []contactPair

	for _, h := range w.colliderOrder {
		c := w.colliders[h]
		box := w.aabb(c)
		for _, other := range w.neighbours(c) {
			if other.handle <= c.handle || other.parent == c.parent {
				continue
			}
			if !w.mayTouch(c, other) || !box.Touches(w.aabb(other), contactSlop) {
				continue
			}
			p := contactPair{c.handle, other.handle}
			if current[p] {
				continue
			}
			current[p] = true
			if !w.contacts[p] {
				started = append(started, p)
			}
		}
	}
	sort.Slice(started, func(i, j int) bool { return pairLess(started[i], started[j]) })

	for _, p := range w.sortedContacts() {
		if !current[p] {
			w.events = append(w.events, w.event(CollisionStopped, p))
		}
	}
	for _, p := range started {
		w.events = append(w.events, w.event(CollisionStarted, p))
	}
	w.contacts = current
}

// mayTouch filters pairs by category and skips pairs where neither body
// can move.
func (w *World) mayTouch(a, b *Collider) bool {
	if !Collides(a.desc.Category, b.desc.Category) {
		return false
	}
	return w.bodies[a.parent].kind == BodyDynamic || w.bodies[b.parent].kind == BodyDynamic
}

// neighbours returns the colliders in the broadphase cells around c.
func (w *World) neighbours(c *Collider) []*Collider {
	seen := make(map[*Collider]bool)
	var out []*Collider
	tags := partnerTags(c.desc.Category)
	if len(tags) == 0 {
		return nil
	}
	for _, d := range [4][2]float64{{-queryPad, -queryPad}, {queryPad, queryPad}, {-queryPad, queryPad}, {queryPad, -queryPad}} {
		check := c.obj.Check(d[0], d[1], tags...)
		if check == nil {
			continue
		}
		for _, o := range check.Objects {
			other, ok := o.Data.(*Collider)
			if !ok || seen[other] {
				continue
			}
			seen[other] = true
			out = append(out, other)
		}
	}
	return out
}

func (w *World) event(kind EventKind, p contactPair) CollisionEvent {
	sensor := false
	if c, ok := w.colliders[p.a]; ok && c.desc.Sensor {
		sensor = true
	}
	if c, ok := w.colliders[p.b]; ok && c.desc.Sensor {
		sensor = true
	}
	return CollisionEvent{Kind: kind, A: p.a, B: p.b, Sensor: sensor}
}

func (w *World) sortedContacts() []contactPair {
	out := make([]contactPair, 0, len(w.contacts))
	for p := range w.contacts {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return pairLess(out[i], out[j]) })
	return out
}

func pairLess(x, y contactPair) bool {
	if x.a != y.a {
		return x.a < y.a
	}
	return x.b < y.b
}

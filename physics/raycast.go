package physics

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// RayFilter narrows the colliders a ray can hit.
type RayFilter struct {
	ExcludeBody    BodyHandle
	ExcludeSensors bool
	Categories     []Category // empty matches every category
}

func (f RayFilter) accepts(c *Collider) bool {
	if f.ExcludeBody != InvalidBody && c.parent == f.ExcludeBody {
		return false
	}
	if f.ExcludeSensors && c.desc.Sensor {
		return false
	}
	if len(f.Categories) == 0 {
		return true
	}
	for _, cat := range f.Categories {
		if cat == c.desc.Category {
			return true
		}
	}
	return false
}

// RayHit is the closest collider along a ray.
type RayHit struct {
	Collider ColliderHandle
	Body     BodyHandle
	Distance float64
	Point    math.Vec2
}

// Raycast casts a ray from origin along dir for at most maxDist world
// units. With solid set, a ray starting inside a collider hits it at
// distance 0; otherwise it hits where it leaves the box. A miss is not an
// error.
func (w *World) Raycast(origin, dir math.Vec2, maxDist float64, solid bool, filter RayFilter) (RayHit, bool) {
	length := stdmath.Hypot(dir.X, dir.Y)
	if length == 0 || maxDist < 0 {
		return RayHit{}, false
	}
	d := math.Vec2{X: dir.X / length, Y: dir.Y / length}

	var best RayHit
	found := false
	for _, o := range w.space.Objects() {
		c, ok := o.Data.(*Collider)
		if !ok || !filter.accepts(c) {
			continue
		}
		t, hit := rayAABB(origin, d, w.aabb(c), solid)
		if !hit || t > maxDist {
			continue
		}
		if !found || t < best.Distance || (t == best.Distance && c.handle < best.Collider) {
			best = RayHit{
				Collider: c.handle,
				Body:     c.parent,
				Distance: t,
				Point:    math.Vec2{X: origin.X + d.X*t, Y: origin.Y + d.Y*t},
			}
			found = true
		}
	}
	return best, found
}

// rayAABB is the slab test of a unit-direction ray against a box.
func rayAABB(o, d math.Vec2, box AABB, solid bool) (float64, bool) {
	tEnter := stdmath.Inf(-1)
	tExit := stdmath.Inf(1)

	slab := func(origin, dir, lo, hi float64) bool {
		if dir == 0 {
			return origin >= lo && origin <= hi
		}
		t1 := (lo - origin) / dir
		t2 := (hi - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tEnter = stdmath.Max(tEnter, t1)
		tExit = stdmath.Min(tExit, t2)
		return true
	}
	if !slab(o.X, d.X, box.MinX, box.MaxX) || !slab(o.Y, d.Y, box.MinY, box.MaxY) {
		return 0, false
	}
	if tExit < tEnter || tExit < 0 {
		return 0, false
	}
	if tEnter < 0 {
		if solid {
			return 0, true
		}
		return tExit, true
	}
	return tEnter, true
}

package physics

import "github.com/yohamta/donburi/features/math"

// PlayerBody is a dynamic body for a character.
func PlayerBody(x, y float64) BodyDesc {
	return BodyDesc{
		Kind:         BodyDynamic,
		Position:     math.Vec2{X: x, Y: y},
		GravityScale: 1,
	}
}

// PlayerCollider is a frictionless character box of the given size.
func PlayerCollider(width, height float64) ColliderDesc {
	return ColliderDesc{
		HalfWidth:  width / 2,
		HalfHeight: height / 2,
		Category:   CategoryPlayer,
		Density:    1,
	}
}

func PlatformBody(x, y float64) BodyDesc {
	return BodyDesc{
		Kind:     BodyFixed,
		Position: math.Vec2{X: x, Y: y},
	}
}

// MovingPlatformBody is a kinematic platform driven by its velocity.
func MovingPlatformBody(x, y float64) BodyDesc {
	return BodyDesc{
		Kind:     BodyKinematic,
		Position: math.Vec2{X: x, Y: y},
	}
}

func PlatformCollider(width, height float64) ColliderDesc {
	return ColliderDesc{
		HalfWidth:  width / 2,
		HalfHeight: height / 2,
		Category:   CategoryPlatform,
		Friction:   0.3,
		Density:    1,
	}
}

// ProjectileBody flies straight; it ignores gravity.
func ProjectileBody(x, y, vx, vy float64) BodyDesc {
	return BodyDesc{
		Kind:     BodyDynamic,
		Position: math.Vec2{X: x, Y: y},
		Velocity: math.Vec2{X: vx, Y: vy},
	}
}

// ProjectileCollider is a bouncy square enclosing a circle of radius r.
func ProjectileCollider(r float64) ColliderDesc {
	return ColliderDesc{
		HalfWidth:   r,
		HalfHeight:  r,
		Category:    CategoryProjectile,
		Restitution: 0.8,
		Density:     0.1,
	}
}

// SensorCollider detects overlaps without blocking.
func SensorCollider(width, height float64) ColliderDesc {
	return ColliderDesc{
		HalfWidth:  width / 2,
		HalfHeight: height / 2,
		Category:   CategorySensor,
		Sensor:     true,
	}
}

// HazardCollider is a sensor that only reacts to characters.
func HazardCollider(width, height float64) ColliderDesc {
	return ColliderDesc{
		HalfWidth:  width / 2,
		HalfHeight: height / 2,
		Category:   CategoryHazard,
		Sensor:     true,
	}
}

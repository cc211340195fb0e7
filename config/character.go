package config

// CharacterStats contains the movement and combat tuning of a character.
type CharacterStats struct {
	MoveSpeed          float64 `yaml:"move_speed"`
	JumpForce          float64 `yaml:"jump_force"`
	MaxJumps           int     `yaml:"max_jumps"`
	AirControl         float64 `yaml:"air_control"` // 0.0 to 1.0
	GravityScale       float64 `yaml:"gravity_scale"`
	FastFallMultiplier float64 `yaml:"fast_fall_multiplier"`
	MaxHealth          float64 `yaml:"max_health"`

	// Dimensions in world units
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BaseStats is the single stat block every character uses.
func BaseStats() CharacterStats {
	return CharacterStats{
		MoveSpeed:          10,
		JumpForce:          30,
		MaxJumps:           1,
		AirControl:         0.8,
		GravityScale:       1,
		FastFallMultiplier: 2,
		MaxHealth:          100,
		Width:              1,
		Height:             2,
	}
}

// Movement tuning shared by all characters
const (
	MoveDeadzone    = 0.1
	GroundRayOffset = 0.1 // above the feet
	GroundRayLength = 0.2
	HitStunBase     = 0.2  // seconds
	HitStunPerPoint = 0.01 // seconds per point of damage
)

// RespawnDelay is how long a dead character stays down, in seconds.
const RespawnDelay = 2.0

// TimerEpsilon absorbs the rounding of summed fixed steps when a timer is
// compared with a duration.
const TimerEpsilon = 1e-9

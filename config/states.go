package config

// StateID is the behavioral state of a character.
type StateID int

const (
	StateIdle StateID = iota
	StateWalking
	StateJumping
	StateFalling
	StateFastFalling
	StateDucking
	StateHitStun
	StateDead
	StateCount
)

var stateNames = [StateCount]string{
	StateIdle:        "Idle",
	StateWalking:     "Walking",
	StateJumping:     "Jumping",
	StateFalling:     "Falling",
	StateFastFalling: "FastFalling",
	StateDucking:     "Ducking",
	StateHitStun:     "HitStun",
	StateDead:        "Dead",
}

func (s StateID) String() string {
	if s < 0 || s >= StateCount {
		return "Unknown"
	}
	return stateNames[s]
}

// Animation names
const (
	AnimIdle     = "idle"
	AnimWalk     = "walk"
	AnimJump     = "jump"
	AnimFall     = "fall"
	AnimFastFall = "fast_fall"
	AnimDuck     = "duck"
	AnimHit      = "hit"
	AnimDead     = "dead"
)

// AnimationName is the clip played while in state s.
func (s StateID) AnimationName() string {
	switch s {
	case StateWalking:
		return AnimWalk
	case StateJumping:
		return AnimJump
	case StateFalling:
		return AnimFall
	case StateFastFalling:
		return AnimFastFall
	case StateDucking:
		return AnimDuck
	case StateHitStun:
		return AnimHit
	case StateDead:
		return AnimDead
	default:
		return AnimIdle
	}
}

func (s StateID) IsGrounded() bool {
	return s == StateIdle || s == StateWalking || s == StateDucking
}

func (s StateID) IsAirborne() bool {
	return s == StateJumping || s == StateFalling || s == StateFastFalling
}

func (s StateID) CanMove() bool {
	return s != StateHitStun && s != StateDead
}

func (s StateID) CanJump() bool {
	return s != StateHitStun && s != StateDead && s != StateDucking
}

func (s StateID) CanUseAbility() bool {
	return s != StateHitStun && s != StateDead
}

func (s StateID) CanDuck() bool {
	return s == StateIdle || s == StateWalking
}

package character

import cfg "github.com/automoto/doomerang-arena/config"

// StateMachine tracks the behavioral state of one character. Grounding is
// never inferred here; the caller passes it in from a physics probe.
type StateMachine struct {
	current  cfg.StateID
	previous cfg.StateID
	timer    float64 // time in the current state
	hitStun  float64
	changed  bool
}

func NewStateMachine() *StateMachine {
	return &StateMachine{current: cfg.StateIdle, previous: cfg.StateIdle}
}

func (sm *StateMachine) State() cfg.StateID        { return sm.current }
func (sm *StateMachine) Previous() cfg.StateID     { return sm.previous }
func (sm *StateMachine) TimeInState() float64      { return sm.timer }
func (sm *StateMachine) HitStunRemaining() float64 { return sm.hitStun }

// JustChanged reports whether the last transition happened since the last
// Update.
func (sm *StateMachine) JustChanged() bool { return sm.changed }

// Transition moves to next. Moving to the current state does nothing.
func (sm *StateMachine) Transition(next cfg.StateID) {
	if next == sm.current {
		return
	}
	sm.ForceTransition(next)
}

// ForceTransition moves to next and restarts the state timer even when
// next is the current state.
func (sm *StateMachine) ForceTransition(next cfg.StateID) {
	sm.previous = sm.current
	sm.current = next
	sm.timer = 0
	sm.changed = true
}

// Update evaluates the transition table once for this tick.
func (sm *StateMachine) Update(dt float64, grounded bool, velocityY float64, duckHeld bool) {
	sm.changed = false
	sm.timer += dt

	switch sm.current {
	case cfg.StateDead:
		return
	case cfg.StateHitStun:
		sm.hitStun -= dt
		if sm.hitStun > cfg.TimerEpsilon {
			return
		}
		sm.hitStun = 0
		if grounded {
			sm.Transition(cfg.StateIdle)
		} else {
			sm.Transition(cfg.StateFalling)
		}
		return
	}

	if grounded {
		switch {
		case duckHeld && sm.current.CanDuck():
			sm.Transition(cfg.StateDucking)
		case !duckHeld && sm.current == cfg.StateDucking:
			sm.Transition(cfg.StateIdle)
		}
		return
	}

	switch sm.current {
	case cfg.StateJumping:
		if velocityY <= 0 {
			sm.Transition(cfg.StateFalling)
		}
	case cfg.StateFalling:
		if duckHeld {
			sm.Transition(cfg.StateFastFalling)
		}
	case cfg.StateFastFalling:
		if !duckHeld {
			sm.Transition(cfg.StateFalling)
		}
	case cfg.StateIdle, cfg.StateWalking, cfg.StateDucking:
		sm.Transition(cfg.StateFalling)
	}
}

func (sm *StateMachine) StartWalking() {
	if sm.current == cfg.StateIdle {
		sm.Transition(cfg.StateWalking)
	}
}

func (sm *StateMachine) StopWalking() {
	if sm.current == cfg.StateWalking {
		sm.Transition(cfg.StateIdle)
	}
}

// Jump enters Jumping when the current state allows it.
func (sm *StateMachine) Jump() bool {
	if !sm.current.CanJump() {
		return false
	}
	sm.Transition(cfg.StateJumping)
	return true
}

// SetGrounded is the landing signal. It only acts while airborne.
func (sm *StateMachine) SetGrounded(walking bool) {
	if !sm.current.IsAirborne() {
		return
	}
	if walking {
		sm.Transition(cfg.StateWalking)
	} else {
		sm.Transition(cfg.StateIdle)
	}
}

// ApplyHitStun forces HitStun for d seconds from any state but Dead.
func (sm *StateMachine) ApplyHitStun(d float64) {
	if sm.current == cfg.StateDead {
		return
	}
	sm.ForceTransition(cfg.StateHitStun)
	sm.hitStun = d
}

func (sm *StateMachine) Die() {
	sm.Transition(cfg.StateDead)
	sm.hitStun = 0
}

func (sm *StateMachine) Respawn() {
	sm.ForceTransition(cfg.StateFalling)
	sm.hitStun = 0
}

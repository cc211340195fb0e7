package input

import cfg "github.com/automoto/doomerang-arena/config"

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// PlayerState is the per-player action state fed by the Manager.
type PlayerState struct {
	playerID     int
	pressed      [cfg.ActionCount]bool
	justPressed  [cfg.ActionCount]bool
	justReleased [cfg.ActionCount]bool
	previous     [cfg.ActionCount]bool
	buffer       *Buffer
}

func NewPlayerState(playerID int) *PlayerState {
	return &PlayerState{
		playerID: playerID,
		buffer:   NewBuffer(),
	}
}

func (p *PlayerState) PlayerID() int {
	return p.playerID
}

// Press marks action held. Pressing an action that is already held does
// nothing, so device repeats never produce a second edge.
func (p *PlayerState) Press(action cfg.ActionID) {
	if !action.Valid() || p.pressed[action] {
		return
	}
	p.pressed[action] = true
	p.justPressed[action] = true
	p.buffer.Push(action)
}

func (p *PlayerState) Release(action cfg.ActionID) {
	if !action.Valid() || !p.pressed[action] {
		return
	}
	p.pressed[action] = false
	p.justReleased[action] = true
}

// Tick ends the current input frame: edges are cleared, the held set is
// remembered for IsHeld and the buffer ages by one frame.
func (p *PlayerState) Tick() {
	p.justPressed = [cfg.ActionCount]bool{}
	p.justReleased = [cfg.ActionCount]bool{}
	p.previous = p.pressed
	p.buffer.Tick()
}

func (p *PlayerState) IsPressed(action cfg.ActionID) bool {
	return action.Valid() && p.pressed[action]
}

func (p *PlayerState) JustPressed(action cfg.ActionID) bool {
	return action.Valid() && p.justPressed[action]
}

func (p *PlayerState) JustReleased(action cfg.ActionID) bool {
	return action.Valid() && p.justReleased[action]
}

// IsHeld is true when action was pressed on the previous tick and still is.
func (p *PlayerState) IsHeld(action cfg.ActionID) bool {
	return action.Valid() && p.pressed[action] && p.previous[action]
}

func (p *PlayerState) Action(action cfg.ActionID) ActionState {
	if !action.Valid() {
		return ActionState{}
	}
	return ActionState{
		Pressed:      p.pressed[action],
		JustPressed:  p.justPressed[action],
		JustReleased: p.justReleased[action],
	}
}

func (p *PlayerState) IsBuffered(action cfg.ActionID) bool {
	return p.buffer.Has(action)
}

func (p *PlayerState) ConsumeBuffered(action cfg.ActionID) bool {
	return p.buffer.Consume(action)
}

func (p *PlayerState) Buffer() *Buffer {
	return p.buffer
}

func (p *PlayerState) PressedActions() []cfg.ActionID {
	return collect(&p.pressed)
}

func (p *PlayerState) JustPressedActions() []cfg.ActionID {
	return collect(&p.justPressed)
}

// Direction returns the movement axes in [-1, 1]: left/right horizontally
// and duck/jump vertically. Opposite directions cancel out.
func (p *PlayerState) Direction() (h, v float64) {
	if p.pressed[cfg.ActionMoveLeft] {
		h--
	}
	if p.pressed[cfg.ActionMoveRight] {
		h++
	}
	if p.pressed[cfg.ActionDuck] {
		v--
	}
	if p.pressed[cfg.ActionJump] {
		v++
	}
	return h, v
}

// Reset drops all held actions, edges and buffered presses.
func (p *PlayerState) Reset() {
	p.pressed = [cfg.ActionCount]bool{}
	p.justPressed = [cfg.ActionCount]bool{}
	p.justReleased = [cfg.ActionCount]bool{}
	p.previous = [cfg.ActionCount]bool{}
	p.buffer.Clear()
}

func collect(set *[cfg.ActionCount]bool) []cfg.ActionID {
	var out []cfg.ActionID
	for a, on := range set {
		if on {
			out = append(out, cfg.ActionID(a))
		}
	}
	return out
}

package config

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionDuck
	ActionAbility1
	ActionAbility2
	ActionAbility3
	ActionPause
	ActionMenu
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:      "none",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionJump:      "jump",
	ActionDuck:      "duck",
	ActionAbility1:  "ability1",
	ActionAbility2:  "ability2",
	ActionAbility3:  "ability3",
	ActionPause:     "pause",
	ActionMenu:      "menu",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

// Valid reports whether a is a real action (ActionNone excluded).
func (a ActionID) Valid() bool {
	return a > ActionNone && a < ActionCount
}

// SourceKind tells which device an InputSource belongs to.
type SourceKind uint8

const (
	SourceKey SourceKind = iota
	SourceMouse
)

// InputSource is a single physical key or pointer button. It is comparable
// and used directly as a map key.
type InputSource struct {
	Kind   SourceKind
	Key    ebiten.Key
	Button ebiten.MouseButton
}

func KeySource(k ebiten.Key) InputSource {
	return InputSource{Kind: SourceKey, Key: k}
}

func MouseSource(b ebiten.MouseButton) InputSource {
	return InputSource{Kind: SourceMouse, Button: b}
}

func (s InputSource) String() string {
	if s.Kind == SourceMouse {
		return fmt.Sprintf("mouse:%d", int(s.Button))
	}
	return "key:" + s.Key.String()
}

// InputBinding maps one source to one action.
type InputBinding struct {
	Source InputSource
	Action ActionID
}

// Input buffer tuning
const (
	InputBufferCapacity = 30
	InputBufferFrames   = 5
)

// DefaultPlayerBindings returns the out-of-the-box bindings for a player
// slot. Slots beyond the second start empty.
func DefaultPlayerBindings(player int) []InputBinding {
	switch player {
	case 0:
		return []InputBinding{
			{KeySource(ebiten.KeyA), ActionMoveLeft},
			{KeySource(ebiten.KeyD), ActionMoveRight},
			{KeySource(ebiten.KeyW), ActionJump},
			{KeySource(ebiten.KeyS), ActionDuck},
			// Pointer buttons for abilities
			{MouseSource(ebiten.MouseButtonLeft), ActionAbility1},
			{MouseSource(ebiten.MouseButtonRight), ActionAbility2},
			{MouseSource(ebiten.MouseButtonMiddle), ActionAbility3},
		}
	case 1:
		return []InputBinding{
			{KeySource(ebiten.KeyArrowLeft), ActionMoveLeft},
			{KeySource(ebiten.KeyArrowRight), ActionMoveRight},
			{KeySource(ebiten.KeyArrowUp), ActionJump},
			{KeySource(ebiten.KeyArrowDown), ActionDuck},
			{KeySource(ebiten.KeyComma), ActionAbility1},
			{KeySource(ebiten.KeyPeriod), ActionAbility2},
			{KeySource(ebiten.KeySlash), ActionAbility3},
		}
	}
	return nil
}

// GlobalBindings are consulted for every player after their own bindings.
func GlobalBindings() []InputBinding {
	return []InputBinding{
		{KeySource(ebiten.KeyEscape), ActionMenu},
		{KeySource(ebiten.KeyP), ActionPause},
	}
}

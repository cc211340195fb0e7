package input

import (
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// DefaultPlayers is the number of local player slots.
const DefaultPlayers = 4

// Event is a raw press or release of one input source, queued by the host
// and applied before the input tick of the frame.
type Event struct {
	Source  cfg.InputSource
	Pressed bool
	Repeat  bool // OS key repeat; never presses
}

func KeyEvent(k ebiten.Key, pressed, repeat bool) Event {
	return Event{Source: cfg.KeySource(k), Pressed: pressed, Repeat: repeat}
}

func MouseButtonEvent(b ebiten.MouseButton, pressed bool) Event {
	return Event{Source: cfg.MouseSource(b), Pressed: pressed}
}

// Manager routes device events to player input states through each
// player's bindings.
type Manager struct {
	players     []*PlayerState
	bindings    *BindingSet
	localPlayer int
	log         *zap.Logger
}

type ManagerOption func(*Manager)

func WithLogger(l *zap.Logger) ManagerOption {
	return func(m *Manager) { m.log = l }
}

// WithLocalPlayer selects the player that receives pointer buttons.
func WithLocalPlayer(i int) ManagerOption {
	return func(m *Manager) { m.localPlayer = i }
}

func NewManager(players int, opts ...ManagerOption) *Manager {
	m := &Manager{
		players:  make([]*PlayerState, players),
		bindings: NewBindingSet(players),
		log:      zap.NewNop(),
	}
	for i := range m.players {
		m.players[i] = NewPlayerState(i)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Handle applies one event. Keys reach every player whose bindings
// resolve them; pointer buttons reach only the local player.
func (m *Manager) Handle(e Event) {
	switch e.Source.Kind {
	case cfg.SourceKey:
		for i, p := range m.players {
			m.apply(i, p, e)
		}
	case cfg.SourceMouse:
		if p, ok := m.Player(m.localPlayer); ok {
			m.apply(m.localPlayer, p, e)
		}
	}
}

func (m *Manager) HandleKey(k ebiten.Key, pressed, repeat bool) {
	m.Handle(KeyEvent(k, pressed, repeat))
}

func (m *Manager) HandleMouseButton(b ebiten.MouseButton, pressed bool) {
	m.Handle(MouseButtonEvent(b, pressed))
}

func (m *Manager) apply(i int, p *PlayerState, e Event) {
	action, ok := m.bindings.Resolve(i, e.Source)
	if !ok {
		return
	}
	switch {
	case e.Pressed && !e.Repeat:
		p.Press(action)
	case !e.Pressed:
		p.Release(action)
	}
}

// Tick advances every player's input frame exactly once.
func (m *Manager) Tick() {
	for _, p := range m.players {
		p.Tick()
	}
}

func (m *Manager) Player(i int) (*PlayerState, bool) {
	if i < 0 || i >= len(m.players) {
		return nil, false
	}
	return m.players[i], true
}

func (m *Manager) Bindings() *BindingSet {
	return m.bindings
}

// Rebind moves source to action in a player's bindings. Use GlobalPlayer
// to change the shared bindings.
func (m *Manager) Rebind(player int, source cfg.InputSource, action cfg.ActionID) bool {
	b := m.bindings.Global()
	if player != GlobalPlayer {
		var ok bool
		if b, ok = m.bindings.Player(player); !ok {
			return false
		}
	}
	prev, had := b.Action(source)
	b.Bind(source, action)
	m.log.Debug("input rebound",
		zap.Int("player", player),
		zap.Stringer("source", source),
		zap.Stringer("action", action),
		zap.Bool("replaced", had && prev != action),
	)
	return true
}

func (m *Manager) NumPlayers() int {
	return len(m.players)
}

func (m *Manager) AnyPlayerPressed(action cfg.ActionID) bool {
	for _, p := range m.players {
		if p.IsPressed(action) {
			return true
		}
	}
	return false
}

func (m *Manager) AnyPlayerJustPressed(action cfg.ActionID) bool {
	for _, p := range m.players {
		if p.JustPressed(action) {
			return true
		}
	}
	return false
}

// PlayersWhoPressed returns, in slot order, the players that pressed
// action this tick.
func (m *Manager) PlayersWhoPressed(action cfg.ActionID) []int {
	var out []int
	for i, p := range m.players {
		if p.JustPressed(action) {
			out = append(out, i)
		}
	}
	return out
}

func (m *Manager) ResetAll() {
	for _, p := range m.players {
		p.Reset()
	}
}

package input

import (
	"sort"

	cfg "github.com/automoto/doomerang-arena/config"
)

// GlobalPlayer is the player id of the bindings shared by all players.
const GlobalPlayer = -1

// Bindings maps input sources to actions for one player. The forward and
// reverse indexes are only ever changed together, so every source maps to
// at most one action and no action keeps an empty source list.
type Bindings struct {
	playerID int
	bySource map[cfg.InputSource]cfg.ActionID
	byAction map[cfg.ActionID][]cfg.InputSource
}

// NewBindings returns the default bindings for playerID.
func NewBindings(playerID int) *Bindings {
	b := &Bindings{playerID: playerID}
	b.ResetToDefaults()
	return b
}

func (b *Bindings) PlayerID() int {
	return b.playerID
}

// Bind maps source to action. A source that was bound before is moved.
func (b *Bindings) Bind(source cfg.InputSource, action cfg.ActionID) {
	b.UnbindSource(source)
	b.bySource[source] = action
	b.byAction[action] = append(b.byAction[action], source)
}

func (b *Bindings) UnbindSource(source cfg.InputSource) {
	action, ok := b.bySource[source]
	if !ok {
		return
	}
	delete(b.bySource, source)

	sources := b.byAction[action]
	for i, s := range sources {
		if s == source {
			sources = append(sources[:i], sources[i+1:]...)
			break
		}
	}
	if len(sources) == 0 {
		delete(b.byAction, action)
		return
	}
	b.byAction[action] = sources
}

func (b *Bindings) UnbindAction(action cfg.ActionID) {
	for _, s := range b.byAction[action] {
		delete(b.bySource, s)
	}
	delete(b.byAction, action)
}

func (b *Bindings) Action(source cfg.InputSource) (cfg.ActionID, bool) {
	a, ok := b.bySource[source]
	return a, ok
}

// Sources returns the sources bound to action in binding order.
func (b *Bindings) Sources(action cfg.ActionID) []cfg.InputSource {
	sources := b.byAction[action]
	out := make([]cfg.InputSource, len(sources))
	copy(out, sources)
	return out
}

func (b *Bindings) IsBound(source cfg.InputSource) bool {
	_, ok := b.bySource[source]
	return ok
}

func (b *Bindings) HasBinding(action cfg.ActionID) bool {
	return len(b.byAction[action]) > 0
}

func (b *Bindings) Len() int {
	return len(b.bySource)
}

// All returns every binding ordered by action, then by binding order.
func (b *Bindings) All() []cfg.InputBinding {
	actions := make([]cfg.ActionID, 0, len(b.byAction))
	for a := range b.byAction {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	out := make([]cfg.InputBinding, 0, len(b.bySource))
	for _, a := range actions {
		for _, s := range b.byAction[a] {
			out = append(out, cfg.InputBinding{Source: s, Action: a})
		}
	}
	return out
}

func (b *Bindings) Clear() {
	b.bySource = make(map[cfg.InputSource]cfg.ActionID)
	b.byAction = make(map[cfg.ActionID][]cfg.InputSource)
}

func (b *Bindings) ResetToDefaults() {
	b.Clear()
	defaults := cfg.DefaultPlayerBindings(b.playerID)
	if b.playerID == GlobalPlayer {
		defaults = cfg.GlobalBindings()
	}
	for _, binding := range defaults {
		b.Bind(binding.Source, binding.Action)
	}
}

// BindingSet holds the bindings of every player slot plus the global ones.
type BindingSet struct {
	players []*Bindings
	global  *Bindings
}

func NewBindingSet(players int) *BindingSet {
	set := &BindingSet{
		players: make([]*Bindings, players),
		global:  NewBindings(GlobalPlayer),
	}
	for i := range set.players {
		set.players[i] = NewBindings(i)
	}
	return set
}

func (s *BindingSet) Player(i int) (*Bindings, bool) {
	if i < 0 || i >= len(s.players) {
		return nil, false
	}
	return s.players[i], true
}

func (s *BindingSet) Global() *Bindings {
	return s.global
}

// Resolve looks source up in the player's bindings first and falls back
// to the global bindings.
func (s *BindingSet) Resolve(player int, source cfg.InputSource) (cfg.ActionID, bool) {
	b, ok := s.Player(player)
	if !ok {
		return cfg.ActionNone, false
	}
	if a, ok := b.Action(source); ok {
		return a, true
	}
	return s.global.Action(source)
}

func (s *BindingSet) ResetAll() {
	for _, b := range s.players {
		b.ResetToDefaults()
	}
	s.global.ResetToDefaults()
}

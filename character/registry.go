package character

import (
	"errors"
	"fmt"

	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/physics"
	"go.uber.org/zap"
)

var ErrPlayerSlotTaken = errors.New("player slot already has a character")

// Registry owns every character in a match, in spawn order.
type Registry struct {
	world      *physics.World
	characters []*Character
	nextID     CharacterID
	clips      []cfg.ClipDef
	log        *zap.Logger
}

type Option func(*Registry)

func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// WithClips replaces the animation clips given to new characters.
func WithClips(clips []cfg.ClipDef) Option {
	return func(r *Registry) { r.clips = clips }
}

func NewRegistry(world *physics.World, opts ...Option) *Registry {
	r := &Registry{
		world:  world,
		nextID: 1,
		clips:  cfg.CharacterClips(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) World() *physics.World {
	return r.world
}

// Spawn creates a character with its physics body at (x, y). Use NoPlayer
// for a character no input slot drives.
func (r *Registry) Spawn(name string, player int, stats cfg.CharacterStats, x, y float64) (CharacterID, error) {
	if player != NoPlayer && r.IsPlayerTaken(player) {
		return 0, fmt.Errorf("spawn %q for player %d: %w", name, player, ErrPlayerSlotTaken)
	}
	id := r.nextID
	r.nextID++
	r.characters = append(r.characters, newCharacter(id, name, player, stats, r.world, r.clips, r.log, x, y))
	r.log.Info("character spawned",
		zap.Uint32("id", uint32(id)),
		zap.String("name", name),
		zap.Int("player", player),
		zap.Float64("x", x),
		zap.Float64("y", y),
	)
	return id, nil
}

// Remove drops a character and its physics body.
func (r *Registry) Remove(id CharacterID) bool {
	for i, c := range r.characters {
		if c.id != id {
			continue
		}
		r.world.RemoveBody(c.body)
		r.characters = append(r.characters[:i], r.characters[i+1:]...)
		r.log.Info("character removed", zap.Uint32("id", uint32(id)))
		return true
	}
	return false
}

func (r *Registry) Get(id CharacterID) (*Character, bool) {
	for _, c := range r.characters {
		if c.id == id {
			return c, true
		}
	}
	return nil, false
}

func (r *Registry) ByPlayer(player int) (*Character, bool) {
	if player == NoPlayer {
		return nil, false
	}
	for _, c := range r.characters {
		if c.player == player {
			return c, true
		}
	}
	return nil, false
}

func (r *Registry) All() []*Character {
	return r.characters
}

func (r *Registry) Count() int {
	return len(r.characters)
}

func (r *Registry) AliveCount() int {
	n := 0
	for _, c := range r.characters {
		if c.IsAlive() {
			n++
		}
	}
	return n
}

func (r *Registry) IsPlayerTaken(player int) bool {
	_, ok := r.ByPlayer(player)
	return ok
}

// Update runs one tick for every character: requested jump, movement and
// state, animation clock, landing poll, then the jump flag is cleared.
func (r *Registry) Update(dt float64) {
	for _, c := range r.characters {
		c.jumped = false
		if c.jumpRequested {
			c.TryJump()
		}
		c.UpdateMovement(dt)
		c.UpdateAnimationTiming(dt)
		c.PollLanding()
		c.ClearInput()
	}
}

func (r *Registry) RenderStates() []RenderState {
	out := make([]RenderState, 0, len(r.characters))
	for _, c := range r.characters {
		out = append(out, c.RenderState())
	}
	return out
}

package character

import (
	stdmath "math"

	"github.com/automoto/doomerang-arena/assets/animations"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/physics"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// CharacterID identifies a character within a registry. IDs are never
// reused.
type CharacterID uint32

// NoPlayer marks a character that no input slot drives.
const NoPlayer = -1

// RenderState is what the renderer needs to draw one character.
type RenderState struct {
	ID        CharacterID
	X, Y      float64 // body center in world units
	Width     float64
	Height    float64
	FlipX     bool
	Animation string
	Frame     int
	State     cfg.StateID
	Health    float64
}

type Character struct {
	id       CharacterID
	name     string
	player   int
	world    *physics.World
	body     physics.BodyHandle
	collider physics.ColliderHandle
	stats    cfg.CharacterStats
	sm       *StateMachine
	anim     *animations.Player
	log      *zap.Logger

	health         float64
	jumpsRemaining int
	facing         float64 // 1 right, -1 left
	knockback      math.Vec2

	// Per-frame input
	inputX        float64
	jumpRequested bool
	duckHeld      bool
	jumped        bool // a jump fired during the last update
}

func newCharacter(id CharacterID, name string, player int, stats cfg.CharacterStats, world *physics.World, clips []cfg.ClipDef, log *zap.Logger, x, y float64) *Character {
	body := physics.PlayerBody(x, y)
	body.GravityScale = stats.GravityScale
	c := &Character{
		id:             id,
		name:           name,
		player:         player,
		world:          world,
		stats:          stats,
		sm:             NewStateMachine(),
		anim:           animations.NewCharacterPlayer(clips),
		log:            log,
		health:         stats.MaxHealth,
		jumpsRemaining: stats.MaxJumps,
		facing:         1,
	}
	body.UserData = id
	c.body = world.AddBody(body)
	c.collider, _ = world.AddCollider(physics.PlayerCollider(stats.Width, stats.Height), c.body)
	return c
}

func (c *Character) ID() CharacterID               { return c.id }
func (c *Character) Name() string                  { return c.name }
func (c *Character) Stats() cfg.CharacterStats     { return c.stats }
func (c *Character) StateMachine() *StateMachine   { return c.sm }
func (c *Character) Animation() *animations.Player { return c.anim }
func (c *Character) Body() physics.BodyHandle      { return c.body }
func (c *Character) Collider() physics.ColliderHandle {
	return c.collider
}

// Player returns the input slot driving the character.
func (c *Character) Player() (int, bool) {
	return c.player, c.player != NoPlayer
}

func (c *Character) State() cfg.StateID  { return c.sm.State() }
func (c *Character) Health() float64     { return c.health }
func (c *Character) JumpsRemaining() int { return c.jumpsRemaining }
func (c *Character) Facing() float64     { return c.facing }
func (c *Character) IsAlive() bool       { return c.sm.State() != cfg.StateDead }

// PendingKnockback is the knockback from the last hit. Nothing applies it
// to the body yet.
func (c *Character) PendingKnockback() math.Vec2 {
	return c.knockback
}

// SetInput stores this frame's input. The jump flag is one-shot and is
// cleared after the update that consumed it.
func (c *Character) SetInput(horizontal float64, jump, duck bool) {
	c.inputX = max(-1, min(1, horizontal))
	c.jumpRequested = c.jumpRequested || jump
	c.duckHeld = duck
}

// ClearInput drops the one-shot jump request. Held inputs stay.
func (c *Character) ClearInput() {
	c.jumpRequested = false
}

func (c *Character) JumpRequested() bool { return c.jumpRequested }

// JustJumped reports whether a jump fired during the last registry update.
func (c *Character) JustJumped() bool { return c.jumped }

func (c *Character) physicsBody() (*physics.Body, bool) {
	return c.world.Body(c.body)
}

func (c *Character) Position() (math.Vec2, bool) {
	b, ok := c.physicsBody()
	if !ok {
		return math.Vec2{}, false
	}
	return b.Position(), true
}

func (c *Character) Velocity() (math.Vec2, bool) {
	b, ok := c.physicsBody()
	if !ok {
		return math.Vec2{}, false
	}
	return b.Velocity(), true
}

func (c *Character) SetPosition(x, y float64) {
	if b, ok := c.physicsBody(); ok {
		b.SetPosition(math.Vec2{X: x, Y: y})
	}
}

// IsGrounded casts a short ray down from just above the feet.
func (c *Character) IsGrounded() bool {
	b, ok := c.physicsBody()
	if !ok {
		return false
	}
	p := b.Position()
	origin := math.Vec2{X: p.X, Y: p.Y - c.stats.Height/2 + cfg.GroundRayOffset}
	_, hit := c.world.Raycast(origin, math.Vec2{X: 0, Y: -1}, cfg.GroundRayLength, true,
		physics.RayFilter{ExcludeBody: c.body, ExcludeSensors: true})
	return hit
}

// TryJump launches the character if its state allows a jump and jumps
// remain. The vertical velocity is overwritten.
func (c *Character) TryJump() bool {
	if !c.sm.State().CanJump() || c.jumpsRemaining <= 0 {
		return false
	}
	b, ok := c.physicsBody()
	if !ok {
		return false
	}
	v := b.Velocity()
	v.Y = c.stats.JumpForce
	b.SetVelocity(v)
	c.jumpsRemaining--
	c.sm.Jump()
	c.jumped = true
	return true
}

// UpdateMovement reads ground contact, applies horizontal input and the
// fast fall floor, and advances the state machine.
func (c *Character) UpdateMovement(dt float64) {
	b, ok := c.physicsBody()
	if !ok {
		return
	}
	grounded := c.IsGrounded()
	v := b.Velocity()

	canMove := c.sm.State().CanMove()
	moving := stdmath.Abs(c.inputX) > cfg.MoveDeadzone
	if canMove {
		switch {
		case moving:
			speed := c.inputX * c.stats.MoveSpeed
			if !grounded {
				speed *= c.stats.AirControl
			}
			v.X = speed
			if c.inputX > 0 {
				c.facing = 1
			} else {
				c.facing = -1
			}
		case grounded:
			v.X = 0
		}

		if c.duckHeld && !grounded && v.Y < 0 {
			v.Y = min(v.Y, -c.stats.MoveSpeed*c.stats.FastFallMultiplier)
		}
		b.SetVelocity(v)
	}

	c.sm.Update(dt, grounded, v.Y, c.duckHeld)
	if canMove && grounded {
		if moving {
			c.sm.StartWalking()
		} else {
			c.sm.StopWalking()
		}
	}
	c.updateAnimation()
}

func (c *Character) updateAnimation() {
	c.anim.Play(c.sm.State().AnimationName())
	c.anim.SetFlipX(c.facing < 0)
}

// UpdateAnimationTiming advances the animation clock.
func (c *Character) UpdateAnimationTiming(dt float64) {
	c.anim.Update(dt)
}

// PollLanding resets jumps when an airborne character touches ground while
// not rising. It reports whether a landing happened.
func (c *Character) PollLanding() bool {
	if !c.sm.State().IsAirborne() {
		return false
	}
	v, ok := c.Velocity()
	if !ok || v.Y > 0 || !c.IsGrounded() {
		return false
	}
	c.OnLand()
	return true
}

func (c *Character) OnLand() {
	c.jumpsRemaining = c.stats.MaxJumps
	c.sm.SetGrounded(stdmath.Abs(c.inputX) > cfg.MoveDeadzone)
}

// TakeDamage subtracts health and applies hit stun. The knockback vector
// is kept for the caller to apply.
func (c *Character) TakeDamage(amount, kx, ky float64) {
	if !c.IsAlive() {
		return
	}
	c.health = max(0, c.health-amount)
	c.knockback = math.Vec2{X: kx, Y: ky}
	c.sm.ApplyHitStun(cfg.HitStunBase + amount*cfg.HitStunPerPoint)
	c.log.Debug("character damaged",
		zap.Uint32("id", uint32(c.id)),
		zap.Float64("amount", amount),
		zap.Float64("health", c.health))
	if c.health <= 0 {
		c.Die()
	}
}

func (c *Character) Die() {
	c.sm.Die()
	c.updateAnimation()
	c.log.Info("character died", zap.Uint32("id", uint32(c.id)), zap.String("name", c.name))
}

// Respawn teleports the character, zeroes its velocity and restores health
// and jumps.
func (c *Character) Respawn(x, y float64) {
	if b, ok := c.physicsBody(); ok {
		b.SetPosition(math.Vec2{X: x, Y: y})
		b.SetVelocity(math.Vec2{})
	}
	c.health = c.stats.MaxHealth
	c.jumpsRemaining = c.stats.MaxJumps
	c.knockback = math.Vec2{}
	c.sm.Respawn()
	c.updateAnimation()
	c.log.Info("character respawned", zap.Uint32("id", uint32(c.id)), zap.Float64("x", x), zap.Float64("y", y))
}

func (c *Character) RenderState() RenderState {
	p, _ := c.Position()
	fd := c.anim.FrameData()
	return RenderState{
		ID:        c.id,
		X:         p.X,
		Y:         p.Y,
		Width:     c.stats.Width,
		Height:    c.stats.Height,
		FlipX:     fd.FlipX,
		Animation: fd.Animation,
		Frame:     fd.Frame,
		State:     c.sm.State(),
		Health:    c.health,
	}
}

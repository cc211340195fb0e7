package scenes

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"github.com/automoto/doomerang-arena/arena"
	"github.com/automoto/doomerang-arena/assets"
	"github.com/automoto/doomerang-arena/character"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/fonts"
	"github.com/automoto/doomerang-arena/input"
	"github.com/automoto/doomerang-arena/loop"
	"github.com/automoto/doomerang-arena/systems"
	"github.com/automoto/doomerang-arena/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

var pointerButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// ArenaScene runs one local match on a single arena. Device input is
// queued every frame and the simulation advances in fixed steps owed by
// the clock.
type ArenaScene struct {
	ecs      *ecs.ECS
	settings *cfg.Settings
	layout   *arena.Layout
	log      *zap.Logger
	clock    *loop.Clock

	keys []ebiten.Key
	last time.Time

	once sync.Once
	err  error
}

func NewArenaScene(s *cfg.Settings, layout *arena.Layout, log *zap.Logger) *ArenaScene {
	return &ArenaScene{settings: s, layout: layout, log: log}
}

func (as *ArenaScene) Update() error {
	as.once.Do(func() { as.err = as.configure() })
	if as.err != nil {
		return as.err
	}

	as.pollInput()

	now := time.Now()
	frame := as.clock.Step()
	if !as.last.IsZero() {
		frame = now.Sub(as.last)
	}
	as.last = now

	n := as.clock.BeginFrame(frame)
	if n == 0 && as.clock.IsPaused() {
		// input systems still run so the pause can be lifted
		as.ecs.Update()
		return nil
	}
	for i := 0; i < n; i++ {
		as.ecs.Update()
	}
	return nil
}

// pollInput turns this frame's key and pointer edges into queued events.
func (as *ArenaScene) pollInput() {
	as.keys = inpututil.AppendJustPressedKeys(as.keys[:0])
	for _, k := range as.keys {
		systems.QueueInput(as.ecs, input.KeyEvent(k, true, false))
	}
	as.keys = inpututil.AppendJustReleasedKeys(as.keys[:0])
	for _, k := range as.keys {
		systems.QueueInput(as.ecs, input.KeyEvent(k, false, false))
	}
	for _, b := range pointerButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			systems.QueueInput(as.ecs, input.MouseButtonEvent(b, true))
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			systems.QueueInput(as.ecs, input.MouseButtonEvent(b, false))
		}
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() error {
	s := as.settings

	clock, err := loop.FromConfig(s.Loop, loop.WithLogger(as.log))
	if err != nil {
		return err
	}
	as.clock = clock

	// Tinting falls back to color scaling without the shader
	tint, err := assets.LoadTintShader()
	if err != nil {
		as.log.Warn("tint shader unavailable", zap.Error(err))
	}
	fontSet, err := fonts.NewSet()
	if err != nil {
		as.log.Warn("fonts unavailable", zap.Error(err))
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateInputTick)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayerInput))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCharacters))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlatforms))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateHazards))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateRespawns))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)

	as.ecs = ecs

	factory.CreateArena(ecs, as.layout, s.Physics, s.Arena)
	if _, err := factory.CreateRoster(ecs,
		character.WithLogger(as.log),
		character.WithClips(s.Animation.Clips),
	); err != nil {
		return err
	}
	factory.CreateInput(ecs, input.NewManager(s.Input.Players,
		input.WithLogger(as.log),
		input.WithLocalPlayer(s.Input.LocalPlayer),
	))
	factory.CreateClock(ecs, clock)
	factory.CreateCamera(ecs, as.layout, s.Window.Width, s.Window.Height)
	factory.CreateRender(ecs, components.RenderData{
		Sheet: assets.PlaceholderSheet(s.Animation.Sheet, s.Animation.Clips),
		Tint:  tint,
		Fonts: fontSet,
		Debug: s.Debug,
	})

	for i := 0; i < s.Input.Players; i++ {
		if _, err := factory.CreatePlayer(ecs, i, s.Character); err != nil {
			return fmt.Errorf("arena %s: %w", as.layout.Name, err)
		}
	}

	as.log.Info("arena ready",
		zap.String("arena", as.layout.Name),
		zap.Int("players", s.Input.Players),
		zap.Int("tick_rate", s.Loop.TickRate),
	)
	return nil
}

package config

import "github.com/yohamta/donburi/ecs"

// Render layers
const (
	Default ecs.LayerID = iota
	HUD
)

// WindowConfig contains window and debug-render values
type WindowConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Title         string  `yaml:"title"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
}

// LoopConfig contains fixed-timestep values
type LoopConfig struct {
	TickRate   int    `yaml:"tick_rate"` // fixed updates per second
	MaxSteps   int    `yaml:"max_steps"` // cap on fixed updates per rendered frame
	Overflow   string `yaml:"overflow"`  // "drop" or "carry"
	FPSWindow  int    `yaml:"fps_window"`
	FPSRefresh int    `yaml:"fps_refresh"` // frames between FPS recalculations
}

// PhysicsConfig contains physics world values
type PhysicsConfig struct {
	GravityX float64 `yaml:"gravity_x"`
	GravityY float64 `yaml:"gravity_y"`
	CellSize int     `yaml:"cell_size"` // broadphase cell in world units
}

// InputConfig contains input manager values
type InputConfig struct {
	Players     int `yaml:"players"`
	LocalPlayer int `yaml:"local_player"` // receives pointer buttons
}

// AnimationConfig contains sprite sheet and clip definitions
type AnimationConfig struct {
	Sheet SheetDef  `yaml:"sheet"`
	Clips []ClipDef `yaml:"clips"`
}

// ArenaConfig contains arena layout values
type ArenaConfig struct {
	Path       string  `yaml:"path"` // TMX file; empty uses the embedded arena
	KillPlaneY float64 `yaml:"kill_plane_y"`
	FallDamage float64 `yaml:"fall_damage"`
}

// LoggingConfig contains logger values
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty logs to stderr only
}

type DebugConfig struct {
	DrawColliders bool `yaml:"draw_colliders"`
	ShowHUD       bool `yaml:"show_hud"`
}

// Settings is the full configuration passed down from main. Nothing in the
// repo reads configuration from package state.
type Settings struct {
	Window    WindowConfig    `yaml:"window"`
	Loop      LoopConfig      `yaml:"loop"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Input     InputConfig     `yaml:"input"`
	Character CharacterStats  `yaml:"character"`
	Animation AnimationConfig `yaml:"animation"`
	Arena     ArenaConfig     `yaml:"arena"`
	Logging   LoggingConfig   `yaml:"logging"`
	Debug     DebugConfig     `yaml:"debug"`
}

// Defaults returns the settings used when no file is given.
func Defaults() *Settings {
	return &Settings{
		Window: WindowConfig{
			Width:         1280,
			Height:        720,
			Title:         "Doomerang Arena",
			PixelsPerUnit: 16,
		},
		Loop: LoopConfig{
			TickRate:   60,
			MaxSteps:   5,
			Overflow:   "drop",
			FPSWindow:  60,
			FPSRefresh: 10,
		},
		Physics: PhysicsConfig{
			GravityX: 0,
			GravityY: -60,
			CellSize: 1,
		},
		Input: InputConfig{
			Players:     4,
			LocalPlayer: 0,
		},
		Character: BaseStats(),
		Animation: AnimationConfig{
			Sheet: CharacterSheet(),
			Clips: CharacterClips(),
		},
		Arena: ArenaConfig{
			KillPlaneY: -10,
			FallDamage: 25,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Debug: DebugConfig{
			DrawColliders: false,
			ShowHUD:       true,
		},
	}
}

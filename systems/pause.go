package systems

import (
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the clock's pause flag when any player presses
// pause or menu. Runs AFTER UpdateInput but BEFORE UpdateInputTick.
func UpdatePause(ecs *ecs.ECS) {
	in, ok := getInput(ecs)
	if !ok {
		return
	}
	clk, ok := getClock(ecs)
	if !ok {
		return
	}
	if in.Manager.AnyPlayerJustPressed(cfg.ActionPause) || in.Manager.AnyPlayerJustPressed(cfg.ActionMenu) {
		clk.TogglePause()
	}
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

package components

import (
	"github.com/automoto/doomerang-arena/assets"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// RenderData holds what the renderers need beyond the simulation.
type RenderData struct {
	Sheet *assets.SpriteSheet
	Tint  *ebiten.Shader // nil falls back to color scaling
	Fonts *fonts.Set
	Debug cfg.DebugConfig
}

var Render = donburi.NewComponentType[RenderData]()

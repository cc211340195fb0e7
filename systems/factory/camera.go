package factory

import (
	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/arena"
	"github.com/automoto/doomerang-arena/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera fits the whole arena on a screen of the given size,
// centered with letterboxing.
func CreateCamera(ecs *ecs.ECS, layout *arena.Layout, screenW, screenH int) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, FitCamera(layout, screenW, screenH))
	return camera
}

func FitCamera(layout *arena.Layout, screenW, screenH int) components.CameraData {
	w, h := float64(screenW), float64(screenH)
	scale := float64(arena.PixelsPerUnit)
	if layout.Width > 0 && layout.Height > 0 {
		scale = min(w/layout.Width, h/layout.Height)
	}
	return components.CameraData{
		Scale:   scale,
		OffsetX: (w - layout.Width*scale) / 2,
		OffsetY: (h - layout.Height*scale) / 2,
		ScreenH: h,
	}
}

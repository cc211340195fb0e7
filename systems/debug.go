package systems

import (
	"image/color"

	"github.com/automoto/doomerang-arena/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collider in the physics world.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	rd, ok := getRender(ecs)
	if !ok || !rd.Debug.DrawColliders {
		return
	}
	pd, ok := getPhysics(ecs)
	if !ok {
		return
	}
	cam, ok := getCamera(ecs)
	if !ok {
		return
	}

	for _, col := range pd.World.Colliders() {
		box, ok := pd.World.ColliderAABB(col.Handle())
		if !ok {
			continue
		}

		c := color.RGBA{100, 100, 100, 255} // Grey
		switch {
		case col.IsSensor():
			c = color.RGBA{255, 255, 0, 255}
		case col.Category() == physics.CategoryPlayer:
			c = color.RGBA{0, 0, 255, 255}
		case col.Category() == physics.CategoryProjectile:
			c = color.RGBA{0, 255, 0, 255}
		}

		x, y := cam.ToScreen(box.MinX, box.MaxY)
		w, h := box.Width()*cam.Scale, box.Height()*cam.Scale
		vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
		vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
		vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
	}
}

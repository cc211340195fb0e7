package systems

import (
	"image/color"

	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/physics"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// share of a frame's height taken by the character's body
const spriteBodyRatio = 0.8

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}

	platformColor = color.RGBA{90, 90, 110, 255}
	movingColor   = color.RGBA{120, 140, 200, 255}
	hazardColor   = color.RGBA{200, 40, 40, 160}
)

// DrawArena renders platforms and hazards as filled boxes.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	pd, ok := getPhysics(ecs)
	if !ok {
		return
	}
	cam, ok := getCamera(ecs)
	if !ok {
		return
	}
	draw := func(clr color.Color) func(*donburi.Entry) {
		return func(e *donburi.Entry) {
			b, ok := pd.World.Body(components.Body.Get(e).Handle)
			if !ok {
				return
			}
			for _, h := range b.Colliders() {
				if box, ok := pd.World.ColliderAABB(h); ok {
					fillBox(screen, cam, box, clr)
				}
			}
		}
	}
	tags.Platform.Each(ecs.World, draw(platformColor))
	tags.MovingPlatform.Each(ecs.World, draw(movingColor))
	tags.Hazard.Each(ecs.World, draw(hazardColor))
}

func fillBox(screen *ebiten.Image, cam *components.CameraData, box physics.AABB, clr color.Color) {
	x, y := cam.ToScreen(box.MinX, box.MaxY)
	vector.FillRect(screen,
		float32(x), float32(y),
		float32(box.Width()*cam.Scale), float32(box.Height()*cam.Scale),
		clr, false)
}

// DrawCharacters renders each player's character from the sprite sheet,
// anchored at the feet and tinted with the player's color.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	rd, ok := getRender(ecs)
	if !ok || rd.Sheet == nil {
		return
	}
	cam, ok := getCamera(ecs)
	if !ok {
		return
	}
	reg, ok := getRegistry(ecs)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		c, ok := reg.Get(p.Character)
		if !ok {
			return
		}
		rs := c.RenderState()
		img := rd.Sheet.Frame(rs.Animation, rs.Frame)
		if img == nil {
			return
		}
		fw, fh := img.Bounds().Dx(), img.Bounds().Dy()
		scale := rs.Height * cam.Scale / (spriteBodyRatio * float64(fh))
		footX, footY := cam.ToScreen(rs.X, rs.Y-rs.Height/2)

		// Characters: anchor at bottom-center so feet line up with collision box
		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(-float64(fw)/2, -float64(fh))
		if rs.FlipX {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Scale(scale, scale)
		drawOp.GeoM.Translate(footX, footY)

		if rd.Tint != nil {
			shaderOp.GeoM = drawOp.GeoM
			shaderOp.Images[0] = img
			shaderOp.Uniforms = map[string]any{
				"Tint": []float32{
					float32(p.Tint.R) / 255,
					float32(p.Tint.G) / 255,
					float32(p.Tint.B) / 255,
					float32(p.Tint.A) / 255,
				},
			}
			screen.DrawRectShader(fw, fh, rd.Tint, shaderOp)
			return
		}
		drawOp.ColorScale.Reset()
		drawOp.ColorScale.ScaleWithColor(p.Tint)
		screen.DrawImage(img, drawOp)
	})
}

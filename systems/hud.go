package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/doomerang-arena/components"
	"github.com/automoto/doomerang-arena/fonts"
	"github.com/automoto/doomerang-arena/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 8
	hudMargin    = 10
	hudRowHeight = 36
)

// DrawHUD renders a health bar and status line per player, the frame rate
// and the pause banner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	rd, ok := getRender(ecs)
	if !ok || !rd.Debug.ShowHUD {
		return
	}
	reg, ok := getRegistry(ecs)
	if !ok {
		return
	}
	face := rd.Fonts.Face(fonts.Regular)

	row := 0
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Player.Get(e)
		c, ok := reg.Get(p.Character)
		if !ok {
			return
		}
		y := hudMargin + row*hudRowHeight
		row++

		// Background (dark gray)
		vector.FillRect(screen,
			float32(hudMargin), float32(y),
			float32(hudBarWidth), float32(hudBarHeight),
			color.RGBA{40, 40, 40, 255}, false)

		ratio := float32(0)
		if maxHP := c.Stats().MaxHealth; maxHP > 0 {
			ratio = float32(c.Health() / maxHP)
		}
		vector.FillRect(screen,
			float32(hudMargin), float32(y),
			float32(hudBarWidth)*ratio, float32(hudBarHeight),
			p.Tint, false)

		line := fmt.Sprintf("P%d %s  %.0f HP  falls %d  deaths %d",
			p.Index+1, c.State(), c.Health(), p.Falls, p.Deaths)
		text.Draw(screen, line, face, hudMargin, y+hudBarHeight+16, color.White)
	})

	clk, ok := getClock(ecs)
	if !ok {
		return
	}
	w := screen.Bounds().Dx()
	small := rd.Fonts.Face(fonts.Small)
	text.Draw(screen, fmt.Sprintf("%.0f FPS", clk.FPS()), small, w-60, hudMargin+10, color.White)

	if clk.IsPaused() {
		title := rd.Fonts.Face(fonts.Title)
		msg := "PAUSED"
		adv := text.BoundString(title, msg).Dx()
		text.Draw(screen, msg, title, (w-adv)/2, screen.Bounds().Dy()/2, color.White)
	}
}

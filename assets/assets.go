package assets

import (
	"embed"
	"fmt"
	"image"
	"image/color"
	"io/fs"

	"github.com/automoto/doomerang-arena/assets/animations"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

//go:embed arenas/*.tmx
var arenaFS embed.FS

// ArenaDir is the directory of the embedded arena maps.
const ArenaDir = "arenas"

// Arenas returns the embedded arena maps.
func Arenas() fs.FS {
	return arenaFS
}

// SpriteSheet caches sub-images of one character sheet so each frame is
// cut only once.
type SpriteSheet struct {
	image  *ebiten.Image
	layout *animations.SheetLayout
	frames map[string]*ebiten.Image
}

func NewSpriteSheet(img *ebiten.Image, layout *animations.SheetLayout) *SpriteSheet {
	return &SpriteSheet{
		image:  img,
		layout: layout,
		frames: make(map[string]*ebiten.Image),
	}
}

// Frame returns the image for frame of anim, or nil if the sheet has no
// such region.
func (s *SpriteSheet) Frame(anim string, frame int) *ebiten.Image {
	key := fmt.Sprintf("%s/%d", anim, frame)
	if img, ok := s.frames[key]; ok {
		return img
	}
	r, ok := s.layout.FrameRect(anim, frame)
	if !ok || !r.In(s.image.Bounds()) {
		return nil
	}
	img := s.image.SubImage(r).(*ebiten.Image)
	s.frames[key] = img
	return img
}

func (s *SpriteSheet) Layout() *animations.SheetLayout {
	return s.layout
}

// PlaceholderSheet draws a grey character sheet: one row per animation,
// each frame a body whose pose shifts with the frame index. It stands in
// until real art is packaged.
func PlaceholderSheet(sheet cfg.SheetDef, clips []cfg.ClipDef) *SpriteSheet {
	layout := animations.NewSheetLayout(sheet, clips)
	w := sheet.FrameWidth * layout.Columns
	h := sheet.FrameHeight * layout.Rows()
	img := ebiten.NewImage(max(1, w), max(1, h))

	body := color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	eye := color.RGBA{A: 0xff}
	fw, fh := float32(sheet.FrameWidth), float32(sheet.FrameHeight)
	for _, c := range clips {
		for f := 0; f < c.Frames; f++ {
			r, ok := layout.FrameRect(c.Name, f)
			if !ok {
				continue
			}
			drawPose(img, r, c.Name, f, fw, fh, body, eye)
		}
	}
	return NewSpriteSheet(img, layout)
}

func drawPose(img *ebiten.Image, r image.Rectangle, anim string, frame int, fw, fh float32, body, eye color.Color) {
	x, y := float32(r.Min.X), float32(r.Min.Y)
	bob := float32(frame%4) * fh / 64
	bw, bh := fw*0.5, fh*0.8
	switch anim {
	case cfg.AnimDuck:
		bh = fh * 0.5
	case cfg.AnimDead:
		bw, bh = fw*0.8, fh*0.25
	}
	bx := x + (fw-bw)/2
	by := y + fh - bh - bob
	vector.FillRect(img, bx, by, bw, bh, body, false)
	// facing right
	vector.FillRect(img, bx+bw*0.65, by+bh*0.15, bw*0.15, bw*0.15, eye, false)
}

package animations

import (
	"image"

	cfg "github.com/automoto/doomerang-arena/config"
)

// SheetLayout maps an animation frame to its region in a sprite sheet.
// Each animation occupies a row; frames beyond the column count wrap onto
// the following rows.
type SheetLayout struct {
	FrameWidth  int
	FrameHeight int
	Columns     int
	rows        map[string]int
}

func NewSheetLayout(sheet cfg.SheetDef, clips []cfg.ClipDef) *SheetLayout {
	l := &SheetLayout{
		FrameWidth:  sheet.FrameWidth,
		FrameHeight: sheet.FrameHeight,
		Columns:     max(1, sheet.Columns),
		rows:        make(map[string]int, len(clips)),
	}
	for _, c := range clips {
		l.rows[c.Name] = c.Row
	}
	return l
}

func (l *SheetLayout) Row(anim string) (int, bool) {
	r, ok := l.rows[anim]
	return r, ok
}

// Rows is the number of sheet rows the layout references.
func (l *SheetLayout) Rows() int {
	n := 0
	for _, r := range l.rows {
		n = max(n, r+1)
	}
	return n
}

// FrameRect returns the pixel rectangle of frame in anim.
func (l *SheetLayout) FrameRect(anim string, frame int) (image.Rectangle, bool) {
	row, ok := l.rows[anim]
	if !ok || frame < 0 {
		return image.Rectangle{}, false
	}
	col := frame % l.Columns
	row += frame / l.Columns
	x := col * l.FrameWidth
	y := row * l.FrameHeight
	return image.Rect(x, y, x+l.FrameWidth, y+l.FrameHeight), true
}

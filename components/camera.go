package components

import (
	"github.com/yohamta/donburi"
)

// CameraData maps world units (y up) to screen pixels (y down).
type CameraData struct {
	Scale   float64 // pixels per world unit
	OffsetX float64
	OffsetY float64
	ScreenH float64
}

// ToScreen converts a world point to screen pixels.
func (c *CameraData) ToScreen(x, y float64) (float64, float64) {
	return x*c.Scale + c.OffsetX, c.ScreenH - (y*c.Scale + c.OffsetY)
}

var Camera = donburi.NewComponentType[CameraData]()

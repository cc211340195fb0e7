package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PlatformMotionData moves a kinematic platform from Start by Travel and
// back. Out and Back run from 0 to 1 and 1 to 0 along the path.
type PlatformMotionData struct {
	Start     math.Vec2
	Travel    math.Vec2
	Out       *gween.Tween
	Back      *gween.Tween
	Returning bool
}

var PlatformMotion = donburi.NewComponentType[PlatformMotionData]()

package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Platform       = donburi.NewTag().SetName("Platform")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
	Hazard         = donburi.NewTag().SetName("Hazard")
)

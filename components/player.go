package components

import (
	"image/color"

	"github.com/automoto/doomerang-arena/character"
	"github.com/yohamta/donburi"
)

// PlayerData ties an input slot to the character it drives.
type PlayerData struct {
	Index     int
	Character character.CharacterID
	Tint      color.RGBA
	Falls     int // times the character left the arena
	Deaths    int
}

var Player = donburi.NewComponentType[PlayerData]()

// RosterData holds the character registry.
type RosterData struct {
	Registry *character.Registry
}

var Roster = donburi.NewComponentType[RosterData]()

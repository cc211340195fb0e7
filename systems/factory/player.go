package factory

import (
	"fmt"
	"image/color"

	"github.com/automoto/doomerang-arena/archetypes"
	"github.com/automoto/doomerang-arena/character"
	"github.com/automoto/doomerang-arena/components"
	cfg "github.com/automoto/doomerang-arena/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerTints are the sprite colors of players 1 to 4.
var PlayerTints = []color.RGBA{
	{255, 90, 90, 255},
	{90, 160, 255, 255},
	{120, 230, 110, 255},
	{250, 210, 80, 255},
}

// CreatePlayer spawns a character for input slot index at the arena spawn
// point of that slot.
func CreatePlayer(ecs *ecs.ECS, index int, stats cfg.CharacterStats) (*donburi.Entry, error) {
	rosterEntry, ok := components.Roster.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("create player %d: no roster", index)
	}
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("create player %d: no arena", index)
	}
	reg := components.Roster.Get(rosterEntry).Registry
	spawn := components.Arena.Get(arenaEntry).Layout.Spawn(index)

	id, err := reg.Spawn(fmt.Sprintf("player%d", index+1), index, stats, spawn.X, spawn.Y)
	if err != nil {
		return nil, err
	}

	player := archetypes.Player.Spawn(ecs)
	components.Player.SetValue(player, components.PlayerData{
		Index:     index,
		Character: id,
		Tint:      PlayerTints[index%len(PlayerTints)],
	})

	return player, nil
}

// CreateRoster adds the character registry for the physics world created
// by CreateArena.
func CreateRoster(ecs *ecs.ECS, opts ...character.Option) (*donburi.Entry, error) {
	worldEntry, ok := components.Physics.First(ecs.World)
	if !ok {
		return nil, fmt.Errorf("create roster: no physics world")
	}
	roster := archetypes.Roster.Spawn(ecs)
	components.Roster.SetValue(roster, components.RosterData{
		Registry: character.NewRegistry(components.Physics.Get(worldEntry).World, opts...),
	})

	return roster, nil
}

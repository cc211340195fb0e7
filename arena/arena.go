// Package arena loads arena layouts from Tiled maps. Layouts are pure data
// in world units with y pointing up.
package arena

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

// PixelsPerUnit converts Tiled pixels to world units.
const PixelsPerUnit = 16

var (
	ErrNoSpawns = errors.New("arena has no player spawns")
	ErrNoArenas = errors.New("no arenas found")
)

// Box is an axis-aligned rectangle given by its center.
type Box struct {
	Center        math.Vec2
	Width, Height float64
}

// MovingPlatform travels from its start by Travel and back, taking
// Duration seconds each way.
type MovingPlatform struct {
	Box
	Travel   math.Vec2
	Duration float64
}

type Hazard struct {
	Box
	Damage float64
}

type SpawnPoint struct {
	Position math.Vec2
	Index    int
}

type Layout struct {
	Name            string
	Width, Height   float64
	Platforms       []Box
	MovingPlatforms []MovingPlatform
	Hazards         []Hazard
	Spawns          []SpawnPoint // sorted by Index
}

// Load parses a TMX map. It takes an fs.FS so callers can pass the embedded
// arenas or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Layout, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	heightPx := float64(m.Height * m.TileHeight)
	l := &Layout{
		Name:   strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		Width:  float64(m.Width*m.TileWidth) / PixelsPerUnit,
		Height: heightPx / PixelsPerUnit,
	}

	toBox := func(o *tiled.Object) Box {
		return Box{
			Center: math.Vec2{
				X: (o.X + o.Width/2) / PixelsPerUnit,
				Y: (heightPx - o.Y - o.Height/2) / PixelsPerUnit,
			},
			Width:  o.Width / PixelsPerUnit,
			Height: o.Height / PixelsPerUnit,
		}
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "Platforms":
			for _, o := range og.Objects {
				l.Platforms = append(l.Platforms, toBox(o))
			}
		case "MovingPlatforms":
			for _, o := range og.Objects {
				l.MovingPlatforms = append(l.MovingPlatforms, MovingPlatform{
					Box: toBox(o),
					Travel: math.Vec2{
						X: o.Properties.GetFloat("travelX") / PixelsPerUnit,
						Y: -o.Properties.GetFloat("travelY") / PixelsPerUnit,
					},
					Duration: o.Properties.GetFloat("duration"),
				})
			}
		case "Hazards":
			for _, o := range og.Objects {
				l.Hazards = append(l.Hazards, Hazard{
					Box:    toBox(o),
					Damage: o.Properties.GetFloat("damage"),
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				l.Spawns = append(l.Spawns, SpawnPoint{
					Position: math.Vec2{X: o.X / PixelsPerUnit, Y: (heightPx - o.Y) / PixelsPerUnit},
					Index:    o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if len(l.Spawns) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawns)
	}
	sort.SliceStable(l.Spawns, func(i, j int) bool {
		return l.Spawns[i].Index < l.Spawns[j].Index
	})
	return l, nil
}

// LoadAll loads every .tmx file in dir, keyed by file stem, plus the sorted
// list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Layout, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", dir, ErrNoArenas)
	}

	layouts := make(map[string]*Layout, len(matches))
	names := make([]string, 0, len(matches))
	for _, p := range matches {
		l, err := Load(fsys, p)
		if err != nil {
			return nil, nil, err
		}
		layouts[l.Name] = l
		names = append(names, l.Name)
	}
	sort.Strings(names)
	return layouts, names, nil
}

// Spawn returns the spawn point for a player slot. Slots beyond the number
// of spawns wrap around.
func (l *Layout) Spawn(player int) math.Vec2 {
	if len(l.Spawns) == 0 || player < 0 {
		return math.Vec2{X: l.Width / 2, Y: l.Height / 2}
	}
	return l.Spawns[player%len(l.Spawns)].Position
}

package arena

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/doomerang-arena/assets"
	"github.com/automoto/doomerang-arena/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

const smallTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="5" nextobjectid="8">
 <objectgroup id="1" name="Platforms">
  <object id="1" x="0" y="128" width="320" height="32"/>
 </objectgroup>
 <objectgroup id="2" name="MovingPlatforms">
  <object id="2" x="64" y="64" width="32" height="16">
   <properties>
    <property name="duration" type="float" value="2"/>
    <property name="travelX" type="float" value="64"/>
    <property name="travelY" type="float" value="32"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Hazards">
  <object id="3" x="288" y="96" width="32" height="32">
   <properties>
    <property name="damage" type="float" value="10"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="PlayerSpawn">
  <object id="4" x="240" y="96">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="5" x="32" y="96">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="1">
 <objectgroup id="1" name="Platforms"/>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"maps/small.tmx": {Data: []byte(smallTMX)},
	}
}

func TestLoad(t *testing.T) {
	l, err := Load(testFS(), "maps/small.tmx")
	require.NoError(t, err)

	assert.Equal(t, "small", l.Name)
	assert.Equal(t, 20.0, l.Width)
	assert.Equal(t, 10.0, l.Height)

	require.Len(t, l.Platforms, 1)
	assert.Equal(t, Box{Center: math.Vec2{X: 10, Y: 1}, Width: 20, Height: 2}, l.Platforms[0])

	require.Len(t, l.MovingPlatforms, 1)
	mp := l.MovingPlatforms[0]
	assert.Equal(t, math.Vec2{X: 5, Y: 5.5}, mp.Center)
	assert.Equal(t, math.Vec2{X: 4, Y: -2}, mp.Travel, "tiled y grows downward")
	assert.Equal(t, 2.0, mp.Duration)

	require.Len(t, l.Hazards, 1)
	assert.Equal(t, 10.0, l.Hazards[0].Damage)
	assert.Equal(t, math.Vec2{X: 19, Y: 3}, l.Hazards[0].Center)

	require.Len(t, l.Spawns, 2)
	assert.Equal(t, 0, l.Spawns[0].Index)
	assert.Equal(t, math.Vec2{X: 2, Y: 4}, l.Spawn(0))
	assert.Equal(t, math.Vec2{X: 15, Y: 4}, l.Spawn(1))
	assert.Equal(t, l.Spawn(0), l.Spawn(2), "extra players wrap around")
}

func TestLoad_Errors(t *testing.T) {
	fsys := fstest.MapFS{"empty.tmx": {Data: []byte(noSpawnTMX)}}
	_, err := Load(fsys, "empty.tmx")
	assert.ErrorIs(t, err, ErrNoSpawns)

	_, err = Load(fsys, "missing.tmx")
	assert.Error(t, err)

	_, _, err = LoadAll(fsys, "nowhere")
	assert.ErrorIs(t, err, ErrNoArenas)
}

func TestLoadAll_Embedded(t *testing.T) {
	layouts, names, err := LoadAll(assets.Arenas(), assets.ArenaDir)
	require.NoError(t, err)
	require.Contains(t, names, "arena")

	l := layouts["arena"]
	assert.Equal(t, 80.0, l.Width)
	assert.Equal(t, 45.0, l.Height)
	assert.Len(t, l.Spawns, 4)
	assert.NotEmpty(t, l.Platforms)
	assert.NotEmpty(t, l.MovingPlatforms)
}

func TestBuild(t *testing.T) {
	l, err := Load(testFS(), "maps/small.tmx")
	require.NoError(t, err)
	w := l.NewWorld(physics.WithGravity(math.Vec2{X: 0, Y: -60}))

	b := l.Build(w)
	require.Len(t, b.Platforms, 1)
	require.Len(t, b.Moving, 1)
	require.Len(t, b.Hazards, 1)

	mb, ok := w.Body(b.Moving[0].Body)
	require.True(t, ok)
	assert.Equal(t, physics.BodyKinematic, mb.Kind())

	hz, ok := w.Collider(b.Hazards[0].Collider)
	require.True(t, ok)
	assert.True(t, hz.IsSensor())
	assert.Equal(t, physics.CategoryHazard, hz.Category())

	// a character dropped at a spawn lands on the floor
	p := w.AddBody(physics.PlayerBody(l.Spawn(0).X, l.Spawn(0).Y))
	_, ok = w.AddCollider(physics.PlayerCollider(1, 2), p)
	require.True(t, ok)
	for i := 0; i < 120; i++ {
		w.Step(1.0 / 60.0)
	}
	pb, _ := w.Body(p)
	assert.InDelta(t, 3.0, pb.Position().Y, 1e-9)
}

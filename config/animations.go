package config

// ClipDef describes one animation clip of a character sprite sheet.
type ClipDef struct {
	Name      string  `yaml:"name"`
	Frames    int     `yaml:"frames"`
	FPS       float64 `yaml:"fps"`
	Looping   bool    `yaml:"looping"`
	LoopStart int     `yaml:"loop_start"`
	Row       int     `yaml:"row"` // sprite sheet row
}

// SheetDef is the grid layout of a character sprite sheet.
type SheetDef struct {
	FrameWidth  int `yaml:"frame_width"`
	FrameHeight int `yaml:"frame_height"`
	Columns     int `yaml:"columns"`
}

// CharacterClips is the standard clip set shared by every character.
// fast_fall reuses the fall row.
func CharacterClips() []ClipDef {
	return []ClipDef{
		{Name: AnimIdle, Frames: 8, FPS: 10, Looping: true, Row: 0},
		{Name: AnimWalk, Frames: 8, FPS: 12, Looping: true, Row: 1},
		{Name: AnimJump, Frames: 8, FPS: 10, Looping: true, Row: 2},
		{Name: AnimFall, Frames: 8, FPS: 10, Looping: true, Row: 3},
		{Name: AnimFastFall, Frames: 8, FPS: 12, Looping: true, Row: 3},
		{Name: AnimDuck, Frames: 8, FPS: 10, Looping: true, Row: 4},
		{Name: AnimHit, Frames: 8, FPS: 12, Looping: true, Row: 5},
		{Name: AnimDead, Frames: 8, FPS: 10, Looping: false, Row: 6},
	}
}

func CharacterSheet() SheetDef {
	return SheetDef{FrameWidth: 64, FrameHeight: 64, Columns: 8}
}

package animations

import cfg "github.com/automoto/doomerang-arena/config"

// Clip is a named run of frames played at a fixed rate.
type Clip struct {
	Name          string
	FrameCount    int
	FrameDuration float64 // seconds per frame
	Looping       bool
	LoopStart     int // frame a looping clip restarts from
}

func NewClip(name string, frames int, fps float64, looping bool) Clip {
	if frames < 1 {
		frames = 1
	}
	d := 0.0
	if fps > 0 {
		d = 1 / fps
	}
	return Clip{Name: name, FrameCount: frames, FrameDuration: d, Looping: looping}
}

// WithLoopStart returns c restarting at frame when it loops.
func (c Clip) WithLoopStart(frame int) Clip {
	c.LoopStart = max(0, min(frame, c.FrameCount-1))
	return c
}

// Duration is the length of one pass through the clip in seconds.
func (c Clip) Duration() float64 {
	return float64(c.FrameCount) * c.FrameDuration
}

// FrameData is what a renderer needs for the current frame.
type FrameData struct {
	Animation string
	Frame     int
	FlipX     bool
}

// Player advances the frames of one clip at a time.
type Player struct {
	clips    map[string]Clip
	current  string
	frame    int
	timer    float64
	speed    float64
	playing  bool
	finished bool
	flipX    bool
}

func NewPlayer() *Player {
	return &Player{
		clips: make(map[string]Clip),
		speed: 1,
	}
}

// NewCharacterPlayer builds a player from clip definitions and starts the
// idle clip.
func NewCharacterPlayer(defs []cfg.ClipDef) *Player {
	p := NewPlayer()
	for _, d := range defs {
		p.AddClip(NewClip(d.Name, d.Frames, d.FPS, d.Looping).WithLoopStart(d.LoopStart))
	}
	p.Play(cfg.AnimIdle)
	return p
}

func (p *Player) AddClip(c Clip) {
	p.clips[c.Name] = c
}

func (p *Player) Clip(name string) (Clip, bool) {
	c, ok := p.clips[name]
	return c, ok
}

// Play switches to the named clip. Playing the current clip again does
// not restart it, even once a one-shot clip has finished; use
// PlayFromStart for that. Unknown names are ignored.
func (p *Player) Play(name string) bool {
	if name != "" && name == p.current {
		return true
	}
	return p.PlayFromStart(name)
}

func (p *Player) PlayFromStart(name string) bool {
	if _, ok := p.clips[name]; !ok {
		return false
	}
	p.current = name
	p.frame = 0
	p.timer = 0
	p.playing = true
	p.finished = false
	return true
}

func (p *Player) Pause()  { p.playing = false }
func (p *Player) Resume() { p.playing = p.current != "" && !p.finished }

// Stop rewinds the current clip and halts playback.
func (p *Player) Stop() {
	p.playing = false
	p.frame = 0
	p.timer = 0
}

func (p *Player) SetPlaybackSpeed(s float64) {
	p.speed = max(0, s)
}

func (p *Player) SetFlipX(flip bool) { p.flipX = flip }
func (p *Player) FlipX() bool        { return p.flipX }

// Update advances the clock by dt seconds. Looping clips wrap to their
// loop start; one-shot clips hold their last frame and finish.
func (p *Player) Update(dt float64) {
	if !p.playing {
		return
	}
	c, ok := p.clips[p.current]
	if !ok || c.FrameDuration <= 0 {
		return
	}
	p.timer += dt * p.speed
	for p.timer >= c.FrameDuration {
		p.timer -= c.FrameDuration
		p.frame++
		if p.frame < c.FrameCount {
			continue
		}
		if c.Looping {
			p.frame = c.LoopStart
			continue
		}
		p.frame = c.FrameCount - 1
		p.playing = false
		p.finished = true
		p.timer = 0
		return
	}
}

func (p *Player) Current() string { return p.current }
func (p *Player) IsPlaying() bool { return p.playing }

// IsFinished is true once a one-shot clip reached its last frame.
func (p *Player) IsFinished() bool { return p.finished }

func (p *Player) Frame() int {
	return p.frame
}

// FrameData returns the current frame clamped to the clip length.
func (p *Player) FrameData() FrameData {
	frame := p.frame
	if c, ok := p.clips[p.current]; ok {
		frame = min(frame, c.FrameCount-1)
	}
	return FrameData{Animation: p.current, Frame: frame, FlipX: p.flipX}
}

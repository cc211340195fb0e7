package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/doomerang-arena/arena"
	"github.com/automoto/doomerang-arena/assets"
	"github.com/automoto/doomerang-arena/config"
	"github.com/automoto/doomerang-arena/logging"
	"github.com/automoto/doomerang-arena/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Game struct {
	width, height int
	scene         scenes.Scene
}

func NewGame(s *config.Settings, layout *arena.Layout, log *zap.Logger) *Game {
	return &Game{
		width:  s.Window.Width,
		height: s.Window.Height,
		scene:  scenes.NewArenaScene(s, layout, log),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.width, g.height
}

// loadArena picks the arena file from settings or a name from the embedded
// set.
func loadArena(s *config.Settings, name string) (*arena.Layout, error) {
	if s.Arena.Path != "" {
		return arena.Load(os.DirFS(filepath.Dir(s.Arena.Path)), filepath.Base(s.Arena.Path))
	}
	layouts, names, err := arena.LoadAll(assets.Arenas(), assets.ArenaDir)
	if err != nil {
		return nil, err
	}
	if name == "" {
		name = names[0]
	}
	l, ok := layouts[name]
	if !ok {
		return nil, fmt.Errorf("unknown arena %q, have %v", name, names)
	}
	return l, nil
}

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup, including the log
// flush, happens before exit.
func run() int {
	configPath := flag.String("config", "", "YAML settings file")
	arenaName := flag.String("arena", "", "embedded arena to play")
	debug := flag.Bool("debug", false, "draw colliders")
	level := flag.String("log", "", "log level override")
	flag.Parse()

	settings := config.Defaults()
	if *configPath != "" {
		s, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		settings = s
	}
	if *debug {
		settings.Debug.DrawColliders = true
	}
	if *level != "" {
		settings.Logging.Level = *level
	}

	logger, closeLog, err := logging.New(settings.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer closeLog()

	layout, err := loadArena(settings, *arenaName)
	if err != nil {
		logger.Error("load arena", zap.Error(err))
		return 1
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetTPS(settings.Loop.TickRate)

	if err := ebiten.RunGame(NewGame(settings, layout, logger)); err != nil {
		logger.Error("game exited", zap.Error(err))
		return 1
	}
	return 0
}

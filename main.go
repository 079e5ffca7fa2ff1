package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/fonts"
	"github.com/automoto/blockrunner/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	watcher *config.Watcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(source scenes.WorldSource, watcher *config.Watcher) *Game {
	if err := fonts.LoadAll(); err != nil {
		log.Fatal(err)
	}

	g := &Game{
		bounds:  image.Rectangle{},
		watcher: watcher,
	}

	if config.Debug.SkipMenu || source.Level != "" {
		g.scene = scenes.NewWorldScene(g, source)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	// Reloaded settings are applied between frames only
	if g.watcher != nil {
		if s, ok := g.watcher.Poll(); ok {
			s.Apply()
			log.Println("config reloaded")
		}
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML settings file (default $"+config.EnvPath+")")
	seed := flag.Int64("seed", 0, "world seed for the generated world (0 uses the config seed)")
	level := flag.String("level", "", "bundled level to play instead of a generated world")
	skipMenu := flag.Bool("skip-menu", false, "start playing immediately")
	debug := flag.Bool("debug", false, "start with the debug overlay on")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *skipMenu {
		settings.Debug.SkipMenu = true
	}
	if *debug {
		settings.Debug.Enabled = true
	}
	if *seed != 0 {
		settings.World.Seed = *seed
	}
	settings.Apply()

	var watcher *config.Watcher
	if path := config.ResolvePath(*configPath); path != "" {
		watcher, err = config.NewWatcher(path, settings)
		if err != nil {
			log.Printf("Warning: config hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Blockrunner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	source := scenes.WorldSource{Level: *level, Seed: config.World.Seed}
	if err := ebiten.RunGame(NewGame(source, watcher)); err != nil {
		log.Fatal(err)
	}
}

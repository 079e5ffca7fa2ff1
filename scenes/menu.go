package scenes

import (
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/automoto/blockrunner/assets"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title menu
type MenuScene struct {
	menu         *ui.MenuUI
	sceneChanger SceneChanger
	status       string
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menu.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menu == nil {
		return
	}
	ms.menu.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	levels, err := assets.NewLevelLoader().Levels()
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	ms.menu = ui.NewMenuUI(levels,
		func() {
			ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, WorldSource{Seed: cfg.World.Seed}))
		},
		func(name string) {
			ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, WorldSource{Level: name}))
		},
		func() {
			os.Exit(0)
		},
	)
	ms.menu.SetStatus(ms.status)
}

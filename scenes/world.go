package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/blockrunner/assets"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/systems"
	"github.com/automoto/blockrunner/systems/factory"
	"github.com/automoto/blockrunner/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldSource picks the world a WorldScene plays in: a bundled level when
// Level is set, otherwise a world generated from Seed.
type WorldSource struct {
	Level string
	Seed  int64
}

// Load builds the world for the source.
func (src WorldSource) Load() (string, *world.World, world.Spawns, error) {
	if src.Level != "" {
		w, spawns, err := assets.NewLevelLoader().LoadLevel(src.Level)
		return src.Level, w, spawns, err
	}

	w, spawns, err := world.Generate(world.GenParams{
		Columns:          cfg.World.Columns,
		Rows:             cfg.World.Rows,
		TileSize:         cfg.World.TileSize,
		Seed:             src.Seed,
		SurfaceLevel:     cfg.World.SurfaceLevel,
		SurfaceAmplitude: cfg.World.SurfaceAmplitude,
		DirtDepth:        cfg.World.DirtDepth,
		CaveThreshold:    cfg.World.CaveThreshold,
		TreeChance:       cfg.World.TreeChance,
		ChasmWidth:       cfg.World.ChasmWidth,
	})
	return fmt.Sprintf("seed %d", src.Seed), w, spawns, err
}

type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	source       WorldSource
	once         sync.Once
}

// NewWorldScene creates the gameplay scene for a world source
func NewWorldScene(sc SceneChanger, source WorldSource) *WorldScene {
	return &WorldScene{sceneChanger: sc, source: source}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.ecs == nil {
		return
	}
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	name, w, spawns, err := ws.source.Load()
	if err != nil {
		log.Printf("Warning: could not load world: %v", err)
		menu := NewMenuScene(ws.sceneChanger)
		menu.status = err.Error()
		ws.sceneChanger.ChangeScene(menu)
		return
	}
	ws.ecs = NewGameplayECS(name, w, spawns)
}

// NewGameplayECS wires every gameplay system around a loaded world and spawns
// the player, camera and overlays.
//
// Systems run in two passes each frame. World entities are updated first;
// overlay entities (the HUD) come last and are gated off while the death
// screen is up.
func NewGameplayECS(name string, w *world.World, spawns world.Spawns) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, plays what the previous frame queued)
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateRespawn)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateDebug)

	// World entities
	e.AddSystem(systems.WithPauseCheck(systems.UpdateSlotSelection))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePlayer))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateBoss))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateArrows))
	// Camera follows after the player moves so this frame draws where the
	// player is; Use targets still come from last frame's view.
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateDeathScreen)

	// Overlay entities
	e.AddSystem(systems.WithDeathGate(systems.WithPauseCheck(systems.UpdateHUD)))

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawEntities)
	e.AddRenderer(cfg.Default, systems.DrawDeathScreen)
	e.AddRenderer(cfg.Default, systems.WithDeathGateRenderer(systems.DrawHUD))
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	factory.CreateLevel(e, name, w, spawns)
	factory.CreateCamera(e)
	factory.CreateDeathScreen(e)
	factory.CreateHUD(e)

	player := factory.CreatePlayer(e, w, spawns.Player)
	systems.GetOrCreateGame(e).Player = player

	if spawns.HasBoss {
		factory.CreateBoss(e, w, spawns.Boss)
	}

	// Snap the camera before the first frame is drawn
	systems.UpdateCamera(e)

	return e
}

package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/fonts"
	"github.com/automoto/blockrunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the debug overlay.
func UpdateDebug(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionDebug).JustPressed {
		debug := GetOrCreateDebug(ecs)
		debug.Enabled = !debug.Enabled
	}
}

// GetOrCreateDebug returns the singleton Debug component, seeded from config.
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	if _, ok := components.Debug.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.SetValue(ent, components.DebugData{Enabled: cfg.Debug.Enabled})
	}

	ent, _ := components.Debug.First(ecs.World)
	return components.Debug.Get(ent)
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).Enabled {
		return
	}
	w, ok := levelWorld(ecs)
	if !ok {
		return
	}

	camera := cameraPosition(ecs)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := math.Round(camera.X), math.Round(camera.Y)
	ts := float64(w.TileSize())

	// Tile grid
	for x := ts - math.Mod(camX, ts); x < float64(width); x += ts {
		vector.FillRect(screen, float32(x), 0, 1, float32(height), cfg.Debug.GridColor, false)
	}
	for y := ts - math.Mod(camY, ts); y < float64(height); y += ts {
		vector.FillRect(screen, 0, float32(y), float32(width), 1, cfg.Debug.GridColor, false)
	}

	// Entity objects in the space; tiles are covered by the grid
	for _, obj := range w.Space().Objects() {
		if obj.HasTags(tags.ResolvSolid) {
			continue
		}
		x := float32(obj.X - camX)
		y := float32(obj.Y - camY)
		if x+float32(obj.W) < 0 || y+float32(obj.H) < 0 || x > float32(width) || y > float32(height) {
			continue
		}
		vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, cfg.Debug.BoxColor, false)
	}

	// Target tile under the pointer
	input := getOrCreateInput(ecs)
	if input.PointerActive {
		tx := input.Pointer.X + camX
		ty := input.Pointer.Y + camY
		if col, row, ok := w.TileAt(tx, ty); ok {
			ox, oy := w.TileOrigin(col, row)
			vector.StrokeRect(screen, float32(ox-camX), float32(oy-camY), float32(ts), float32(ts), 1, cfg.Debug.TargetColor, false)
		}
	}

	drawDebugText(ecs, screen)
}

func drawDebugText(ecs *ecs.ECS, screen *ebiten.Image) {
	lines := []string{fmt.Sprintf("TPS %.0f  FPS %.0f", ebiten.ActualTPS(), ebiten.ActualFPS())}
	if playerEntry, ok := PlayerEntry(ecs); ok {
		body := components.Body.Get(playerEntry)
		motion := components.Motion.Get(playerEntry)
		lines = append(lines,
			fmt.Sprintf("pos %.0f,%.0f", body.X, body.Y),
			fmt.Sprintf("vy %d grounded %t jumping %t", motion.VelocityY, motion.Grounded, motion.Jumping),
		)
	}

	face := fonts.Small.Get()
	y := screen.Bounds().Dy() - 60
	for _, line := range lines {
		text.Draw(screen, line, face, 10, y, color.White)
		y += 10
	}
}

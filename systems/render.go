package systems

import (
	"image/color"
	"math"

	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/physics"
	"github.com/automoto/blockrunner/tags"
	"github.com/automoto/blockrunner/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// viewOffset is the camera position plus shake, rounded to whole pixels so
// tiles do not shimmer.
func viewOffset(ecs *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return math.Round(camera.Position.X + camera.Jitter.X), math.Round(camera.Position.Y + camera.Jitter.Y)
}

// DrawWorld clears the screen to the sky and draws the visible tiles.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.World.SkyColor)

	w, ok := levelWorld(ecs)
	if !ok {
		return
	}
	camX, camY := viewOffset(ecs)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawTiles(screen, w, camX, camY, width, height)
}

func drawTiles(screen *ebiten.Image, w *world.World, camX, camY float64, width, height int) {
	ts := w.TileSize()
	firstCol := max(0, int(math.Floor(camX/float64(ts))))
	firstRow := max(0, int(math.Floor(camY/float64(ts))))
	lastCol := min(w.Columns()-1, int(math.Floor((camX+float64(width))/float64(ts))))
	lastRow := min(w.Rows()-1, int(math.Floor((camY+float64(height))/float64(ts))))

	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			b := w.Block(col, row)
			if b == world.Air {
				continue
			}
			x, y := w.TileOrigin(col, row)
			vector.FillRect(screen,
				float32(x-camX), float32(y-camY),
				float32(ts), float32(ts),
				b.Color(), false)
		}
	}
}

// DrawEntities draws arrows, bosses and the player on top of the world.
func DrawEntities(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := viewOffset(ecs)

	tags.Arrow.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		arrow := components.Arrow.Get(e)
		length := float32(cfg.Combat.ArrowLength)
		x := float32(body.X - camX)
		if arrow.Direction > 0 {
			x -= length
		}
		vector.FillRect(screen, x, float32(body.Y-camY), length, 2, cfg.Combat.ArrowColor, false)
	})

	tags.Boss.Each(ecs.World, func(e *donburi.Entry) {
		boss := components.Boss.Get(e)
		c := cfg.Boss.Color
		if boss.HurtTimer > 0 && boss.HurtTimer%4 < 2 {
			c = cfg.Boss.HurtColor
		}
		fillBody(screen, *components.Body.Get(e), camX, camY, c)
	})

	playerEntry, ok := PlayerEntry(ecs)
	if !ok || !components.Player.Get(playerEntry).IsAlive {
		return
	}
	drawPlayer(screen, playerEntry, camX, camY)
}

func drawPlayer(screen *ebiten.Image, playerEntry *donburi.Entry, camX, camY float64) {
	body := *components.Body.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	tools := components.Tools.Get(playerEntry)

	// Blink while immune after a hit
	if player.DamageCooldown > 0 && (player.DamageCooldown/4)%2 == 1 {
		return
	}

	fillBody(screen, body, camX, camY, cfg.Player.Color)

	if player.ArmorEquipped {
		armor := body
		armor.Y += body.Size / 2
		vector.FillRect(screen,
			float32(armor.X-camX), float32(armor.Y-camY),
			float32(body.Width()), float32(body.Size),
			cfg.Player.ArmorColor, false)
	}

	if player.JetpackEquipped {
		packX := body.Right()
		if !player.FacingLeft {
			packX = body.X - 4
		}
		vector.FillRect(screen,
			float32(packX-camX), float32(body.Y+body.Size/2-camY),
			4, float32(body.Size),
			cfg.Player.JetpackColor, false)
	}

	// Eye, so facing is visible
	eyeX := body.Right() - 5
	if player.FacingLeft {
		eyeX = body.X + 2
	}
	vector.FillRect(screen, float32(eyeX-camX), float32(body.Y+5-camY), 3, 3, cfg.Gray, false)

	if tools.SwingTimer > 0 {
		r := swingRect(body, player.FacingLeft)
		vector.FillRect(screen,
			float32(r.X-camX), float32(r.Y-camY),
			float32(r.W), float32(r.H),
			cfg.Combat.SwingColor, false)
	}
}

func fillBody(screen *ebiten.Image, b physics.Body, camX, camY float64, c color.Color) {
	vector.FillRect(screen,
		float32(b.X-camX), float32(b.Y-camY),
		float32(b.Width()), float32(b.Height()),
		c, false)
}

package systems

import (
	"image/color"

	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// UpdateDeathScreen fades the death overlay in while the player is dead.
func UpdateDeathScreen(ecs *ecs.ECS) {
	if !GetOrCreateGame(ecs).DeathScreen {
		return
	}
	screenEntry, ok := components.DeathScreen.First(ecs.World)
	if !ok {
		return
	}
	screen := components.DeathScreen.Get(screenEntry)
	if screen.Fade == nil {
		screen.Alpha = 1
		return
	}
	screen.Alpha, _ = screen.Fade.Update(1)
}

// DrawDeathScreen renders the death overlay over the world.
func DrawDeathScreen(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateGame(ecs).DeathScreen {
		return
	}
	alpha := float32(1)
	if screenEntry, ok := components.DeathScreen.First(ecs.World); ok {
		alpha = components.DeathScreen.Get(screenEntry).Alpha
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height),
		fade(cfg.DeathScreen.OverlayColor, alpha), false)

	titleFace := fonts.Title.Get()
	drawCentered(screen, cfg.DeathScreen.Title, titleFace, width, height/2-8, fade(cfg.DeathScreen.TitleColor, alpha))

	hintFace := fonts.Regular.Get()
	drawCentered(screen, respawnHint(getOrCreateInput(ecs).LastInputMethod), hintFace, width, height/2+24, fade(cfg.DeathScreen.HintColor, alpha))
}

func respawnHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation, components.InputXbox:
		return "Press Select to respawn"
	}
	return cfg.DeathScreen.Hint
}

// fade scales a color's alpha by a.
func fade(c color.RGBA, a float32) color.RGBA {
	a = max(0, min(1, a))
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, width, y int, clr color.Color) {
	w := font.MeasureString(face, s).Round()
	text.Draw(screen, s, face, (width-w)/2, y, clr)
}

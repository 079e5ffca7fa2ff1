package factory

import (
	"github.com/automoto/blockrunner/archetypes"
	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeathScreen adds the death overlay state with its fade-in tween.
func CreateDeathScreen(ecs *ecs.ECS) *donburi.Entry {
	screen := archetypes.DeathScreen.Spawn(ecs)
	components.DeathScreen.SetValue(screen, components.DeathScreenData{
		Fade: gween.New(0, 1, float32(cfg.DeathScreen.FadeFrames), ease.OutQuad),
	})
	return screen
}

// CreateHUD adds the HUD overlay entity. Its slot highlight pulses on a loop.
func CreateHUD(ecs *ecs.ECS) *donburi.Entry {
	hud := archetypes.HUD.Spawn(ecs)
	half := float32(cfg.HUD.PulseFrames) / 2
	components.HUD.SetValue(hud, components.HUDData{
		Pulse: gween.NewSequence(
			gween.New(0.4, 1, half, ease.InOutSine),
			gween.New(1, 0.4, half, ease.InOutSine),
		),
		Highlight: 1,
	})
	return hud
}

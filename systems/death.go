package systems

import (
	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRespawn brings a dead player back when the respawn action is pressed.
// It is the only way the death screen is lowered.
func UpdateRespawn(ecs *ecs.ECS) {
	playerEntry, ok := PlayerEntry(ecs)
	if !ok {
		return
	}
	if components.Player.Get(playerEntry).IsAlive {
		return
	}
	if !GetAction(getOrCreateInput(ecs), cfg.ActionRespawn).JustPressed {
		return
	}
	RespawnPlayer(ecs, playerEntry)
}

// RespawnPlayer puts the same player entity back on its spawn point. Health,
// cooldowns and equipment carry over, except that an empty health bar is
// refilled.
func RespawnPlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)
	health := components.Health.Get(playerEntry)

	*body = factory.BodyAt(player.Spawn, cfg.Player.Size)
	components.Motion.Get(playerEntry).Reset()
	player.IsAlive = true
	player.IsMoving = false
	if health.Current <= 0 {
		health.Current = health.Max
	}
	syncObject(playerEntry, *body)

	GetOrCreateGame(ecs).DeathScreen = false
	PlaySFX(ecs, cfg.SoundRespawn)
}

// raiseDeathScreen sets the death gate and restarts the overlay fade.
func raiseDeathScreen(ecs *ecs.ECS) {
	GetOrCreateGame(ecs).DeathScreen = true

	screenEntry, ok := components.DeathScreen.First(ecs.World)
	if !ok {
		return
	}
	screen := components.DeathScreen.Get(screenEntry)
	screen.Alpha = 0
	if screen.Fade != nil {
		screen.Fade.Reset()
	}
}

// WithDeathGate wraps an overlay system to skip execution while the death
// screen is up.
func WithDeathGate(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateGame(e).DeathScreen {
			return
		}
		system(e)
	}
}

// WithDeathGateRenderer is WithDeathGate for renderers.
func WithDeathGateRenderer(renderer ecs.RendererWithArg[ebiten.Image]) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if GetOrCreateGame(e).DeathScreen {
			return
		}
		renderer(e, screen)
	}
}

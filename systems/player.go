package systems

import (
	"math"

	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/physics"
	"github.com/automoto/blockrunner/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePlayer runs one frame of the player controller against a snapshot of
// this frame's input.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := PlayerEntry(ecs)
	if !ok {
		return
	}
	w, ok := levelWorld(ecs)
	if !ok {
		return
	}

	in := getOrCreateInput(ecs).Snapshot()
	updatePlayer(ecs, playerEntry, w, in, cameraPosition(ecs))
}

func updatePlayer(e *ecs.ECS, playerEntry *donburi.Entry, w *world.World, in components.InputState, camera dmath.Vec2) {
	player := components.Player.Get(playerEntry)
	if !player.IsAlive {
		return
	}
	if checkDeath(e, playerEntry, w) {
		return
	}

	body := components.Body.Get(playerEntry)
	motion := components.Motion.Get(playerEntry)

	driveHorizontal(w, body, player, in)

	if player.JetpackEquipped {
		motion.Fly(w, body, cfg.Player.FlySpeed, in.Active(cfg.ActionMoveUp), in.Active(cfg.ActionMoveDown))
		player.IsMoving = false
	} else {
		wasJumping := motion.Jumping
		motion.Update(w, body, physics.Params{
			Gravity:   cfg.Player.Gravity,
			JumpForce: cfg.Player.JumpForce,
		}, in.Active(cfg.ActionMoveUp))
		if motion.Jumping && !wasJumping {
			PlaySFX(e, cfg.SoundJump)
		}
	}
	syncObject(playerEntry, *body)

	if checkDeath(e, playerEntry, w) {
		return
	}

	if in.Active(cfg.ActionUse) {
		useSelectedItem(e, playerEntry, w, worldTarget(in, camera, *body))
	}

	decayCooldowns(playerEntry)
}

// driveHorizontal moves the player by up to Speed units, never past the world
// edges. Left wins when both directions are held.
func driveHorizontal(w *world.World, body *physics.Body, player *components.PlayerData, in components.InputState) {
	player.IsMoving = false

	switch {
	case in.Active(cfg.ActionMoveLeft):
		steps := min(player.Speed, int(math.Floor(body.X)))
		physics.Step(w, body, -1, 0, steps)
		player.FacingLeft = true
		player.IsMoving = true
	case in.Active(cfg.ActionMoveRight):
		steps := min(player.Speed, int(math.Floor(w.Width()-body.Right())))
		physics.Step(w, body, 1, 0, steps)
		player.FacingLeft = false
		player.IsMoving = true
	}
}

// checkDeath kills the player once its feet reach the bottom of the world or
// its health runs out. It reports whether the player is dead.
func checkDeath(e *ecs.ECS, playerEntry *donburi.Entry, w *world.World) bool {
	player := components.Player.Get(playerEntry)
	if !player.IsAlive {
		return true
	}

	body := components.Body.Get(playerEntry)
	health := components.Health.Get(playerEntry)
	if body.Bottom() < w.Height() && health.Current > 0 {
		return false
	}

	killPlayer(e, playerEntry)
	return true
}

func killPlayer(e *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	player.IsAlive = false
	player.IsMoving = false

	despawnBosses(e)
	raiseDeathScreen(e)
	PlaySFX(e, cfg.SoundDeath)
}

// worldTarget converts the pointer to world space. Without a pointer the
// target is the tile just in front of the player's feet.
func worldTarget(in components.InputState, camera dmath.Vec2, body physics.Body) dmath.Vec2 {
	if p, ok := in.Pointer(); ok {
		return dmath.Vec2{X: p.X + camera.X, Y: p.Y + camera.Y}
	}
	return dmath.Vec2{X: body.X + body.Width()/2, Y: body.Bottom() + 1}
}

func decayCooldowns(playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	tools := components.Tools.Get(playerEntry)

	for _, c := range []*int{
		&player.DamageCooldown,
		&player.HealCooldown,
		&tools.PickaxeCooldown,
		&tools.SwordCooldown,
		&tools.BowCooldown,
		&tools.SwingTimer,
	} {
		if *c > 0 {
			*c--
		}
	}
}

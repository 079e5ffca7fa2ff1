package systems

import (
	"log"
	"math"

	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/physics"
	"github.com/automoto/blockrunner/systems/factory"
	"github.com/automoto/blockrunner/tags"
	"github.com/automoto/blockrunner/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// inReach reports whether a world point is within tool reach of the player's
// center.
func inReach(body physics.Body, tileSize int, x, y float64) bool {
	cx, cy := body.Center()
	reach := cfg.Combat.Reach * float64(tileSize)
	return math.Hypot(x-cx, y-cy) <= reach
}

// usePickaxe mines the block under the target and stores its drop.
func usePickaxe(e *ecs.ECS, playerEntry *donburi.Entry, w *world.World, x, y float64) {
	tools := components.Tools.Get(playerEntry)
	if tools.PickaxeCooldown > 0 {
		return
	}
	if !inReach(*components.Body.Get(playerEntry), w.TileSize(), x, y) {
		return
	}

	block, ok := w.Mine(x, y)
	if !ok {
		return
	}
	tools.PickaxeCooldown = cfg.Combat.PickaxeCooldown
	PlaySFX(e, cfg.SoundMine)

	drop := block.Drop()
	if drop == "" {
		return
	}
	inv := components.Inventory.Get(playerEntry)
	if left := inv.Add(drop, 1); left > 0 {
		log.Printf("Warning: inventory full, dropped %s", drop)
	}
}

// swingRect is the area the sword hits, in front of the player.
func swingRect(body physics.Body, facingLeft bool) physics.Rect {
	r := float64(cfg.Combat.SwordRange)
	if facingLeft {
		return physics.Rect{X: body.X - r, Y: body.Y, W: r, H: body.Height()}
	}
	return physics.Rect{X: body.Right(), Y: body.Y, W: r, H: body.Height()}
}

func useSword(e *ecs.ECS, playerEntry *donburi.Entry) {
	tools := components.Tools.Get(playerEntry)
	if tools.SwordCooldown > 0 {
		return
	}
	tools.SwordCooldown = cfg.Combat.SwordCooldown
	tools.SwingTimer = cfg.Combat.SwordCooldown / 2
	PlaySFX(e, cfg.SoundSwing)

	player := components.Player.Get(playerEntry)
	hit := swingRect(*components.Body.Get(playerEntry), player.FacingLeft)

	var struck []*donburi.Entry
	tags.Boss.Each(e.World, func(bossEntry *donburi.Entry) {
		if hit.Overlaps(components.Body.Get(bossEntry).Rect()) {
			struck = append(struck, bossEntry)
		}
	})
	for _, bossEntry := range struck {
		damageBoss(e, bossEntry, playerEntry, cfg.Combat.SwordDamage)
	}
}

func useBow(e *ecs.ECS, playerEntry *donburi.Entry, w *world.World) {
	tools := components.Tools.Get(playerEntry)
	if tools.BowCooldown > 0 {
		return
	}
	tools.BowCooldown = cfg.Combat.BowCooldown

	body := components.Body.Get(playerEntry)
	_, cy := body.Center()
	x, dir := body.Right(), 1
	if components.Player.Get(playerEntry).FacingLeft {
		x, dir = body.X-1, -1
	}
	factory.CreateArrow(e, w, x, cy, dir)
	PlaySFX(e, cfg.SoundShoot)
}

// damageBoss applies damage to a boss. A defeated boss drops its loot into
// the player's inventory and is removed.
func damageBoss(e *ecs.ECS, bossEntry, playerEntry *donburi.Entry, amount int) {
	if !bossEntry.Valid() {
		return
	}
	health := components.Health.Get(bossEntry)
	health.Current = max(health.Current-amount, 0)
	components.Boss.Get(bossEntry).HurtTimer = cfg.Boss.HurtFlash

	if health.Current > 0 {
		PlaySFX(e, cfg.SoundBossHit)
		return
	}

	if playerEntry != nil && playerEntry.Valid() {
		inv := components.Inventory.Get(playerEntry)
		if left := inv.Add(cfg.Boss.DropItem, cfg.Boss.DropCount); left > 0 {
			log.Printf("Warning: inventory full, lost %d %s", left, cfg.Boss.DropItem)
		}
	}
	removeEntity(e, bossEntry)
	PlaySFX(e, cfg.SoundBossDefeated)
}

package systems

import (
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

// chaseDeadZone keeps the boss from jittering when it is lined up with the player.
const chaseDeadZone = 2

// UpdateBoss walks every boss toward the player, jumping over walls in the way,
// and hurts the player on contact.
func UpdateBoss(ecs *ecs.ECS) {
	w, ok := levelWorld(ecs)
	if !ok {
		return
	}
	playerEntry, ok := PlayerEntry(ecs)
	if !ok {
		return
	}

	var fallen []*donburi.Entry
	tags.Boss.Each(ecs.World, func(bossEntry *donburi.Entry) {
		if !updateBoss(ecs, bossEntry, playerEntry, w) {
			fallen = append(fallen, bossEntry)
		}
	})

	for _, bossEntry := range fallen {
		removeEntity(ecs, bossEntry)
	}
}

// updateBoss runs one frame of a boss. It returns false once the boss has
// fallen out of the world.
func updateBoss(e *ecs.ECS, bossEntry, playerEntry *donburi.Entry, w *world.World) bool {
	boss := components.Boss.Get(bossEntry)
	body := components.Body.Get(bossEntry)
	motion := components.Motion.Get(bossEntry)
	playerBody := components.Body.Get(playerEntry)

	if boss.HurtTimer > 0 {
		boss.HurtTimer--
	}

	bx, _ := body.Center()
	px, _ := playerBody.Center()
	dx := px - bx

	blocked := false
	if math.Abs(dx) > chaseDeadZone {
		dir := 1
		if dx < 0 {
			dir = -1
		}
		boss.FacingLeft = dir < 0
		blocked = physics.Step(w, body, dir, 0, boss.Speed) < boss.Speed
	}

	motion.Update(w, body, physics.Params{
		Gravity:   cfg.Boss.Gravity,
		JumpForce: cfg.Boss.JumpForce,
	}, blocked)
	syncObject(bossEntry, *body)

	if body.Y >= w.Height() {
		return false
	}

	if components.Player.Get(playerEntry).IsAlive && body.Overlaps(*playerBody) {
		TakeDamage(e, playerEntry, boss.ContactDamage)
	}
	return true
}

// summonBoss places a boss SpawnDistance tiles beside the player, preferring
// the side the player faces. Only one boss may exist at a time.
func summonBoss(e *ecs.ECS, playerEntry *donburi.Entry, w *world.World) bool {
	if _, exists := tags.Boss.First(e.World); exists {
		return false
	}

	body := components.Body.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	offset := float64(cfg.Boss.SpawnDistance * w.TileSize())
	sides := []float64{offset, -offset}
	if player.FacingLeft {
		sides[0], sides[1] = -offset, offset
	}

	for _, side := range sides {
		// Try the player's feet level, then up to two tiles higher.
		for lift := 0; lift < 3; lift++ {
			spawn := world.Point{
				X: body.X + side,
				Y: body.Bottom() - float64(lift*w.TileSize()),
			}
			candidate := factory.BodyAt(spawn, cfg.Boss.Size)
			if candidate.X < 0 || candidate.Right() > w.Width() || candidate.Y < 0 {
				continue
			}
			if !physics.Fits(w, candidate) {
				continue
			}
			factory.CreateBoss(e, w, spawn)
			PlaySFX(e, cfg.SoundBossHit)
			return true
		}
	}
	return false
}

// despawnBosses removes every boss, used when the player dies.
func despawnBosses(e *ecs.ECS) {
	var bosses []*donburi.Entry
	tags.Boss.Each(e.World, func(bossEntry *donburi.Entry) {
		bosses = append(bosses, bossEntry)
	})
	for _, bossEntry := range bosses {
		removeEntity(e, bossEntry)
	}
}

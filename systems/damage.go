package systems

import (
	"math"

	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TakeDamage hurts the player unless it is dead or still immune from the last
// hit. Armor scales the damage down. It reports whether damage was applied.
func TakeDamage(e *ecs.ECS, playerEntry *donburi.Entry, amount int) bool {
	player := components.Player.Get(playerEntry)
	if !player.IsAlive || player.DamageCooldown > 0 || amount <= 0 {
		return false
	}

	if player.ArmorEquipped {
		amount = int(math.Ceil(float64(amount) * cfg.Player.ArmorDamageScale))
	}

	health := components.Health.Get(playerEntry)
	health.Current = max(health.Current-amount, 0)
	player.DamageCooldown = cfg.Player.DamageCooldown
	PlaySFX(e, cfg.SoundHurt)
	TriggerScreenShake(e)
	return true
}

package systems

import (
	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/inventory"
	"github.com/automoto/blockrunner/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// useSelectedItem dispatches the Use action on the selected slot. Empty slots
// and items that cannot be used right now do nothing.
func useSelectedItem(e *ecs.ECS, playerEntry *donburi.Entry, w *world.World, target dmath.Vec2) {
	inv := components.Inventory.Get(playerEntry)
	item, ok := inv.SelectedItem()
	if !ok {
		return
	}
	slot := inv.Selected()

	switch item.Category() {
	case inventory.CategoryTool:
		useTool(e, playerEntry, w, item.Name, target)
	case inventory.CategoryArmor:
		if equipArmor(e, playerEntry) {
			inv.ReduceItemCount(slot)
		}
	case inventory.CategoryJetpack:
		if equipJetpack(e, playerEntry) {
			inv.ReduceItemCount(slot)
		}
	case inventory.CategoryBlock:
		if item.Placeable() && placeBlock(e, playerEntry, w, target.X, target.Y, item.Name) {
			inv.ReduceItemCount(slot)
		}
	case inventory.CategoryFood:
		if eatMobMeat(e, playerEntry) {
			inv.ReduceItemCount(slot)
		}
	case inventory.CategorySummon:
		if summonBoss(e, playerEntry, w) {
			inv.ReduceItemCount(slot)
		}
	}
}

func useTool(e *ecs.ECS, playerEntry *donburi.Entry, w *world.World, name string, target dmath.Vec2) {
	switch name {
	case inventory.Pickaxe:
		usePickaxe(e, playerEntry, w, target.X, target.Y)
	case inventory.Sword:
		useSword(e, playerEntry)
	case inventory.Bow:
		useBow(e, playerEntry, w)
	}
}

// equipArmor raises max health for good. A second armor is not consumed.
func equipArmor(e *ecs.ECS, playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	if player.ArmorEquipped {
		return false
	}
	player.ArmorEquipped = true
	components.Health.Get(playerEntry).Max = cfg.Player.ArmorMaxHealth
	PlaySFX(e, cfg.SoundEquip)
	return true
}

func equipJetpack(e *ecs.ECS, playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	if player.JetpackEquipped {
		return false
	}
	player.JetpackEquipped = true
	components.Motion.Get(playerEntry).Reset()
	PlaySFX(e, cfg.SoundEquip)
	return true
}

// eatMobMeat heals when the heal cooldown has run out.
func eatMobMeat(e *ecs.ECS, playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	if player.HealCooldown > 0 {
		return false
	}
	health := components.Health.Get(playerEntry)
	health.Current = min(health.Current+cfg.Player.HealAmount, health.Max)
	player.HealCooldown = cfg.Player.HealCooldown
	PlaySFX(e, cfg.SoundHeal)
	return true
}

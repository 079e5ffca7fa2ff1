package factory

import (
	"log"

	"github.com/automoto/blockrunner/archetypes"
	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/inventory"
	"github.com/automoto/blockrunner/physics"
	"github.com/automoto/blockrunner/tags"
	"github.com/automoto/blockrunner/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player standing on spawn, with the starting kit.
func CreatePlayer(ecs *ecs.ECS, w *world.World, spawn world.Point) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	body := BodyAt(spawn, cfg.Player.Size)
	components.Body.SetValue(player, body)
	components.Motion.SetValue(player, physics.Vertical{})
	components.Player.SetValue(player, components.PlayerData{
		Speed:   cfg.Player.Speed,
		Spawn:   spawn,
		IsAlive: true,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHealth,
		Max:     cfg.Player.MaxHealth,
	})
	components.Tools.SetValue(player, components.ToolsData{})

	inv := inventory.New(cfg.Inventory.Slots, cfg.Inventory.MaxStack)
	for _, it := range cfg.Inventory.StartingItems {
		if left := inv.Add(it.Name, it.Count); left > 0 {
			log.Printf("Warning: %d of starting item %q not added", left, it.Name)
		}
	}
	components.Inventory.SetValue(player, components.InventoryData{Inventory: inv})

	attachObject(player, w, body, tags.ResolvPlayer)

	return player
}

// BodyAt returns a box of the given size whose feet rest on p.
func BodyAt(p world.Point, size int) physics.Body {
	s := float64(size)
	return physics.Body{X: p.X, Y: p.Y - 2*s, Size: s}
}

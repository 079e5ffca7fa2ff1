package factory

import (
	"github.com/automoto/blockrunner/archetypes"
	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/physics"
	"github.com/automoto/blockrunner/tags"
	"github.com/automoto/blockrunner/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBoss(ecs *ecs.ECS, w *world.World, spawn world.Point) *donburi.Entry {
	boss := archetypes.Boss.Spawn(ecs)

	body := BodyAt(spawn, cfg.Boss.Size)
	components.Body.SetValue(boss, body)
	components.Motion.SetValue(boss, physics.Vertical{})
	components.Boss.SetValue(boss, components.BossData{
		Speed:         cfg.Boss.Speed,
		ContactDamage: cfg.Boss.ContactDamage,
	})
	components.Health.SetValue(boss, components.HealthData{
		Current: cfg.Boss.MaxHealth,
		Max:     cfg.Boss.MaxHealth,
	})

	attachObject(boss, w, body, tags.ResolvBoss)

	return boss
}

package archetypes

import (
	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Motion,
		components.Health,
		components.Inventory,
		components.Tools,
		components.Object,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Body,
		components.Motion,
		components.Health,
		components.Object,
	)
	Arrow = newArchetype(
		tags.Arrow,
		components.Arrow,
		components.Body,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Game = newArchetype(
		components.Game,
	)
	DeathScreen = newArchetype(
		components.DeathScreen,
	)
	HUD = newArchetype(
		tags.Overlay,
		components.HUD,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

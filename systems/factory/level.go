package factory

import (
	"github.com/automoto/blockrunner/archetypes"
	"github.com/automoto/blockrunner/components"
	"github.com/automoto/blockrunner/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, name string, w *world.World, spawns world.Spawns) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name:   name,
		World:  w,
		Spawns: spawns,
	})
	return level
}

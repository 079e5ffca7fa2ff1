package systems

import (
	"github.com/automoto/blockrunner/archetypes"
	"github.com/automoto/blockrunner/components"
	"github.com/automoto/blockrunner/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateGame returns the singleton game state, creating if needed.
func GetOrCreateGame(ecs *ecs.ECS) *components.GameData {
	if _, ok := components.Game.First(ecs.World); !ok {
		ent := archetypes.Game.Spawn(ecs)
		components.Game.SetValue(ent, components.GameData{})
	}

	ent, _ := components.Game.First(ecs.World)
	return components.Game.Get(ent)
}

// PlayerEntry returns the player held by the game state. It is false until
// the player has spawned.
func PlayerEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	game := GetOrCreateGame(ecs)
	if game.Player == nil || !game.Player.Valid() {
		return nil, false
	}
	return game.Player, true
}

func levelWorld(ecs *ecs.ECS) (*world.World, bool) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, false
	}
	level := components.Level.Get(entry)
	return level.World, level.World != nil
}

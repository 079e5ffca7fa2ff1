package components

import (
	"github.com/automoto/blockrunner/world"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name   string
	World  *world.World
	Spawns world.Spawns
}

var Level = donburi.NewComponentType[LevelData]()

package components

import (
	"github.com/automoto/blockrunner/world"
	"github.com/yohamta/donburi"
)

// PlayerData is the controller state of the player. Position and vertical
// physics live in Body and Motion.
type PlayerData struct {
	Speed int
	Spawn world.Point

	IsAlive    bool
	IsMoving   bool
	FacingLeft bool

	// Equipment flags are sticky once set.
	ArmorEquipped   bool
	JetpackEquipped bool

	// Frame countdowns, never negative
	DamageCooldown int
	HealCooldown   int
}

var Player = donburi.NewComponentType[PlayerData]()

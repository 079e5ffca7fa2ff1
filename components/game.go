package components

import "github.com/yohamta/donburi"

// GameData is the top-level game state.
type GameData struct {
	// Player is set when the player spawns and kept across deaths.
	Player *donburi.Entry
	// DeathScreen gates overlays while the player is dead.
	DeathScreen bool
}

var Game = donburi.NewComponentType[GameData]()

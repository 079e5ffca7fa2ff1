package components

import "github.com/yohamta/donburi"

// ToolsData holds per-tool cooldowns of the player, in frames.
type ToolsData struct {
	PickaxeCooldown int
	SwordCooldown   int
	BowCooldown     int

	// SwingTimer counts down while the sword swing is drawn.
	SwingTimer int
}

var Tools = donburi.NewComponentType[ToolsData]()

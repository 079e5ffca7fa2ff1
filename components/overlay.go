package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DeathScreenData drives the death overlay fade.
type DeathScreenData struct {
	Fade  *gween.Tween
	Alpha float32
}

var DeathScreen = donburi.NewComponentType[DeathScreenData]()

// HUDData animates the selected slot highlight.
type HUDData struct {
	Pulse        *gween.Sequence
	Highlight    float32
	LastSelected int
}

var HUD = donburi.NewComponentType[HUDData]()

package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Boss    = donburi.NewTag().SetName("Boss")
	Arrow   = donburi.NewTag().SetName("Arrow")
	Overlay = donburi.NewTag().SetName("Overlay")
)

// Resolv tags for the collision space
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvBoss   = "Boss"
	ResolvArrow  = "Arrow"
)

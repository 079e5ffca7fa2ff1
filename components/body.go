package components

import (
	"github.com/automoto/blockrunner/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Body is the collision box of a stepped entity.
var Body = donburi.NewComponentType[physics.Body]()

// Motion is the vertical state machine of an entity affected by gravity.
var Motion = donburi.NewComponentType[physics.Vertical]()

// ObjectData mirrors a Body in the world's resolv space so entities can find
// each other without scanning. Data holds the owning entry.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

package components

import (
	"github.com/automoto/blockrunner/inventory"
	"github.com/yohamta/donburi"
)

type InventoryData struct {
	*inventory.Inventory
}

var Inventory = donburi.NewComponentType[InventoryData]()

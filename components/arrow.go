package components

import "github.com/yohamta/donburi"

type ArrowData struct {
	Direction int // -1 left, 1 right
	Speed     int
	Damage    int
	Lifetime  int
}

var Arrow = donburi.NewComponentType[ArrowData]()

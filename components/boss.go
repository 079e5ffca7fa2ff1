package components

import "github.com/yohamta/donburi"

type BossData struct {
	Speed         int
	ContactDamage int
	FacingLeft    bool

	// HurtTimer counts down the hit flash, in frames.
	HurtTimer int
}

var Boss = donburi.NewComponentType[BossData]()

package systems

import (
	"github.com/automoto/blockrunner/components"
	"github.com/automoto/blockrunner/physics"
	"github.com/automoto/blockrunner/tags"
	"github.com/automoto/blockrunner/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateArrows flies every arrow forward. Arrows are removed when they hit a
// block, hit a boss or run out of lifetime.
func UpdateArrows(ecs *ecs.ECS) {
	w, ok := levelWorld(ecs)
	if !ok {
		return
	}
	playerEntry, _ := PlayerEntry(ecs)

	var spent []*donburi.Entry
	tags.Arrow.Each(ecs.World, func(arrowEntry *donburi.Entry) {
		if updateArrow(ecs, arrowEntry, playerEntry, w) {
			spent = append(spent, arrowEntry)
		}
	})

	for _, arrowEntry := range spent {
		removeEntity(ecs, arrowEntry)
	}
}

// updateArrow advances one arrow and reports whether it is spent.
func updateArrow(e *ecs.ECS, arrowEntry, playerEntry *donburi.Entry, w *world.World) bool {
	arrow := components.Arrow.Get(arrowEntry)
	body := components.Body.Get(arrowEntry)

	arrow.Lifetime--
	if arrow.Lifetime <= 0 {
		return true
	}

	moved := physics.Step(w, body, arrow.Direction, 0, arrow.Speed)
	syncObject(arrowEntry, *body)

	if bossEntry, ok := arrowTarget(arrowEntry, *body); ok {
		damageBoss(e, bossEntry, playerEntry, arrow.Damage)
		return true
	}
	return moved < arrow.Speed
}

// arrowTarget finds a boss the arrow overlaps, using the resolv space to
// narrow the search to nearby objects.
func arrowTarget(arrowEntry *donburi.Entry, body physics.Body) (*donburi.Entry, bool) {
	obj := components.Object.Get(arrowEntry)
	if obj.Object == nil || obj.Space == nil {
		return nil, false
	}
	collision := obj.Check(0, 0, tags.ResolvBoss)
	if collision == nil {
		return nil, false
	}
	for _, other := range collision.ObjectsByTags(tags.ResolvBoss) {
		bossEntry, ok := other.Data.(*donburi.Entry)
		if !ok || !bossEntry.Valid() {
			continue
		}
		if body.Overlaps(*components.Body.Get(bossEntry)) {
			return bossEntry, true
		}
	}
	return nil, false
}

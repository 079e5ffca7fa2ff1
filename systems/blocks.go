package systems

import (
	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/physics"
	"github.com/automoto/blockrunner/tags"
	"github.com/automoto/blockrunner/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// placeBlock puts the named block into the empty tile under (x, y). The tile
// must be within reach and must not overlap the player or a boss.
func placeBlock(e *ecs.ECS, playerEntry *donburi.Entry, w *world.World, x, y float64, name string) bool {
	block, ok := world.BlockByName(name)
	if !ok {
		return false
	}
	col, row, ok := w.TileAt(x, y)
	if !ok {
		return false
	}

	body := components.Body.Get(playerEntry)
	if !inReach(*body, w.TileSize(), x, y) {
		return false
	}

	tx, ty := w.TileOrigin(col, row)
	ts := float64(w.TileSize())
	tile := physics.Rect{X: tx, Y: ty, W: ts, H: ts}
	if tile.Overlaps(body.Rect()) {
		return false
	}

	blocked := false
	tags.Boss.Each(e.World, func(bossEntry *donburi.Entry) {
		if tile.Overlaps(components.Body.Get(bossEntry).Rect()) {
			blocked = true
		}
	})
	if blocked {
		return false
	}

	if !w.Place(x, y, block) {
		return false
	}
	PlaySFX(e, cfg.SoundPlace)
	return true
}

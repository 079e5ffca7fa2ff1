package factory

import (
	"github.com/automoto/blockrunner/archetypes"
	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/physics"
	"github.com/automoto/blockrunner/tags"
	"github.com/automoto/blockrunner/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArrow spawns an arrow whose box is centered vertically on y.
// Arrows are stepped with a 1x2 body so they pass through one-pixel gaps only.
func CreateArrow(ecs *ecs.ECS, w *world.World, x, y float64, direction int) *donburi.Entry {
	arrow := archetypes.Arrow.Spawn(ecs)

	body := physics.Body{X: x, Y: y - 1, Size: 1}
	components.Body.SetValue(arrow, body)
	components.Arrow.SetValue(arrow, components.ArrowData{
		Direction: direction,
		Speed:     cfg.Combat.ArrowSpeed,
		Damage:    cfg.Combat.ArrowDamage,
		Lifetime:  cfg.Combat.ArrowLifetime,
	})

	attachObject(arrow, w, body, tags.ResolvArrow)

	return arrow
}

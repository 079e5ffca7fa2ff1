package physics

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// CameraOffset returns the top-left of the viewport for a target position,
// clamped so the viewport never leaves the world. An axis on which the world is
// smaller than the viewport is pinned to 0.
func CameraOffset(target, viewport, world dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{
		X: clampAxis(target.X-viewport.X/2, world.X-viewport.X),
		Y: clampAxis(target.Y-viewport.Y/2, world.Y-viewport.Y),
	}
}

func clampAxis(v, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return math.Max(0, math.Min(limit, v))
}

package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the top-left of the viewport in world space.
type CameraData struct {
	Position math.Vec2

	// Shake counts down a screen shake. Jitter is added at draw time only, so
	// Position always stays inside the world.
	Shake  int
	Jitter math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()

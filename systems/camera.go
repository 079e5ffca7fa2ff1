package systems

import (
	"github.com/aquilax/go-perlin"
	"github.com/automoto/blockrunner/components"
	"github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/physics"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// shakeNoise drives the screen shake; smooth noise reads better than random jumps.
var shakeNoise = perlin.NewPerlin(2, 2, 3, 7)

// UpdateCamera centers the viewport on the player, clamped to the world. It
// does nothing until both the player and the level exist.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	updateScreenShake(camera)

	playerEntry, ok := PlayerEntry(e)
	if !ok {
		return
	}
	w, ok := levelWorld(e)
	if !ok {
		return
	}

	body := components.Body.Get(playerEntry)
	camera.Position = physics.CameraOffset(
		math.Vec2{X: body.X, Y: body.Y},
		math.Vec2{X: float64(config.C.Width), Y: float64(config.C.Height)},
		math.Vec2{X: w.Width(), Y: w.Height()},
	)
}

// cameraPosition returns the current viewport offset, or the origin without a camera.
func cameraPosition(e *ecs.ECS) math.Vec2 {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return math.Vec2{}
	}
	return components.Camera.Get(cameraEntry).Position
}

// updateScreenShake advances the shake and recomputes its jitter
func updateScreenShake(camera *components.CameraData) {
	if camera.Shake <= 0 {
		camera.Jitter = math.Vec2{}
		return
	}
	camera.Shake--

	progress := float64(camera.Shake) / float64(max(config.Camera.ShakeFrames, 1))
	intensity := config.Camera.ShakeIntensity * progress
	t := float64(camera.Shake) * 0.35
	camera.Jitter = math.Vec2{
		X: shakeNoise.Noise1D(t) * intensity,
		Y: shakeNoise.Noise1D(t+100) * intensity,
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	components.Camera.Get(cameraEntry).Shake = config.Camera.ShakeFrames
}

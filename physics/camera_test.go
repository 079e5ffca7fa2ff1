package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestCameraOffset(t *testing.T) {
	world := dmath.Vec2{X: 1000, Y: 1000}
	viewport := dmath.Vec2{X: 500, Y: 500}

	tests := []struct {
		name   string
		target dmath.Vec2
		want   dmath.Vec2
	}{
		{"origin", dmath.Vec2{X: 0, Y: 0}, dmath.Vec2{X: 0, Y: 0}},
		{"far corner", dmath.Vec2{X: 800, Y: 800}, dmath.Vec2{X: 500, Y: 500}},
		{"middle", dmath.Vec2{X: 500, Y: 400}, dmath.Vec2{X: 250, Y: 150}},
		{"edge of world", dmath.Vec2{X: 1000, Y: 0}, dmath.Vec2{X: 500, Y: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CameraOffset(tt.target, viewport, world))
		})
	}
}

func TestCameraOffsetSmallWorldPinsToZero(t *testing.T) {
	world := dmath.Vec2{X: 300, Y: 2000}
	viewport := dmath.Vec2{X: 500, Y: 500}

	got := CameraOffset(dmath.Vec2{X: 250, Y: 1000}, viewport, world)
	assert.Equal(t, 0.0, got.X)
	assert.Equal(t, 750.0, got.Y)
}

func TestCameraOffsetStaysInBounds(t *testing.T) {
	world := dmath.Vec2{X: 1280, Y: 960}
	viewport := dmath.Vec2{X: 640, Y: 360}

	for x := 0.0; x <= world.X; x += 37 {
		for y := 0.0; y <= world.Y; y += 41 {
			got := CameraOffset(dmath.Vec2{X: x, Y: y}, viewport, world)
			assert.GreaterOrEqual(t, got.X, 0.0)
			assert.LessOrEqual(t, got.X, world.X-viewport.X)
			assert.GreaterOrEqual(t, got.Y, 0.0)
			assert.LessOrEqual(t, got.Y, world.Y-viewport.Y)
		}
	}
}

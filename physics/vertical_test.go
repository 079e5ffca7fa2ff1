package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultParams = Params{Gravity: 3, JumpForce: 17}

func TestFreeFallThenLanding(t *testing.T) {
	// Body bottom starts at 32; after ten frames at gravity 3 it sits at 62,
	// directly above the floor.
	occ := floorAt(62)
	b := Body{X: 0, Y: 0, Size: 16}
	var v Vertical

	for frame := 1; frame <= 10; frame++ {
		v.Update(occ, &b, defaultParams, false)
		require.False(t, v.Grounded, "frame %d", frame)
		require.Equal(t, float64(3*frame), b.Y, "frame %d", frame)
	}

	v.Update(occ, &b, defaultParams, false)
	assert.True(t, v.Grounded)
	assert.False(t, v.Jumping)
	assert.Equal(t, 30.0, b.Y)
}

func TestFallStopsFlushWithGround(t *testing.T) {
	occ := floorAt(34)
	b := Body{X: 0, Y: 0, Size: 16}
	var v Vertical

	v.Update(occ, &b, defaultParams, false)
	assert.Equal(t, 2.0, b.Y)
	assert.False(t, v.Grounded)

	v.Update(occ, &b, defaultParams, false)
	assert.Equal(t, 2.0, b.Y)
	assert.True(t, v.Grounded)
}

func TestJumpRequiresGround(t *testing.T) {
	b := Body{X: 0, Y: 100, Size: 16}
	v := Vertical{VelocityY: 5}

	assert.False(t, v.TryJump(b, 17))
	assert.Equal(t, 5, v.VelocityY)
	assert.False(t, v.Jumping)
}

func TestJumpHeadroom(t *testing.T) {
	v := Vertical{Grounded: true}
	assert.False(t, v.TryJump(Body{Y: 17, Size: 16}, 17))
	assert.True(t, v.Grounded)

	assert.True(t, v.TryJump(Body{Y: 18, Size: 16}, 17))
	assert.Equal(t, 17, v.VelocityY)
	assert.True(t, v.Jumping)
	assert.False(t, v.Grounded)
}

func TestJumpArc(t *testing.T) {
	occ := floorAt(232)
	b := Body{X: 0, Y: 200, Size: 16}
	v := Vertical{Grounded: true}

	// Grounded with jump held: settle keeps it grounded, then the jump starts.
	v.Update(occ, &b, defaultParams, true)
	require.True(t, v.Jumping)
	require.Equal(t, 200.0, b.Y)

	// First airborne frame ascends by the full jump force and falls by gravity.
	v.Update(occ, &b, defaultParams, false)
	assert.Equal(t, 200.0-17+3, b.Y)
	assert.Equal(t, 14, v.VelocityY)

	for i := 0; i < 100 && !v.Grounded; i++ {
		v.Update(occ, &b, defaultParams, false)
		require.False(t, v.Jumping && v.Grounded)
	}
	assert.True(t, v.Grounded)
	assert.Equal(t, 200.0, b.Y)
}

func TestAscentTruncatedByCeiling(t *testing.T) {
	occ := OccupancyFunc(func(x, y float64) bool { return y < 95 || y >= 132 })
	b := Body{X: 0, Y: 100, Size: 16}
	v := Vertical{VelocityY: 17, Jumping: true}

	v.Ascend(occ, &b, 3)
	assert.Equal(t, 95.0, b.Y)
	assert.Equal(t, 14, v.VelocityY)
}

func TestVelocityDecayClampsAtZero(t *testing.T) {
	b := Body{X: 0, Y: 100, Size: 16}
	v := Vertical{VelocityY: 2, Jumping: true}

	v.Ascend(open, &b, 3)
	assert.Equal(t, 0, v.VelocityY)
}

func TestJumpingImpliesNotGrounded(t *testing.T) {
	occ := OccupancyFunc(func(x, y float64) bool { return y >= 300 || (x >= 60 && y >= 200) })
	b := Body{X: 0, Y: 200, Size: 16}
	var v Vertical

	for frame := 0; frame < 300; frame++ {
		jump := frame%7 == 0
		v.Update(occ, &b, defaultParams, jump)
		if frame%11 == 0 {
			Step(occ, &b, 1, 0, 5)
		}
		require.False(t, v.Jumping && v.Grounded, "frame %d", frame)
		require.GreaterOrEqual(t, v.VelocityY, 0)
	}
}

func TestFlyBypassesGravity(t *testing.T) {
	b := Body{X: 0, Y: 100, Size: 16}
	v := Vertical{VelocityY: 9, Jumping: true}

	v.Fly(open, &b, 5, false, false)
	assert.Equal(t, 100.0, b.Y)
	assert.Equal(t, Vertical{}, v)

	v.Fly(open, &b, 5, true, false)
	assert.Equal(t, 95.0, b.Y)

	v.Fly(floorAt(130), &b, 5, false, true)
	assert.Equal(t, 98.0, b.Y)
}

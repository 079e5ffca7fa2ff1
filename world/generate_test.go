package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams(seed int64) GenParams {
	return GenParams{
		Columns:          120,
		Rows:             50,
		TileSize:         32,
		Seed:             seed,
		SurfaceLevel:     0.35,
		SurfaceAmplitude: 6,
		DirtDepth:        3,
		CaveThreshold:    0.7,
		TreeChance:       0.1,
		ChasmWidth:       4,
	}
}

func tiles(w *World) []Block {
	out := make([]Block, 0, w.Columns()*w.Rows())
	for row := 0; row < w.Rows(); row++ {
		for col := 0; col < w.Columns(); col++ {
			out = append(out, w.Block(col, row))
		}
	}
	return out
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, sa, err := Generate(testParams(7))
	require.NoError(t, err)
	b, sb, err := Generate(testParams(7))
	require.NoError(t, err)

	assert.Equal(t, tiles(a), tiles(b))
	assert.Equal(t, sa, sb)
}

func TestGenerateSpawnStandsOnGround(t *testing.T) {
	w, spawns, err := Generate(testParams(3))
	require.NoError(t, err)

	x := spawns.Player.X + 1
	assert.True(t, w.IsBlocked(x, spawns.Player.Y), "ground under the feet")
	assert.False(t, w.IsBlocked(x, spawns.Player.Y-1), "air above the ground")
	assert.False(t, w.IsBlocked(x, spawns.Player.Y-32))
}

func TestGenerateHasOpenChasm(t *testing.T) {
	w, _, err := Generate(testParams(11))
	require.NoError(t, err)

	open := 0
	for col := 0; col < w.Columns(); col++ {
		empty := true
		for row := 0; row < w.Rows(); row++ {
			if w.Block(col, row) != Air {
				empty = false
				break
			}
		}
		if empty {
			open++
		}
	}
	assert.Equal(t, 4, open)
}

func TestGenerateBedrockFloor(t *testing.T) {
	p := testParams(5)
	p.ChasmWidth = 0
	w, _, err := Generate(p)
	require.NoError(t, err)

	for col := 0; col < w.Columns(); col++ {
		assert.Equal(t, Bedrock, w.Block(col, w.Rows()-1), "column %d", col)
	}
}

func TestGenerateRejectsShallowWorld(t *testing.T) {
	p := testParams(1)
	p.Rows = 8
	_, _, err := Generate(p)
	assert.ErrorIs(t, err, ErrBadDimensions)
}

package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := New(10, 8, 32)
	require.NoError(t, err)
	return w
}

func TestNewRejectsEmptyWorld(t *testing.T) {
	_, err := New(0, 8, 32)
	assert.ErrorIs(t, err, ErrBadDimensions)

	_, err = New(4, 4, 0)
	assert.ErrorIs(t, err, ErrBadDimensions)
}

func TestIsBlockedEdges(t *testing.T) {
	w := newTestWorld(t)

	assert.True(t, w.IsBlocked(-1, 10), "left wall")
	assert.True(t, w.IsBlocked(w.Width(), 10), "right wall")
	assert.True(t, w.IsBlocked(10, -1), "ceiling")
	assert.False(t, w.IsBlocked(10, w.Height()), "open floor")
	assert.False(t, w.IsBlocked(10, w.Height()+500))
	assert.False(t, w.IsBlocked(0, 0))
	assert.False(t, w.IsBlocked(w.Width()-1, w.Height()-1))
}

func TestSetBlockUpdatesOccupancy(t *testing.T) {
	w := newTestWorld(t)
	w.SetBlock(2, 3, Stone)

	assert.Equal(t, Stone, w.Block(2, 3))
	assert.True(t, w.IsBlocked(64, 96))
	assert.True(t, w.IsBlocked(95, 127))
	assert.False(t, w.IsBlocked(63, 96))
	assert.False(t, w.IsBlocked(96, 96))
	assert.False(t, w.IsBlocked(64, 128))

	w.SetBlock(2, 3, Air)
	assert.False(t, w.IsBlocked(64, 96))
	assert.Empty(t, w.Space().Objects())
}

func TestSetBlockReplacesObject(t *testing.T) {
	w := newTestWorld(t)
	w.SetBlock(1, 1, Dirt)
	w.SetBlock(1, 1, Stone)

	require.Len(t, w.Space().Objects(), 1)
	assert.Equal(t, Stone, w.Space().Objects()[0].Data)
}

func TestSetBlockOutsideIsIgnored(t *testing.T) {
	w := newTestWorld(t)
	w.SetBlock(-1, 0, Stone)
	w.SetBlock(0, 8, Stone)

	assert.Empty(t, w.Space().Objects())
	assert.Equal(t, Air, w.Block(-1, 0))
}

func TestMine(t *testing.T) {
	w := newTestWorld(t)
	w.SetBlock(0, 7, Grass)
	w.SetBlock(1, 7, Bedrock)

	b, ok := w.Mine(5, 7*32+5)
	assert.True(t, ok)
	assert.Equal(t, Grass, b)
	assert.Equal(t, "dirt", b.Drop())
	assert.False(t, w.IsBlocked(5, 7*32+5))

	_, ok = w.Mine(5, 7*32+5)
	assert.False(t, ok, "air")

	_, ok = w.Mine(40, 7*32+5)
	assert.False(t, ok, "bedrock")
	assert.Equal(t, Bedrock, w.Block(1, 7))

	_, ok = w.Mine(-5, 0)
	assert.False(t, ok, "outside")
}

func TestPlace(t *testing.T) {
	w := newTestWorld(t)

	assert.True(t, w.Place(100, 100, Planks))
	assert.Equal(t, Planks, w.Block(3, 3))
	assert.True(t, w.IsBlocked(100, 100))

	assert.False(t, w.Place(100, 100, Dirt), "occupied")
	assert.False(t, w.Place(40, 40, Air), "air is not placeable")
	assert.False(t, w.Place(-3, 40, Dirt), "outside")
	assert.False(t, w.Place(40, w.Height()+1, Dirt), "below the world")
}

func TestBlockByName(t *testing.T) {
	b, ok := BlockByName("planks")
	assert.True(t, ok)
	assert.Equal(t, Planks, b)

	_, ok = BlockByName("diamond")
	assert.False(t, ok)
	assert.False(t, Block(200).Solid())
	assert.Equal(t, "unknown", Block(200).String())
}

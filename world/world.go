package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/blockrunner/tags"
	"github.com/solarlune/resolv"
)

// ErrBadDimensions is returned for worlds without any tiles.
var ErrBadDimensions = errors.New("world dimensions must be positive")

// Point is a world position. Spawn points mark where an entity's feet rest,
// measured from its left edge.
type Point struct {
	X, Y float64
}

// Spawns lists the entity spawn points of a world.
type Spawns struct {
	Player  Point
	Boss    Point
	HasBoss bool
}

// World is a fixed-size grid of blocks. Solid blocks are mirrored as objects in
// a resolv space whose cells match the tiles, and the space answers occupancy
// queries. Entities may share the space under their own tags.
type World struct {
	cols, rows int
	tileSize   int
	tiles      []Block
	objects    []*resolv.Object
	space      *resolv.Space
}

// New returns an empty world of cols x rows tiles.
func New(cols, rows, tileSize int) (*World, error) {
	if cols <= 0 || rows <= 0 || tileSize <= 0 {
		return nil, fmt.Errorf("%w: %dx%d tiles of %d", ErrBadDimensions, cols, rows, tileSize)
	}
	return &World{
		cols:     cols,
		rows:     rows,
		tileSize: tileSize,
		tiles:    make([]Block, cols*rows),
		objects:  make([]*resolv.Object, cols*rows),
		space:    resolv.NewSpace(cols*tileSize, rows*tileSize, tileSize, tileSize),
	}, nil
}

func (w *World) Columns() int  { return w.cols }
func (w *World) Rows() int     { return w.rows }
func (w *World) TileSize() int { return w.tileSize }

func (w *World) Width() float64  { return float64(w.cols * w.tileSize) }
func (w *World) Height() float64 { return float64(w.rows * w.tileSize) }

// Space is the resolv space backing the world.
func (w *World) Space() *resolv.Space { return w.space }

func (w *World) inBounds(col, row int) bool {
	return col >= 0 && col < w.cols && row >= 0 && row < w.rows
}

// Block returns the block at a tile, or Air outside the world.
func (w *World) Block(col, row int) Block {
	if !w.inBounds(col, row) {
		return Air
	}
	return w.tiles[row*w.cols+col]
}

// SetBlock replaces the block at a tile. Tiles outside the world are ignored.
func (w *World) SetBlock(col, row int, b Block) {
	if !w.inBounds(col, row) {
		return
	}
	i := row*w.cols + col
	w.tiles[i] = b

	if obj := w.objects[i]; obj != nil {
		w.space.Remove(obj)
		w.objects[i] = nil
	}
	if b.Solid() {
		ts := float64(w.tileSize)
		obj := resolv.NewObject(float64(col)*ts, float64(row)*ts, ts, ts, tags.ResolvSolid)
		obj.Data = b
		w.space.Add(obj)
		w.objects[i] = obj
	}
}

// TileAt returns the tile containing a world point.
func (w *World) TileAt(x, y float64) (col, row int, ok bool) {
	ts := float64(w.tileSize)
	col, row = int(math.Floor(x/ts)), int(math.Floor(y/ts))
	return col, row, w.inBounds(col, row)
}

// TileOrigin returns the top-left corner of a tile.
func (w *World) TileOrigin(col, row int) (float64, float64) {
	return float64(col * w.tileSize), float64(row * w.tileSize)
}

// IsBlocked reports whether a world point is solid. The left, right and top
// edges of the world are walls; below the bottom edge is open.
func (w *World) IsBlocked(x, y float64) bool {
	if x < 0 || x >= w.Width() || y < 0 {
		return true
	}
	if y >= w.Height() {
		return false
	}
	cell := w.space.Cell(w.space.WorldToSpace(x, y))
	return cell != nil && cell.ContainsTags(tags.ResolvSolid)
}

// Mine removes the block under a world point if it can be mined and returns it.
func (w *World) Mine(x, y float64) (Block, bool) {
	col, row, ok := w.TileAt(x, y)
	if !ok {
		return Air, false
	}
	b := w.Block(col, row)
	if !b.Mineable() {
		return Air, false
	}
	w.SetBlock(col, row, Air)
	return b, true
}

// Place puts a solid block into the empty tile under a world point.
func (w *World) Place(x, y float64, b Block) bool {
	col, row, ok := w.TileAt(x, y)
	if !ok || !b.Solid() || w.Block(col, row) != Air {
		return false
	}
	w.SetBlock(col, row, b)
	return true
}

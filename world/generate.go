package world

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// GenParams shapes a generated world.
type GenParams struct {
	Columns, Rows, TileSize int
	Seed                    int64

	SurfaceLevel     float64 // fraction of rows above the mean surface
	SurfaceAmplitude int
	DirtDepth        int
	CaveThreshold    float64
	TreeChance       float64
	ChasmWidth       int
}

const (
	noiseAlpha = 2.0
	noiseBeta  = 2.0
	noiseOcts  = 3

	surfaceScale = 24.0
	caveScale    = 10.0

	minSurface = 7 // room for a tree above the highest surface
	spawnClear = 3 // columns around the spawn kept free of trees
)

// Generate builds terrain from Perlin noise: a rolling grass surface over dirt
// and stone, caves below the surface, scattered trees, a bedrock floor, and one
// chasm that is open all the way down. The player spawns on the surface near
// the left edge. The same params always produce the same world.
func Generate(p GenParams) (*World, Spawns, error) {
	if p.Rows < minSurface+p.SurfaceAmplitude+4 {
		return nil, Spawns{}, fmt.Errorf("%w: %d rows is too shallow for terrain", ErrBadDimensions, p.Rows)
	}
	w, err := New(p.Columns, p.Rows, p.TileSize)
	if err != nil {
		return nil, Spawns{}, err
	}

	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOcts, p.Seed)
	rng := rand.New(rand.NewSource(p.Seed))

	surface := surfaceHeights(noise, p)
	spawnCol := max(2, p.Columns/8)
	chasmStart, chasmEnd := chasmColumns(rng, p, spawnCol)

	for col := 0; col < p.Columns; col++ {
		if col >= chasmStart && col < chasmEnd {
			continue
		}
		top := surface[col]
		for row := top; row < p.Rows; row++ {
			w.SetBlock(col, row, terrainBlock(noise, p, col, row, top))
		}
	}

	for col := 1; col < p.Columns-1; col++ {
		nearSpawn := col >= spawnCol-spawnClear && col <= spawnCol+spawnClear
		nearChasm := col >= chasmStart-1 && col <= chasmEnd
		if nearSpawn || nearChasm || rng.Float64() >= p.TreeChance {
			continue
		}
		plantTree(w, col, surface[col])
		col += 2
	}

	ts := float64(p.TileSize)
	return w, Spawns{Player: Point{X: float64(spawnCol) * ts, Y: float64(surface[spawnCol]) * ts}}, nil
}

func surfaceHeights(noise *perlin.Perlin, p GenParams) []int {
	mean := int(float64(p.Rows) * p.SurfaceLevel)
	lowest := p.Rows - p.DirtDepth - 3
	heights := make([]int, p.Columns)
	for col := range heights {
		n := noise.Noise1D(float64(col) / surfaceScale)
		h := mean + int(math.Round(n*float64(p.SurfaceAmplitude)*2))
		heights[col] = min(max(h, minSurface), lowest)
	}
	return heights
}

// chasmColumns picks the open chasm in the right half of the world.
func chasmColumns(rng *rand.Rand, p GenParams, spawnCol int) (int, int) {
	if p.ChasmWidth <= 0 {
		return -1, -1
	}
	lo := max(p.Columns/2, spawnCol+4*spawnClear)
	hi := p.Columns - p.ChasmWidth - 2
	if hi <= lo {
		return -1, -1
	}
	start := lo + rng.Intn(hi-lo)
	return start, start + p.ChasmWidth
}

func terrainBlock(noise *perlin.Perlin, p GenParams, col, row, top int) Block {
	switch {
	case row == p.Rows-1:
		return Bedrock
	case row == top:
		return Grass
	case row <= top+p.DirtDepth:
		return Dirt
	}
	// Noise2D is roughly in [-1, 1].
	cave := (noise.Noise2D(float64(col)/caveScale, float64(row)/caveScale) + 1) / 2
	if row > top+2 && row < p.Rows-2 && cave > p.CaveThreshold {
		return Air
	}
	return Stone
}

func plantTree(w *World, col, top int) {
	for row := top - 1; row >= top-3; row-- {
		w.SetBlock(col, row, Wood)
	}
	for dc := -1; dc <= 1; dc++ {
		for row := top - 5; row <= top-4; row++ {
			w.SetBlock(col+dc, row, Leaves)
		}
	}
}

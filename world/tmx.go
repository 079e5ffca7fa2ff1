package world

import (
	"errors"
	"fmt"
	"io/fs"
	"math"

	"github.com/lafriks/go-tiled"
)

// ErrNoSpawn is returned for levels without a player spawn point.
var ErrNoSpawn = errors.New("level has no player spawn")

const (
	blocksLayer  = "blocks"
	spawnsGroup  = "spawns"
	blockPropKey = "block"
)

// LoadTMX builds a world from a Tiled map in fsys.
//
// Tiles on the "blocks" layer become blocks named by their tileset tile's
// "block" property; tiles without one map by tile id, starting at grass.
// Objects named "player" and "boss" in the "spawns" group give spawn points.
func LoadTMX(fsys fs.FS, path string) (*World, Spawns, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, Spawns{}, fmt.Errorf("load level %s: %w", path, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, Spawns{}, fmt.Errorf("level %s: tiles must be square, got %dx%d", path, levelMap.TileWidth, levelMap.TileHeight)
	}

	w, err := New(levelMap.Width, levelMap.Height, levelMap.TileWidth)
	if err != nil {
		return nil, Spawns{}, fmt.Errorf("level %s: %w", path, err)
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != blocksLayer {
			continue
		}
		for row := 0; row < levelMap.Height; row++ {
			for col := 0; col < levelMap.Width; col++ {
				tile := layer.Tiles[row*levelMap.Width+col]
				if tile.IsNil() {
					continue
				}
				w.SetBlock(col, row, blockForTile(tile))
			}
		}
		break
	}

	var spawns Spawns
	hasPlayer := false
	for _, og := range levelMap.ObjectGroups {
		if og.Name != spawnsGroup {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case "player":
				spawns.Player = spawnPoint(o)
				hasPlayer = true
			case "boss":
				spawns.Boss = spawnPoint(o)
				spawns.HasBoss = true
			}
		}
	}
	if !hasPlayer {
		return nil, Spawns{}, fmt.Errorf("level %s: %w", path, ErrNoSpawn)
	}
	return w, spawns, nil
}

// spawnPoint snaps an object to whole units. Bodies only stop flush against
// blocks when they sit on integer positions.
func spawnPoint(o *tiled.Object) Point {
	return Point{X: math.Round(o.X), Y: math.Round(o.Y)}
}

func blockForTile(tile *tiled.LayerTile) Block {
	if tile.Tileset != nil {
		if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
			if b, ok := BlockByName(tilesetTile.Properties.GetString(blockPropKey)); ok {
				return b
			}
		}
	}
	if b := Block(tile.ID + 1); b.valid() {
		return b
	}
	return Stone
}

package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/blockrunner/world"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const levelsDir = "levels"

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader returns a loader over the levels bundled with the game.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewLevelLoaderFS returns a loader over any file system with a levels directory.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// Levels lists the level names, sorted.
func (l *LevelLoader) Levels() ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, levelsDir)
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, strings.TrimSuffix(entry.Name(), ".tmx"))
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadLevel builds the world for a named level.
func (l *LevelLoader) LoadLevel(name string) (*world.World, world.Spawns, error) {
	return world.LoadTMX(l.fsys, path.Join(levelsDir, name+".tmx"))
}

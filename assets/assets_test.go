package assets

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledLevelsLoad(t *testing.T) {
	loader := NewLevelLoader()

	names, err := loader.Levels()
	require.NoError(t, err)
	require.Contains(t, names, "meadow")

	for _, name := range names {
		w, spawns, err := loader.LoadLevel(name)
		require.NoError(t, err, name)
		assert.Greater(t, w.Columns(), 0)

		// The player must start standing in open air on solid ground.
		assert.False(t, w.IsBlocked(spawns.Player.X, spawns.Player.Y-1), name)
		assert.True(t, w.IsBlocked(spawns.Player.X, spawns.Player.Y), name)
	}
}

func TestLevelsSkipsOtherFiles(t *testing.T) {
	loader := NewLevelLoaderFS(fstest.MapFS{
		"levels/b.tmx":      {Data: []byte("")},
		"levels/a.tmx":      {Data: []byte("")},
		"levels/readme.txt": {Data: []byte("")},
	})

	names, err := loader.Levels()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestLoadLevelMissing(t *testing.T) {
	_, _, err := NewLevelLoaderFS(fstest.MapFS{}).LoadLevel("nowhere")
	assert.Error(t, err)
}

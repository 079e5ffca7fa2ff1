package scenes

import (
	"testing"

	"github.com/automoto/blockrunner/components"
	"github.com/automoto/blockrunner/systems"
	"github.com/automoto/blockrunner/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldSourceLoadsLevel(t *testing.T) {
	name, w, spawns, err := WorldSource{Level: "meadow"}.Load()
	require.NoError(t, err)
	assert.Equal(t, "meadow", name)
	assert.True(t, spawns.HasBoss)
	assert.Greater(t, w.Columns(), 0)
}

func TestWorldSourceUnknownLevel(t *testing.T) {
	_, _, _, err := WorldSource{Level: "nope"}.Load()
	assert.Error(t, err)
}

func TestWorldSourceGenerates(t *testing.T) {
	name, w, _, err := WorldSource{Seed: 42}.Load()
	require.NoError(t, err)
	assert.Equal(t, "seed 42", name)
	assert.Greater(t, w.Columns(), 0)
}

func TestNewGameplayECS(t *testing.T) {
	name, w, spawns, err := WorldSource{Level: "meadow"}.Load()
	require.NoError(t, err)

	e := NewGameplayECS(name, w, spawns)

	player, ok := systems.PlayerEntry(e)
	require.True(t, ok)
	assert.True(t, components.Player.Get(player).IsAlive)
	assert.Equal(t, spawns.Player.Y, components.Body.Get(player).Bottom())

	_, ok = tags.Boss.First(e.World)
	assert.True(t, ok)

	_, ok = components.Camera.First(e.World)
	assert.True(t, ok)
	_, ok = components.HUD.First(e.World)
	assert.True(t, ok)
	assert.False(t, systems.GetOrCreateGame(e).DeathScreen)
}

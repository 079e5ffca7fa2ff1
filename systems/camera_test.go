package systems

import (
	"testing"

	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraFollowsPlayer(t *testing.T) {
	w, err := world.New(100, 40, testTile)
	require.NoError(t, err)
	e, player := newTestGame(t, w, 1600)
	components.Body.Get(player).Y = 608

	UpdateCamera(e)

	cam := cameraPosition(e)
	assert.Equal(t, 1600-float64(cfg.C.Width)/2, cam.X)
	assert.Equal(t, 608-float64(cfg.C.Height)/2, cam.Y)
}

func TestCameraPinnedInSmallWorld(t *testing.T) {
	w := newTestWorld(t)
	e, _ := newTestGame(t, w, 300)

	UpdateCamera(e)

	cam := cameraPosition(e)
	assert.Equal(t, 0.0, cam.X)
	assert.Equal(t, 0.0, cam.Y)
}

func TestScreenShakeStaysOutOfPosition(t *testing.T) {
	w, err := world.New(100, 40, testTile)
	require.NoError(t, err)
	e, player := newTestGame(t, w, 10)
	require.True(t, TakeDamage(e, player, 5))

	entry, ok := components.Camera.First(e.World)
	require.True(t, ok)
	camera := components.Camera.Get(entry)

	for i := 0; i < cfg.Camera.ShakeFrames; i++ {
		UpdateCamera(e)
		assert.GreaterOrEqual(t, camera.Position.X, 0.0)
		assert.GreaterOrEqual(t, camera.Position.Y, 0.0)
	}

	UpdateCamera(e)
	assert.Equal(t, 0, camera.Shake)
	assert.Zero(t, camera.Jitter.X)
	assert.Zero(t, camera.Jitter.Y)
}

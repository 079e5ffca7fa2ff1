package factory

import (
	"testing"

	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/inventory"
	"github.com/automoto/blockrunner/tags"
	"github.com/automoto/blockrunner/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestBodyAt(t *testing.T) {
	b := BodyAt(world.Point{X: 10, Y: 100}, 16)
	assert.Equal(t, 10.0, b.X)
	assert.Equal(t, 100.0, b.Bottom())
	assert.Equal(t, 32.0, b.Height())
}

func TestCreatePlayer(t *testing.T) {
	w, err := world.New(10, 10, 32)
	require.NoError(t, err)
	e := ecs.NewECS(donburi.NewWorld())

	player := CreatePlayer(e, w, world.Point{X: 32, Y: 160})

	p := components.Player.Get(player)
	assert.True(t, p.IsAlive)
	assert.Equal(t, cfg.Player.Speed, p.Speed)
	assert.Equal(t, world.Point{X: 32, Y: 160}, p.Spawn)

	hp := components.Health.Get(player)
	assert.Equal(t, cfg.Player.MaxHealth, hp.Current)

	inv := components.Inventory.Get(player)
	for _, it := range cfg.Inventory.StartingItems {
		assert.Equal(t, it.Count, inv.Count(it.Name), it.Name)
	}
	item, ok := inv.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, inventory.Pickaxe, item.Name)

	obj := components.Object.Get(player)
	require.NotNil(t, obj.Object)
	assert.True(t, obj.HasTags(tags.ResolvPlayer))
	assert.Same(t, player, obj.Data)
	assert.Contains(t, w.Space().Objects(), obj.Object)
}

func TestCreateArrowCenteredOnY(t *testing.T) {
	w, err := world.New(10, 10, 32)
	require.NoError(t, err)
	e := ecs.NewECS(donburi.NewWorld())

	arrow := CreateArrow(e, w, 50, 100, -1)

	body := components.Body.Get(arrow)
	assert.Equal(t, 99.0, body.Y)
	assert.Equal(t, 101.0, body.Bottom())
	assert.Equal(t, -1, components.Arrow.Get(arrow).Direction)
}

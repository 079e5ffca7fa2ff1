package systems

import (
	"testing"

	"github.com/automoto/blockrunner/components"
	"github.com/automoto/blockrunner/systems/factory"
	"github.com/automoto/blockrunner/world"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testTile    = 32
	testColumns = 20
	testRows    = 8
	groundRow   = 6
	groundTop   = groundRow * testTile
)

// newTestWorld builds a flat dirt world with the ground top at groundTop.
// Columns listed in chasm have no ground at all and open onto the bottom edge.
func newTestWorld(t *testing.T, chasm ...int) *world.World {
	t.Helper()
	w, err := world.New(testColumns, testRows, testTile)
	require.NoError(t, err)

	open := map[int]bool{}
	for _, c := range chasm {
		open[c] = true
	}
	for col := 0; col < testColumns; col++ {
		if open[col] {
			continue
		}
		for row := groundRow; row < testRows; row++ {
			w.SetBlock(col, row, world.Dirt)
		}
	}
	return w
}

// newTestGame spawns the player with its feet on the ground at spawnX.
func newTestGame(t *testing.T, w *world.World, spawnX float64) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())

	spawns := world.Spawns{Player: world.Point{X: spawnX, Y: groundTop}}
	factory.CreateLevel(e, "test", w, spawns)
	factory.CreateCamera(e)
	factory.CreateDeathScreen(e)
	factory.CreateHUD(e)

	player := factory.CreatePlayer(e, w, spawns.Player)
	GetOrCreateGame(e).Player = player
	return e, player
}

// step runs one controller frame with the given input.
func step(e *ecs.ECS, player *donburi.Entry, w *world.World, in components.InputState) {
	updatePlayer(e, player, w, in, cameraPosition(e))
}

// selectItem selects the slot holding the named item.
func selectItem(t *testing.T, player *donburi.Entry, name string) {
	t.Helper()
	inv := components.Inventory.Get(player)
	for i := 0; i < inv.Len(); i++ {
		if item, ok := inv.Slot(i); ok && item.Name == name {
			inv.Select(i)
			return
		}
	}
	t.Fatalf("no %s in inventory", name)
}

func bossCount(e *ecs.ECS) int {
	n := 0
	components.Boss.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func pendingSFX(e *ecs.ECS) []int {
	var ids []int
	for _, id := range GetOrCreateAudio(e).PendingSFX {
		ids = append(ids, int(id))
	}
	return ids
}

package systems

import (
	"testing"

	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/inventory"
	"github.com/automoto/blockrunner/systems/factory"
	"github.com/automoto/blockrunner/tags"
	"github.com/automoto/blockrunner/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestTakeDamage(t *testing.T) {
	w := newTestWorld(t)
	e, player := newTestGame(t, w, 40)
	health := components.Health.Get(player)
	p := components.Player.Get(player)

	require.True(t, TakeDamage(e, player, 30))
	assert.Equal(t, cfg.Player.MaxHealth-30, health.Current)
	assert.Equal(t, cfg.Player.DamageCooldown, p.DamageCooldown)

	// Immune until the cooldown runs out.
	assert.False(t, TakeDamage(e, player, 30))
	assert.Equal(t, cfg.Player.MaxHealth-30, health.Current)
}

func TestArmorReducesDamage(t *testing.T) {
	w := newTestWorld(t)
	e, player := newTestGame(t, w, 40)
	selectItem(t, player, inventory.Armor)
	useSelectedItem(e, player, w, math.Vec2{})

	health := components.Health.Get(player)
	before := health.Current
	require.True(t, TakeDamage(e, player, 15))
	assert.Equal(t, before-8, health.Current)
}

func TestDamageNeverBelowZero(t *testing.T) {
	w := newTestWorld(t)
	e, player := newTestGame(t, w, 40)

	TakeDamage(e, player, 1000)
	assert.Equal(t, 0, components.Health.Get(player).Current)
}

func TestPickaxeMinesTargetAndStoresDrop(t *testing.T) {
	w := newTestWorld(t)
	e, player := newTestGame(t, w, 40)
	selectItem(t, player, inventory.Pickaxe)
	inv := components.Inventory.Get(player)
	dirt := inv.Count("dirt")

	// Tile under the player's feet
	usePickaxe(e, player, w, 48, groundTop+1)
	assert.Equal(t, world.Air, w.Block(1, groundRow))
	assert.Equal(t, dirt+1, inv.Count("dirt"))
	assert.Equal(t, cfg.Combat.PickaxeCooldown, components.Tools.Get(player).PickaxeCooldown)

	// Cooling down
	usePickaxe(e, player, w, 80, groundTop+1)
	assert.Equal(t, world.Dirt, w.Block(2, groundRow))
}

func TestPickaxeOutOfReach(t *testing.T) {
	w := newTestWorld(t)
	e, player := newTestGame(t, w, 40)

	usePickaxe(e, player, w, 19*testTile, groundTop+1)
	assert.Equal(t, world.Dirt, w.Block(19, groundRow))
}

func TestPlaceBlock(t *testing.T) {
	w := newTestWorld(t)
	e, player := newTestGame(t, w, 40)
	selectItem(t, player, "dirt")
	inv := components.Inventory.Get(player)
	dirt := inv.Count("dirt")

	// In front of the player, one tile above the ground
	target := math.Vec2{X: 3*testTile + 16, Y: groundTop - 16}
	useSelectedItem(e, player, w, target)
	assert.Equal(t, world.Dirt, w.Block(3, groundRow-1))
	assert.Equal(t, dirt-1, inv.Count("dirt"))

	// Occupied tile
	useSelectedItem(e, player, w, target)
	assert.Equal(t, dirt-1, inv.Count("dirt"))

	// The tile the player stands in
	useSelectedItem(e, player, w, math.Vec2{X: 48, Y: groundTop - 16})
	assert.Equal(t, world.Air, w.Block(1, groundRow-1))
	assert.Equal(t, dirt-1, inv.Count("dirt"))
}

func TestSummonAndDefeatBoss(t *testing.T) {
	w := newTestWorld(t)
	e, player := newTestGame(t, w, 40)
	selectItem(t, player, inventory.CursedIdol)
	inv := components.Inventory.Get(player)
	meat := inv.Count(inventory.MobMeat)

	useSelectedItem(e, player, w, math.Vec2{})
	require.Equal(t, 1, bossCount(e))
	assert.Equal(t, 0, inv.Count(inventory.CursedIdol))

	boss, ok := tags.Boss.First(e.World)
	require.True(t, ok)
	assert.Greater(t, components.Body.Get(boss).X, components.Body.Get(player).X)

	damageBoss(e, boss, player, cfg.Boss.MaxHealth-1)
	assert.Equal(t, 1, bossCount(e))
	damageBoss(e, boss, player, 1)
	assert.Equal(t, 0, bossCount(e))
	assert.Equal(t, meat+cfg.Boss.DropCount, inv.Count(inventory.MobMeat))
}

func TestOnlyOneBoss(t *testing.T) {
	w := newTestWorld(t)
	e, player := newTestGame(t, w, 40)

	require.True(t, summonBoss(e, player, w))
	assert.False(t, summonBoss(e, player, w))
	assert.Equal(t, 1, bossCount(e))
}

func TestSwordHitsBossInFront(t *testing.T) {
	w := newTestWorld(t)
	e, player := newTestGame(t, w, 40)
	boss := factory.CreateBoss(e, w, world.Point{X: 60, Y: groundTop})

	useSword(e, player)

	assert.Equal(t, cfg.Boss.MaxHealth-cfg.Combat.SwordDamage, components.Health.Get(boss).Current)
	assert.Equal(t, cfg.Boss.HurtFlash, components.Boss.Get(boss).HurtTimer)
}

func TestArrowHitsBoss(t *testing.T) {
	w := newTestWorld(t)
	e, player := newTestGame(t, w, 40)
	boss := factory.CreateBoss(e, w, world.Point{X: 200, Y: groundTop})

	useBow(e, player, w)
	_, ok := tags.Arrow.First(e.World)
	require.True(t, ok)

	for i := 0; i < 30; i++ {
		UpdateArrows(e)
	}

	_, ok = tags.Arrow.First(e.World)
	assert.False(t, ok)
	assert.Equal(t, cfg.Boss.MaxHealth-cfg.Combat.ArrowDamage, components.Health.Get(boss).Current)
}

func TestArrowStopsAtWall(t *testing.T) {
	w := newTestWorld(t)
	w.SetBlock(4, groundRow-1, world.Stone)
	e, player := newTestGame(t, w, 40)

	useBow(e, player, w)
	for i := 0; i < 10; i++ {
		UpdateArrows(e)
	}

	_, ok := tags.Arrow.First(e.World)
	assert.False(t, ok)
}

func TestBossContactDamage(t *testing.T) {
	w := newTestWorld(t)
	e, player := newTestGame(t, w, 40)
	factory.CreateBoss(e, w, world.Point{X: 44, Y: groundTop})

	UpdateBoss(e)
	assert.Equal(t, cfg.Player.MaxHealth-cfg.Boss.ContactDamage, components.Health.Get(player).Current)

	UpdateBoss(e)
	assert.Equal(t, cfg.Player.MaxHealth-cfg.Boss.ContactDamage, components.Health.Get(player).Current)
}

func TestBossChasesPlayer(t *testing.T) {
	w := newTestWorld(t)
	e, _ := newTestGame(t, w, 40)
	boss := factory.CreateBoss(e, w, world.Point{X: 300, Y: groundTop})

	UpdateBoss(e)

	assert.Equal(t, 300-float64(cfg.Boss.Speed), components.Body.Get(boss).X)
	assert.True(t, components.Boss.Get(boss).FacingLeft)
}

func TestDeathDespawnsBoss(t *testing.T) {
	w := newTestWorld(t)
	e, player := newTestGame(t, w, 40)
	require.True(t, summonBoss(e, player, w))

	components.Health.Get(player).Current = 0
	step(e, player, w, idle)

	assert.Equal(t, 0, bossCount(e))
	assert.False(t, components.Player.Get(player).IsAlive)
}

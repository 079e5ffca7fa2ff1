package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectedItem(t *testing.T) {
	inv := New(10, 64)
	_, ok := inv.SelectedItem()
	assert.False(t, ok, "empty slot")

	inv.Add(Pickaxe, 1)
	it, ok := inv.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, Item{Name: Pickaxe, Count: 1}, it)
	assert.Equal(t, CategoryTool, it.Category())
	assert.False(t, it.Placeable())
}

func TestSelectIgnoresOutOfRange(t *testing.T) {
	inv := New(10, 64)
	inv.Select(4)
	inv.Select(10)
	inv.Select(-1)
	assert.Equal(t, 4, inv.Selected())
}

func TestCycleWraps(t *testing.T) {
	inv := New(10, 64)
	inv.Cycle(-1)
	assert.Equal(t, 9, inv.Selected())
	inv.Cycle(3)
	assert.Equal(t, 2, inv.Selected())
}

func TestReduceItemCount(t *testing.T) {
	inv := New(10, 64)
	inv.Add("dirt", 2)

	inv.ReduceItemCount(0)
	it, ok := inv.Slot(0)
	require.True(t, ok)
	assert.Equal(t, 1, it.Count)

	inv.ReduceItemCount(0)
	_, ok = inv.Slot(0)
	assert.False(t, ok)

	// Empty and invalid slots are no-ops.
	inv.ReduceItemCount(0)
	inv.ReduceItemCount(42)
	assert.Equal(t, 0, inv.Count("dirt"))
}

func TestAddStacksAndOverflows(t *testing.T) {
	inv := New(3, 10)
	inv.Add(Sword, 1)

	left := inv.Add("stone", 25)
	assert.Equal(t, 5, left)
	assert.Equal(t, 20, inv.Count("stone"))

	inv.ReduceItemCount(1)
	assert.Equal(t, 0, inv.Add("stone", 1), "tops up the partial stack")
	it, _ := inv.Slot(1)
	assert.Equal(t, 10, it.Count)
}

func TestAddUnknownItem(t *testing.T) {
	inv := New(10, 64)
	assert.Equal(t, 3, inv.Add("diamond", 3))
	assert.Equal(t, 0, inv.Add("dirt", -2))
	_, ok := inv.Slot(0)
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	d, ok := Lookup("planks")
	require.True(t, ok)
	assert.Equal(t, Def{Category: CategoryBlock, Placeable: true}, d)

	d, ok = Lookup(MobMeat)
	require.True(t, ok)
	assert.Equal(t, CategoryFood, d.Category)
}

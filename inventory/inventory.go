package inventory

// Inventory is a fixed row of item slots with one selected slot.
type Inventory struct {
	slots    []Item
	selected int
	maxStack int
}

// New returns an empty inventory.
func New(slots, maxStack int) *Inventory {
	return &Inventory{
		slots:    make([]Item, slots),
		maxStack: maxStack,
	}
}

// Len is the number of slots.
func (inv *Inventory) Len() int { return len(inv.slots) }

// Selected is the index of the selected slot.
func (inv *Inventory) Selected() int { return inv.selected }

// Select chooses a slot. Out of range indexes are ignored.
func (inv *Inventory) Select(slot int) {
	if slot < 0 || slot >= len(inv.slots) {
		return
	}
	inv.selected = slot
}

// Cycle moves the selection by delta, wrapping around.
func (inv *Inventory) Cycle(delta int) {
	n := len(inv.slots)
	if n == 0 {
		return
	}
	inv.selected = ((inv.selected+delta)%n + n) % n
}

// Slot returns the item in a slot.
func (inv *Inventory) Slot(slot int) (Item, bool) {
	if slot < 0 || slot >= len(inv.slots) || inv.slots[slot].empty() {
		return Item{}, false
	}
	return inv.slots[slot], true
}

// SelectedItem returns the item in the selected slot.
func (inv *Inventory) SelectedItem() (Item, bool) {
	return inv.Slot(inv.selected)
}

// ReduceItemCount removes one unit from a slot and empties it at zero.
func (inv *Inventory) ReduceItemCount(slot int) {
	if _, ok := inv.Slot(slot); !ok {
		return
	}
	inv.slots[slot].Count--
	if inv.slots[slot].Count <= 0 {
		inv.slots[slot] = Item{}
	}
}

// Add stores n units of a known item, topping up existing stacks before using
// empty slots. It returns how many units did not fit.
func (inv *Inventory) Add(name string, n int) int {
	if _, ok := Lookup(name); !ok || n <= 0 {
		return max(n, 0)
	}
	for i := range inv.slots {
		if n == 0 {
			return 0
		}
		s := &inv.slots[i]
		if s.Name == name && s.Count < inv.maxStack {
			add := min(n, inv.maxStack-s.Count)
			s.Count += add
			n -= add
		}
	}
	for i := range inv.slots {
		if n == 0 {
			return 0
		}
		if inv.slots[i].empty() {
			add := min(n, inv.maxStack)
			inv.slots[i] = Item{Name: name, Count: add}
			n -= add
		}
	}
	return n
}

// Count totals the units of an item across all slots.
func (inv *Inventory) Count(name string) int {
	total := 0
	for _, s := range inv.slots {
		if s.Name == name {
			total += s.Count
		}
	}
	return total
}

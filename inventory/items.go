package inventory

// Category decides what using an item does.
type Category int

const (
	CategoryNone Category = iota
	CategoryTool
	CategoryArmor
	CategoryJetpack
	CategoryBlock
	CategoryFood
	CategorySummon
)

// Item names with behavior attached.
const (
	Pickaxe    = "pickaxe"
	Sword      = "sword"
	Bow        = "bow"
	Armor      = "armor"
	Jetpack    = "jetpack"
	MobMeat    = "mob-meat"
	CursedIdol = "cursed-idol"
)

// Def describes an item kind.
type Def struct {
	Category  Category
	Placeable bool
}

var catalog = map[string]Def{
	Pickaxe:    {Category: CategoryTool},
	Sword:      {Category: CategoryTool},
	Bow:        {Category: CategoryTool},
	Armor:      {Category: CategoryArmor},
	Jetpack:    {Category: CategoryJetpack},
	MobMeat:    {Category: CategoryFood},
	CursedIdol: {Category: CategorySummon},
	"dirt":     {Category: CategoryBlock, Placeable: true},
	"stone":    {Category: CategoryBlock, Placeable: true},
	"sand":     {Category: CategoryBlock, Placeable: true},
	"wood":     {Category: CategoryBlock, Placeable: true},
	"planks":   {Category: CategoryBlock, Placeable: true},
}

// Lookup returns the definition of a named item.
func Lookup(name string) (Def, bool) {
	d, ok := catalog[name]
	return d, ok
}

// Item is a stack of one item kind in a slot.
type Item struct {
	Name  string
	Count int
}

func (it Item) Category() Category {
	return catalog[it.Name].Category
}

func (it Item) Placeable() bool {
	return catalog[it.Name].Placeable
}

func (it Item) empty() bool {
	return it.Name == "" || it.Count <= 0
}

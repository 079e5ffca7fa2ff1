package world

import "image/color"

// Block is the content of one tile.
type Block uint8

const (
	Air Block = iota
	Grass
	Dirt
	Stone
	Sand
	Wood
	Leaves
	Planks
	Bedrock
	blockCount
)

type blockInfo struct {
	name     string
	color    color.RGBA
	mineable bool
	drop     string // item added to the inventory when mined
}

var blocks = [blockCount]blockInfo{
	Air:     {name: "air"},
	Grass:   {name: "grass", color: color.RGBA{R: 86, G: 160, B: 60, A: 255}, mineable: true, drop: "dirt"},
	Dirt:    {name: "dirt", color: color.RGBA{R: 134, G: 96, B: 67, A: 255}, mineable: true, drop: "dirt"},
	Stone:   {name: "stone", color: color.RGBA{R: 125, G: 125, B: 125, A: 255}, mineable: true, drop: "stone"},
	Sand:    {name: "sand", color: color.RGBA{R: 220, G: 205, B: 140, A: 255}, mineable: true, drop: "sand"},
	Wood:    {name: "wood", color: color.RGBA{R: 105, G: 75, B: 40, A: 255}, mineable: true, drop: "wood"},
	Leaves:  {name: "leaves", color: color.RGBA{R: 50, G: 120, B: 40, A: 255}, mineable: true},
	Planks:  {name: "planks", color: color.RGBA{R: 180, G: 140, B: 90, A: 255}, mineable: true, drop: "planks"},
	Bedrock: {name: "bedrock", color: color.RGBA{R: 40, G: 40, B: 45, A: 255}},
}

func (b Block) valid() bool { return b < blockCount }

func (b Block) String() string {
	if !b.valid() {
		return "unknown"
	}
	return blocks[b].name
}

// Solid reports whether the block stops movement.
func (b Block) Solid() bool { return b != Air && b.valid() }

func (b Block) Mineable() bool { return b.valid() && blocks[b].mineable }

// Drop is the item name mined out of the block, or "" for none.
func (b Block) Drop() string {
	if !b.valid() {
		return ""
	}
	return blocks[b].drop
}

func (b Block) Color() color.RGBA {
	if !b.valid() {
		return color.RGBA{}
	}
	return blocks[b].color
}

// BlockByName looks a block up by its name.
func BlockByName(name string) (Block, bool) {
	for b := Air; b < blockCount; b++ {
		if blocks[b].name == name {
			return b, true
		}
	}
	return Air, false
}

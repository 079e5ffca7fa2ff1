package systems

import (
	"image/color"
	"strconv"

	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/automoto/blockrunner/fonts"
	"github.com/automoto/blockrunner/inventory"
	"github.com/automoto/blockrunner/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHUD pulses the highlight of the selected slot, restarting the pulse
// whenever the selection changes.
func UpdateHUD(ecs *ecs.ECS) {
	hudEntry, ok := components.HUD.First(ecs.World)
	if !ok {
		return
	}
	hud := components.HUD.Get(hudEntry)
	if hud.Pulse == nil {
		return
	}

	if playerEntry, ok := PlayerEntry(ecs); ok {
		selected := components.Inventory.Get(playerEntry).Selected()
		if selected != hud.LastSelected {
			hud.LastSelected = selected
			hud.Pulse.Reset()
		}
	}

	value, _, done := hud.Pulse.Update(1)
	hud.Highlight = value
	if done {
		hud.Pulse.Reset()
	}
}

// DrawHUD renders the health bar, equipment badges and the slot bar.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := PlayerEntry(ecs)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	h := cfg.HUD

	// Background
	vector.FillRect(screen,
		float32(h.Margin), float32(h.Margin),
		float32(h.BarWidth), float32(h.BarHeight),
		h.BarBgColor, false)

	// Current HP
	ratio := float32(0)
	if hp.Max > 0 {
		ratio = float32(hp.Current) / float32(hp.Max)
	}
	vector.FillRect(screen,
		float32(h.Margin), float32(h.Margin),
		float32(h.BarWidth)*ratio, float32(h.BarHeight),
		h.BarFgColor, false)

	small := fonts.Small.Get()
	label := strconv.Itoa(hp.Current) + "/" + strconv.Itoa(hp.Max)
	text.Draw(screen, label, small, h.Margin+4, h.Margin+h.BarHeight-3, h.CountTextColor)

	// Equipment badges
	badgeX := float32(h.Margin + h.BarWidth + 6)
	if player.ArmorEquipped {
		vector.FillRect(screen, badgeX, float32(h.Margin), float32(h.BarHeight), float32(h.BarHeight), cfg.Player.ArmorColor, false)
		badgeX += float32(h.BarHeight + 4)
	}
	if player.JetpackEquipped {
		vector.FillRect(screen, badgeX, float32(h.Margin), float32(h.BarHeight), float32(h.BarHeight), cfg.Player.JetpackColor, false)
	}

	drawSlotBar(ecs, screen, components.Inventory.Get(playerEntry).Inventory)
}

func drawSlotBar(ecs *ecs.ECS, screen *ebiten.Image, inv *inventory.Inventory) {
	h := cfg.HUD
	highlight := float32(1)
	if hudEntry, ok := components.HUD.First(ecs.World); ok {
		highlight = components.HUD.Get(hudEntry).Highlight
	}

	n := inv.Len()
	total := n*h.SlotSize + (n-1)*h.SlotGap
	x0 := (screen.Bounds().Dx() - total) / 2
	y := screen.Bounds().Dy() - h.Margin - h.SlotSize
	small := fonts.Small.Get()

	for i := 0; i < n; i++ {
		x := float32(x0 + i*(h.SlotSize+h.SlotGap))
		size := float32(h.SlotSize)

		vector.FillRect(screen, x, float32(y), size, size, h.SlotColor, false)
		edge := h.SlotEdgeColor
		if i == inv.Selected() {
			edge = fade(h.SelectedColor, highlight)
		}
		vector.StrokeRect(screen, x, float32(y), size, size, 2, edge, false)

		item, ok := inv.Slot(i)
		if !ok {
			continue
		}
		vector.FillRect(screen, x+5, float32(y)+5, size-10, size-10, itemColor(item), false)
		if item.Count > 1 {
			text.Draw(screen, strconv.Itoa(item.Count), small, int(x)+2, y+h.SlotSize-2, h.CountTextColor)
		}
	}
}

// itemColor is the swatch drawn for an item in the slot bar.
func itemColor(item inventory.Item) color.RGBA {
	if b, ok := world.BlockByName(item.Name); ok {
		return b.Color()
	}
	switch item.Name {
	case inventory.Pickaxe:
		return cfg.Gray
	case inventory.Sword:
		return cfg.LightBlue
	case inventory.Bow:
		return cfg.Combat.ArrowColor
	case inventory.Armor:
		return cfg.Player.ArmorColor
	case inventory.Jetpack:
		return cfg.Player.JetpackColor
	case inventory.MobMeat:
		return cfg.LightRed
	case inventory.CursedIdol:
		return cfg.Purple
	}
	return cfg.White
}

package systems

import (
	"strings"

	"github.com/automoto/blockrunner/components"
	cfg "github.com/automoto/blockrunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for device IDs to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input into the InputComponent. Everything after it in
// the frame reads the result through InputData.Snapshot.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	if gpID, ok := pollAnalogStick(input, gamepadIDs); ok {
		gamepadUsed = true
		activeGamepadID = gpID
	}

	// Mouse wheel cycles the selected slot
	if _, dy := ebiten.Wheel(); dy < 0 {
		input.Current[cfg.ActionSlotNext] = true
	} else if dy > 0 {
		input.Current[cfg.ActionSlotPrev] = true
	}

	// Pointer: the first touch wins over the cursor and also counts as Use
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	touchUsed := len(touchIDs) > 0
	if touchUsed {
		x, y := ebiten.TouchPosition(touchIDs[0])
		input.Pointer.X, input.Pointer.Y = float64(x), float64(y)
		input.PointerActive = true
		input.Current[cfg.ActionUse] = true
	} else {
		x, y := ebiten.CursorPosition()
		input.Pointer.X, input.Pointer.Y = float64(x), float64(y)
		input.PointerActive = x >= 0 && y >= 0 && x < cfg.C.Width && y < cfg.C.Height
	}

	switch {
	case gamepadUsed:
		input.LastInputMethod = getControllerType(activeGamepadID)
	case touchUsed:
		input.LastInputMethod = components.InputTouch
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	}

	if keyboardUsed || gamepadUsed || touchUsed {
		StartAudio()
	}
}

// pollAnalogStick merges the left stick of every gamepad into the movement
// actions and reports the gamepad that moved it.
func pollAnalogStick(input *components.InputData, gamepads []ebiten.GamepadID) (ebiten.GamepadID, bool) {
	deadzone := cfg.Input.AnalogDeadzone
	var active ebiten.GamepadID
	used := false

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			input.Current[cfg.ActionMoveLeft] = true
			active, used = gpID, true
		}
		if horizontal > deadzone {
			input.Current[cfg.ActionMoveRight] = true
			active, used = gpID, true
		}
		if vertical < -deadzone {
			input.Current[cfg.ActionMoveUp] = true
			active, used = gpID, true
		}
		if vertical > deadzone {
			input.Current[cfg.ActionMoveDown] = true
			active, used = gpID, true
		}
	}
	return active, used
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	method := components.InputXbox
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	}

	controllerTypeCache[gpID] = method
	return method
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// UpdateSlotSelection applies slot keys and the wheel to the player's inventory.
func UpdateSlotSelection(ecs *ecs.ECS) {
	player, ok := PlayerEntry(ecs)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	inv := components.Inventory.Get(player)

	for slot := 0; slot < inv.Len(); slot++ {
		if GetAction(input, cfg.SlotAction(slot)).JustPressed {
			inv.Select(slot)
		}
	}
	if GetAction(input, cfg.ActionSlotNext).JustPressed {
		inv.Cycle(1)
	}
	if GetAction(input, cfg.ActionSlotPrev).JustPressed {
		inv.Cycle(-1)
	}
}

package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveLeft
	ActionMoveRight
	ActionMoveDown
	ActionUse
	ActionRespawn
	ActionPause
	ActionDebug
	ActionSlotNext
	ActionSlotPrev
	ActionSlot1
	ActionSlot2
	ActionSlot3
	ActionSlot4
	ActionSlot5
	ActionSlot6
	ActionSlot7
	ActionSlot8
	ActionSlot9
	ActionSlot10
	ActionCount // Must be last - used for array sizing
)

// SlotAction returns the action that selects the given inventory slot.
func SlotAction(slot int) ActionID {
	return ActionSlot1 + ActionID(slot)
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp, ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionUse: {
				Keys:         []ebiten.Key{ebiten.KeyE},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
				// Right trigger
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
			},
			ActionRespawn: {
				Keys: []ebiten.Key{ebiten.KeyR},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			ActionSlotNext: {
				Keys: []ebiten.Key{ebiten.KeyBracketRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionSlotPrev: {
				Keys: []ebiten.Key{ebiten.KeyBracketLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionSlot1:  {Keys: []ebiten.Key{ebiten.KeyDigit1}},
			ActionSlot2:  {Keys: []ebiten.Key{ebiten.KeyDigit2}},
			ActionSlot3:  {Keys: []ebiten.Key{ebiten.KeyDigit3}},
			ActionSlot4:  {Keys: []ebiten.Key{ebiten.KeyDigit4}},
			ActionSlot5:  {Keys: []ebiten.Key{ebiten.KeyDigit5}},
			ActionSlot6:  {Keys: []ebiten.Key{ebiten.KeyDigit6}},
			ActionSlot7:  {Keys: []ebiten.Key{ebiten.KeyDigit7}},
			ActionSlot8:  {Keys: []ebiten.Key{ebiten.KeyDigit8}},
			ActionSlot9:  {Keys: []ebiten.Key{ebiten.KeyDigit9}},
			ActionSlot10: {Keys: []ebiten.Key{ebiten.KeyDigit0}},
		},
	}
}

package components

import (
	cfg "github.com/automoto/blockrunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
	InputTouch
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// Pointer is the cursor or touch position in screen space.
	Pointer       math.Vec2
	PointerActive bool

	LastInputMethod InputMethod
}

// Snapshot copies the current frame's actions and pointer.
func (d *InputData) Snapshot() InputState {
	return InputState{
		actions:    d.Current,
		pointer:    d.Pointer,
		hasPointer: d.PointerActive,
	}
}

var Input = donburi.NewComponentType[InputData]()

// InputState is an immutable view of one frame of input. It is a value, so the
// update pass reads a single consistent frame no matter when devices change.
type InputState struct {
	actions    [cfg.ActionCount]bool
	pointer    math.Vec2
	hasPointer bool
}

// NewInputState builds a snapshot from a set of active actions.
func NewInputState(actions ...cfg.ActionID) InputState {
	var s InputState
	for _, a := range actions {
		s.actions[a] = true
	}
	return s
}

// WithPointer returns a copy of s with a screen-space pointer position.
func (s InputState) WithPointer(p math.Vec2) InputState {
	s.pointer = p
	s.hasPointer = true
	return s
}

// Active reports whether an action is held this frame.
func (s InputState) Active(a cfg.ActionID) bool {
	return s.actions[a]
}

// Pointer returns the screen-space pointer position, if there is one.
func (s InputState) Pointer() (math.Vec2, bool) {
	return s.pointer, s.hasPointer
}

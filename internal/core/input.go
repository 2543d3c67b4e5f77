package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - menu navigation
	ActionDown             // S, Down arrow - soft drop / menu navigation
	ActionLeft             // A, Left arrow - shift left
	ActionRight            // D, Right arrow - shift right
	ActionRotateCW         // X, Up arrow - rotate clockwise
	ActionRotateCCW        // Z - rotate counter-clockwise
	ActionHardDrop         // Space - drop and lock
	ActionHold             // C, Shift - swap with hold slot
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionRotateCW:  "RotateCW",
	ActionRotateCCW: "RotateCCW",
	ActionHardDrop:  "HardDrop",
	ActionHold:      "Hold",
	ActionConfirm:   "Confirm",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered this frame.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

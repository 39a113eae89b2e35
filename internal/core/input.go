package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps raw terminal input to these; games never see
// key codes.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveUp           // W, Up arrow - queue a move up
	ActionMoveDown         // S, Down arrow - queue a move down
	ActionMoveLeft         // A, Left arrow - queue a move left
	ActionMoveRight        // D, Right arrow - queue a move right
	ActionConfirm          // Enter - confirm the planned moves
	ActionReset            // R - reload the current level
	ActionBack             // B, Escape - back to menu
	ActionQuit             // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionConfirm:
		return "Confirm"
	case ActionReset:
		return "Reset"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction for a move action.
// The second return value is false for non-movement actions.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionMoveUp:
		return DirUp, true
	case ActionMoveDown:
		return DirDown, true
	case ActionMoveLeft:
		return DirLeft, true
	case ActionMoveRight:
		return DirRight, true
	default:
		return DirUp, false
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
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

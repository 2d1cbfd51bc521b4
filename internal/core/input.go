package core

// Action is a semantic input intent, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, a, h - nudge the pointer left
	ActionRight          // Right arrow, d, l - nudge the pointer right
	ActionConfirm        // Enter, Space, left click - start a round
	ActionPause          // P, Escape
	ActionQuit           // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input sampled for a single simulation tick.
// The pointer is recorded at most once per frame; the last sample wins.
type InputFrame struct {
	Actions map[Action]bool

	PointerX   float64 // Pointer column in screen cells
	HasPointer bool    // Whether the pointer moved during this frame
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
	return f.Actions[a]
}

// SetPointer records the pointer column for this frame.
func (f *InputFrame) SetPointer(x float64) {
	f.PointerX = x
	f.HasPointer = true
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.PointerX = 0
	f.HasPointer = false
}

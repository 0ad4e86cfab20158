package core

// Action represents a semantic game action, abstracted from physical key
// presses and pointer events.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Space, Enter - start / resume movement
	ActionPause          // P, Esc - pause movement
	ActionRelease        // pointer released - pause movement
	ActionSpeed          // F - cycle the snake speed
	ActionRestart        // R - start a fresh game after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRelease:
		return "Release"
	case ActionSpeed:
		return "Speed"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Frame is the input collected for one simulation tick: the analog
// steering vector (when the player steered this frame) plus any
// triggered actions. The steer vector components are in [-1, 1].
type Frame struct {
	Steer    Vec2
	HasSteer bool

	actions map[Action]bool
}

// NewFrame creates an empty input frame.
func NewFrame() Frame {
	return Frame{actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *Frame) Set(a Action) {
	if f.actions == nil {
		f.actions = make(map[Action]bool)
	}
	f.actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f Frame) Has(a Action) bool {
	if f.actions == nil {
		return false
	}
	return f.actions[a]
}

// SetSteer records the analog steering vector for this frame.
// Values outside [-1, 1] are clamped downstream by the motion controller.
func (f *Frame) SetSteer(v Vec2) {
	f.Steer = v
	f.HasSteer = true
}

// Clear resets the frame for the next tick.
func (f *Frame) Clear() {
	f.Steer = Vec2{}
	f.HasSteer = false
	for k := range f.actions {
		delete(f.actions, k)
	}
}

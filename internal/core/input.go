package core

// Action represents a discrete game action, abstracted from physical key
// presses. Games work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionAttack            // Fire a basic shot along the aim direction
	ActionPower             // Fire a power shot (costs mana)
	ActionDash              // Burst of speed with brief invulnerability
	ActionPotionHP          // Drink a health potion
	ActionPotionMana        // Drink a mana potion
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back to menu
	ActionRestart           // R key - restart after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAttack:
		return "Attack"
	case ActionPower:
		return "Power"
	case ActionDash:
		return "Dash"
	case ActionPotionHP:
		return "PotionHP"
	case ActionPotionMana:
		return "PotionMana"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the per-tick input snapshot consumed by the simulation.
// Move is a normalized movement direction, Aim is an aim direction (zero
// means "auto-target": the game picks the nearest visible enemy), and
// Actions holds the discrete flags triggered this frame. The core is
// agnostic to whether the snapshot came from a local keyboard or an SSH
// session.
type InputFrame struct {
	Move    Vec2
	Aim     Vec2
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

// Clear resets vectors and actions for the next frame.
func (f *InputFrame) Clear() {
	f.Move = Vec2{}
	f.Aim = Vec2{}
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Move = f.Move
	clone.Aim = f.Aim
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

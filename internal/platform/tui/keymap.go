package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkraev/tui-crawler/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions and
// movement/aim directions. This centralizes key bindings and makes them
// testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapAction translates a key message to a discrete game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapAction(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "enter":
		return core.ActionAttack, false
	case "e", "f":
		return core.ActionPower, false
	case "x", "shift+w", "shift+a", "shift+s", "shift+d":
		return core.ActionDash, false
	case "1":
		return core.ActionPotionHP, false
	case "2":
		return core.ActionPotionMana, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapMove translates a key message to a movement direction.
// WASD moves the hero; returns a zero vector for non-movement keys.
func (km *KeyMapper) MapMove(msg tea.KeyMsg) (dir core.Vec2, ok bool) {
	switch msg.String() {
	case "w":
		return core.V(0, -1), true
	case "s":
		return core.V(0, 1), true
	case "a":
		return core.V(-1, 0), true
	case "d":
		return core.V(1, 0), true
	}
	return core.Vec2{}, false
}

// MapAim translates a key message to an aim direction.
// Arrow keys aim shots; with no recent aim input the game auto-targets
// the nearest enemy.
func (km *KeyMapper) MapAim(msg tea.KeyMsg) (dir core.Vec2, ok bool) {
	switch msg.String() {
	case "up":
		return core.V(0, -1), true
	case "down":
		return core.V(0, 1), true
	case "left":
		return core.V(-1, 0), true
	case "right":
		return core.V(1, 0), true
	}
	return core.Vec2{}, false
}

// Hold durations in simulation ticks. Terminals report key presses but
// never releases, so each press keeps its direction active for a short
// window; auto-repeat refreshes it while the key stays down.
const (
	moveHoldTicks = 9
	aimHoldTicks  = 30
)

// HeldInput synthesizes continuous movement and aim vectors from discrete
// terminal key events.
type HeldInput struct {
	moveUp, moveDown, moveLeft, moveRight int
	aimUp, aimDown, aimLeft, aimRight     int
}

// PressMove registers a movement key press.
func (h *HeldInput) PressMove(dir core.Vec2) {
	if dir.Y < 0 {
		h.moveUp = moveHoldTicks
	}
	if dir.Y > 0 {
		h.moveDown = moveHoldTicks
	}
	if dir.X < 0 {
		h.moveLeft = moveHoldTicks
	}
	if dir.X > 0 {
		h.moveRight = moveHoldTicks
	}
}

// PressAim registers an aim key press.
func (h *HeldInput) PressAim(dir core.Vec2) {
	if dir.Y < 0 {
		h.aimUp = aimHoldTicks
	}
	if dir.Y > 0 {
		h.aimDown = aimHoldTicks
	}
	if dir.X < 0 {
		h.aimLeft = aimHoldTicks
	}
	if dir.X > 0 {
		h.aimRight = aimHoldTicks
	}
}

// Tick decays all held directions by one simulation tick and returns the
// composed movement and aim vectors. Opposite held directions cancel.
func (h *HeldInput) Tick() (move, aim core.Vec2) {
	decay := func(v *int) bool {
		if *v > 0 {
			*v--
			return true
		}
		return false
	}

	if decay(&h.moveUp) {
		move.Y--
	}
	if decay(&h.moveDown) {
		move.Y++
	}
	if decay(&h.moveLeft) {
		move.X--
	}
	if decay(&h.moveRight) {
		move.X++
	}

	if decay(&h.aimUp) {
		aim.Y--
	}
	if decay(&h.aimDown) {
		aim.Y++
	}
	if decay(&h.aimLeft) {
		aim.X--
	}
	if decay(&h.aimRight) {
		aim.X++
	}

	return move, aim
}

// Clear drops all held directions.
func (h *HeldInput) Clear() {
	*h = HeldInput{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}

package session

import "fmt"

type ActionType int

const (
	ActionUp ActionType = iota
	ActionDown
	ActionLeft
	ActionRight
	// ActionClick carries the pointer position in X and Y
	ActionClick
	ActionSave
	ActionLoad
	ActionReset
	ActionQuit
)

func (t ActionType) String() string {
	switch t {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionClick:
		return "Click"
	case ActionSave:
		return "Save"
	case ActionLoad:
		return "Load"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
}

// Action is a player intent translated from raw input.
type Action struct {
	Type ActionType
	X    int
	Y    int
}

func NewAction(t ActionType) Action {
	return Action{Type: t}
}

func NewClickAction(x, y int) Action {
	return Action{Type: ActionClick, X: x, Y: y}
}

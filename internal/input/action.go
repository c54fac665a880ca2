package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction indicates an action name that does not exist.
var ErrUnknownAction = errors.New("unknown action")

// Action is a logical button of the device.
type Action uint8

// Actions.
const (
	Left Action = iota
	Right
	Up
	Down
	Confirm
	Cancel
	Edit
	ModeNext
	ModePrev
	ReorderLeft
	ReorderRight
	ToggleFormat
	ToggleFirstDay
	Quit

	actionCount
)

var actionNames = [actionCount]string{
	Left:           "left",
	Right:          "right",
	Up:             "up",
	Down:           "down",
	Confirm:        "confirm",
	Cancel:         "cancel",
	Edit:           "edit",
	ModeNext:       "mode-next",
	ModePrev:       "mode-prev",
	ReorderLeft:    "reorder-left",
	ReorderRight:   "reorder-right",
	ToggleFormat:   "toggle-format",
	ToggleFirstDay: "toggle-first-day",
	Quit:           "quit",
}

// String returns the action's key map name.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ParseAction looks up an action by its key map name.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Actions returns every action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// Frame is the set of actions that went down during one frame.
type Frame uint32

// Of builds a Frame from the given actions.
func Of(actions ...Action) Frame {
	var f Frame
	for _, a := range actions {
		f |= 1 << a
	}
	return f
}

// Has reports whether a was pressed in the frame.
func (f Frame) Has(a Action) bool {
	return f&(1<<a) != 0
}

// Empty reports whether nothing was pressed.
func (f Frame) Empty() bool {
	return f == 0
}

package entity

import "strings"

// Action is a discrete command issued by one side for a single frame.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionServeToLeft
	ActionServeToRight
)

var actionNames = [...]string{
	ActionNone:         "NONE",
	ActionMoveLeft:     "MOVE_LEFT",
	ActionMoveRight:    "MOVE_RIGHT",
	ActionServeToLeft:  "SERVE_TO_LEFT",
	ActionServeToRight: "SERVE_TO_RIGHT",
}

// Actions lists every action in wire order.
var Actions = []Action{ActionNone, ActionMoveLeft, ActionMoveRight, ActionServeToLeft, ActionServeToRight}

// ParseAction converts an action token supplied by an agent into an Action.
// Tokens are matched case-insensitively; anything unrecognised becomes
// ActionNone.
func ParseAction(token string) Action {
	token = strings.ToUpper(strings.TrimSpace(token))
	for a, name := range actionNames {
		if name == token {
			return Action(a)
		}
	}
	return ActionNone
}

// String ...
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return actionNames[ActionNone]
}

// Serve returns true for SERVE_TO_LEFT and SERVE_TO_RIGHT.
func (a Action) Serve() bool {
	return a == ActionServeToLeft || a == ActionServeToRight
}

// Move returns true for MOVE_LEFT and MOVE_RIGHT.
func (a Action) Move() bool {
	return a == ActionMoveLeft || a == ActionMoveRight
}

// MarshalText ...
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText never fails: unknown tokens decode to ActionNone.
func (a *Action) UnmarshalText(text []byte) error {
	*a = ParseAction(string(text))
	return nil
}

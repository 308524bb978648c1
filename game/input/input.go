// Package input turns raw key state into direction and restart intents.
package input

import "grid-snake/game/types"

// KeyState is the set of keys held during one frame.
type KeyState struct {
	Up      bool
	Down    bool
	Left    bool
	Right   bool
	Restart bool
	Quit    bool
}

// Resolve picks at most one direction per frame. When several arrows are
// held the first match in the order Up, Down, Left, Right wins.
func Resolve(keys KeyState) (types.Direction, bool) {
	switch {
	case keys.Up:
		return types.Up, true
	case keys.Down:
		return types.Down, true
	case keys.Left:
		return types.Left, true
	case keys.Right:
		return types.Right, true
	default:
		return types.None, false
	}
}

// Session is the part of a game session input is applied to.
type Session interface {
	SetDirection(dir types.Direction)
	Restart() bool
	IsOver() bool
}

// Apply feeds one frame of key state into the session. Restart is honoured
// only once the round is over, direction only while it runs.
func Apply(s Session, keys KeyState) {
	if s.IsOver() {
		if keys.Restart {
			s.Restart()
		}
		return
	}
	if dir, ok := Resolve(keys); ok {
		s.SetDirection(dir)
	}
}

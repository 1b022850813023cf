package session

import "github.com/cbodonnell/arcade/pkg/records"

// Playable is a game the Controller can drive.
type Playable interface {
	GameType() records.GameType
	// Name is the display name used in notices.
	Name() string
	// HandleAction applies a game-specific action. Save, Load, Reset and
	// Quit are handled by the Controller and never reach the game.
	HandleAction(a Action)
	// Step advances the simulation by one step.
	Step()
	IsOver() bool
	Reset()
	Snapshot() *records.SavedGame
	// Restore replaces the game state with a saved game of the same type.
	Restore(game *records.SavedGame) error
}

// Notifier shows a transient message for a number of ticks.
type Notifier interface {
	Notify(message string, ticks int)
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(message string, ticks int)

func (f NotifierFunc) Notify(message string, ticks int) {
	f(message, ticks)
}

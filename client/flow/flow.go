package flow

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModeSnake
	GameModeTicTacToe
	GameModeOver
	GameModeExiting
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModeSnake:
		return "Snake"
	case GameModeTicTacToe:
		return "Tic-Tac-Toe"
	case GameModeOver:
		return "Over"
	case GameModeExiting:
		return "Exiting"
	}
	return "Unknown"
}

// Trigger is an event that may move the program to another mode.
type Trigger int

const (
	TriggerSelectSnake Trigger = iota
	TriggerSelectTicTacToe
	// TriggerGameOver is raised when a session ends on game over.
	TriggerGameOver
	// TriggerQuit is the quit signal: window close or Escape.
	TriggerQuit
	// TriggerDismiss leaves the game over display.
	TriggerDismiss
)

func (t Trigger) String() string {
	switch t {
	case TriggerSelectSnake:
		return "SelectSnake"
	case TriggerSelectTicTacToe:
		return "SelectTicTacToe"
	case TriggerGameOver:
		return "GameOver"
	case TriggerQuit:
		return "Quit"
	case TriggerDismiss:
		return "Dismiss"
	}
	return "Unknown"
}

// Next returns the mode that follows m on trigger, or m if trigger does
// not apply. Quitting a session returns to the menu; quitting the menu exits.
func (m GameMode) Next(trigger Trigger) GameMode {
	switch m {
	case GameModeMenu:
		switch trigger {
		case TriggerSelectSnake:
			return GameModeSnake
		case TriggerSelectTicTacToe:
			return GameModeTicTacToe
		case TriggerQuit:
			return GameModeExiting
		}
	case GameModeSnake, GameModeTicTacToe:
		switch trigger {
		case TriggerGameOver:
			return GameModeOver
		case TriggerQuit:
			return GameModeMenu
		}
	case GameModeOver:
		switch trigger {
		case TriggerDismiss, TriggerQuit:
			return GameModeMenu
		}
	}
	return m
}

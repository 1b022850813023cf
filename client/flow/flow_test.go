package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameMode_Next(t *testing.T) {
	tests := []struct {
		name    string
		mode    GameMode
		trigger Trigger
		want    GameMode
	}{
		{"menu select snake", GameModeMenu, TriggerSelectSnake, GameModeSnake},
		{"menu select tic-tac-toe", GameModeMenu, TriggerSelectTicTacToe, GameModeTicTacToe},
		{"menu quit", GameModeMenu, TriggerQuit, GameModeExiting},
		{"menu ignores game over", GameModeMenu, TriggerGameOver, GameModeMenu},
		{"snake game over", GameModeSnake, TriggerGameOver, GameModeOver},
		{"snake quit", GameModeSnake, TriggerQuit, GameModeMenu},
		{"snake ignores select", GameModeSnake, TriggerSelectTicTacToe, GameModeSnake},
		{"tic-tac-toe quit", GameModeTicTacToe, TriggerQuit, GameModeMenu},
		{"game over dismiss", GameModeOver, TriggerDismiss, GameModeMenu},
		{"game over quit", GameModeOver, TriggerQuit, GameModeMenu},
		{"exiting is terminal", GameModeExiting, TriggerSelectSnake, GameModeExiting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.Next(tt.trigger))
		})
	}
}

func TestGameMode_String(t *testing.T) {
	assert.Equal(t, "Tic-Tac-Toe", GameModeTicTacToe.String())
	assert.Equal(t, "Unknown", GameMode(-1).String())
	assert.Equal(t, "Dismiss", TriggerDismiss.String())
}

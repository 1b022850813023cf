package game

import (
	"testing"

	"github.com/cbodonnell/arcade/pkg/game/tictactoe"
	"github.com/cbodonnell/arcade/pkg/records"
	"github.com/cbodonnell/arcade/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicTacToeGame_HandleAction(t *testing.T) {
	tests := []struct {
		name       string
		clicks     [][2]int
		wantBoard  tictactoe.Board
		wantPlayer tictactoe.Mark
		wantOver   bool
	}{
		{
			name:   "first click places X",
			clicks: [][2]int{{70, 10}},
			wantBoard: tictactoe.Board{
				{" ", "X", " "},
				{" ", " ", " "},
				{" ", " ", " "},
			},
			wantPlayer: tictactoe.O,
		},
		{
			name:   "occupied cell ignored",
			clicks: [][2]int{{10, 10}, {50, 50}},
			wantBoard: tictactoe.Board{
				{"X", " ", " "},
				{" ", " ", " "},
				{" ", " ", " "},
			},
			wantPlayer: tictactoe.O,
		},
		{
			name:       "click off the board ignored",
			clicks:     [][2]int{{200, 10}, {10, 400}},
			wantBoard:  tictactoe.NewBoard(),
			wantPlayer: tictactoe.X,
		},
		{
			name: "X wins the top row",
			clicks: [][2]int{
				{10, 10}, {10, 70}, {70, 10}, {70, 70}, {130, 10},
				// ignored once over
				{130, 130},
			},
			wantBoard: tictactoe.Board{
				{"X", "X", "X"},
				{"O", "O", " "},
				{" ", " ", " "},
			},
			wantPlayer: tictactoe.X,
			wantOver:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewTicTacToeGame()
			for _, c := range tt.clicks {
				g.HandleAction(session.NewClickAction(c[0], c[1]))
			}
			assert.Equal(t, tt.wantBoard, g.State().Board())
			assert.Equal(t, tt.wantPlayer, g.State().Player())
			assert.Equal(t, tt.wantOver, g.IsOver())
		})
	}
}

func TestTicTacToeGame_IgnoresDirections(t *testing.T) {
	g := NewTicTacToeGame()
	g.HandleAction(session.NewAction(session.ActionUp))
	g.Step()
	assert.Equal(t, tictactoe.NewBoard(), g.State().Board())
}

func TestTicTacToeGame_SnapshotRestore(t *testing.T) {
	record := &records.TicTacToeRecord{
		Board: [3][3]string{
			{"X", "O", "X"},
			{" ", "O", " "},
			{" ", " ", " "},
		},
		Player: "X",
	}

	g := NewTicTacToeGame()
	require.NoError(t, g.Restore(records.NewTicTacToeGame(record)))
	assert.Equal(t, records.NewTicTacToeGame(record), g.Snapshot())

	// X blocks the middle column
	g.HandleAction(session.NewClickAction(70, 130))
	assert.Equal(t, tictactoe.X, g.State().Board()[2][1])
	assert.Equal(t, tictactoe.O, g.State().Player())
}

func TestTicTacToeGame_Restore(t *testing.T) {
	tests := []struct {
		name             string
		saved            *records.SavedGame
		wantIncompatible bool
	}{
		{
			name:             "snake record",
			saved:            records.NewSnakeGame(&records.SnakeRecord{}),
			wantIncompatible: true,
		},
		{
			name:             "nil",
			saved:            nil,
			wantIncompatible: true,
		},
		{
			name: "invalid mark",
			saved: records.NewTicTacToeGame(&records.TicTacToeRecord{
				Board: [3][3]string{
					{"Z", " ", " "},
					{" ", " ", " "},
					{" ", " ", " "},
				},
				Player: "X",
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewTicTacToeGame()
			err := g.Restore(tt.saved)
			assert.Error(t, err)
			assert.Equal(t, tt.wantIncompatible, IsIncompatibleRecord(err))
			assert.Equal(t, tictactoe.NewBoard(), g.State().Board())
		})
	}
}

func TestTicTacToeGame_Reset(t *testing.T) {
	g := NewTicTacToeGame()
	g.HandleAction(session.NewClickAction(10, 10))
	g.Reset()
	assert.Equal(t, tictactoe.NewBoard(), g.State().Board())
	assert.Equal(t, tictactoe.X, g.State().Player())
	assert.False(t, g.IsOver())
}

package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func board(rows ...string) Board {
	b := NewBoard()
	for row, line := range rows {
		for col, c := range line {
			b[row][col] = Mark(string(c))
		}
	}
	return b
}

func TestCheckWin(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  Mark
	}{
		{name: "empty", board: NewBoard(), want: Empty},
		{name: "row", board: board("XXX", "OO ", "   "), want: X},
		{name: "column", board: board("OX ", "OX ", "O  "), want: O},
		{name: "diagonal", board: board("X O", " XO", "  X"), want: X},
		{name: "anti-diagonal", board: board("X O", "XO ", "O  "), want: O},
		{name: "no winner", board: board("XOX", "XOO", "OXX"), want: Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckWin(tt.board))
		})
	}
}

func TestCheckWin_completingRow(t *testing.T) {
	b := board("XX ", "   ", "   ")
	b[0][2] = X
	assert.Equal(t, X, CheckWin(b))
}

func TestCheckTie(t *testing.T) {
	assert.False(t, CheckTie(NewBoard()))
	assert.False(t, CheckTie(board("XOX", "XOO", "OX ")))
	assert.True(t, CheckTie(board("XOX", "XOO", "OXX")))
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		wantRow int
		wantCol int
		wantOK  bool
	}{
		{name: "origin", x: 0, y: 0, wantRow: 0, wantCol: 0, wantOK: true},
		{name: "center", x: 90, y: 90, wantRow: 1, wantCol: 1, wantOK: true},
		{name: "last cell", x: 179, y: 179, wantRow: 2, wantCol: 2, wantOK: true},
		{name: "row 2 col 0", x: 10, y: 130, wantRow: 2, wantCol: 0, wantOK: true},
		{name: "right of board", x: 180, y: 10, wantOK: false},
		{name: "below board", x: 10, y: 400, wantOK: false},
		{name: "negative", x: -1, y: 10, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := CellAt(tt.x, tt.y, 60)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantRow, row)
				assert.Equal(t, tt.wantCol, col)
			}
		})
	}
}

func TestState_Place(t *testing.T) {
	s := NewState()
	assert.Equal(t, X, s.Player())

	assert.True(t, s.Place(0, 0))
	assert.Equal(t, O, s.Player())

	assert.False(t, s.Place(0, 0), "occupied cell")
	assert.Equal(t, O, s.Player(), "turn is kept on an illegal move")

	assert.False(t, s.Place(3, 0))
	assert.False(t, s.Place(0, -1))

	assert.True(t, s.Place(1, 0))
	assert.True(t, s.Place(0, 1))
	assert.True(t, s.Place(1, 1))
	assert.True(t, s.Place(0, 2))

	assert.True(t, s.IsOver())
	assert.Equal(t, X, s.Winner())
	assert.Equal(t, X, s.Player())
	assert.False(t, s.IsTie())
	assert.False(t, s.Place(2, 2), "finished game")
}

func TestState_Place_tie(t *testing.T) {
	s := NewState()
	moves := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 0}, {2, 2}}
	for _, m := range moves {
		require.True(t, s.Place(m[0], m[1]))
	}
	assert.True(t, s.IsOver())
	assert.True(t, s.IsTie())
	assert.Equal(t, Empty, s.Winner())
}

func TestState_Reset(t *testing.T) {
	s := NewState()
	s.Place(1, 1)
	s.Reset()
	assert.Equal(t, NewBoard(), s.Board())
	assert.Equal(t, X, s.Player())
	assert.False(t, s.IsOver())
}

func TestState_Restore(t *testing.T) {
	s := NewState()

	err := s.Restore(Snapshot{Board: board("XO ", "   ", "   "), Player: X})
	require.NoError(t, err)
	assert.Equal(t, O, s.Board()[0][1])

	bad := NewBoard()
	bad[2][2] = Mark("Z")
	assert.Error(t, s.Restore(Snapshot{Board: bad, Player: X}))
	assert.Error(t, s.Restore(Snapshot{Board: NewBoard(), Player: Empty}))
	assert.Equal(t, O, s.Board()[0][1], "state untouched after a failed restore")
}

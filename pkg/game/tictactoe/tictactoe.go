package tictactoe

import (
	"fmt"

	"github.com/cbodonnell/arcade/pkg/log"
)

// Mark is the content of a board cell.
type Mark string

const (
	Empty Mark = " "
	X     Mark = "X"
	O     Mark = "O"
)

func (m Mark) Valid() bool {
	return m == Empty || m == X || m == O
}

// Other returns the opponent of a player mark.
func (m Mark) Other() Mark {
	if m == X {
		return O
	}
	return X
}

const Size = 3

// Board is indexed [row][col].
type Board [Size][Size]Mark

// NewBoard returns a board with every cell empty.
func NewBoard() Board {
	var b Board
	for row := range b {
		for col := range b[row] {
			b[row][col] = Empty
		}
	}
	return b
}

// CheckWin returns the mark holding a full row, column or diagonal, or Empty.
func CheckWin(b Board) Mark {
	for row := 0; row < Size; row++ {
		if b[row][0] != Empty && b[row][0] == b[row][1] && b[row][1] == b[row][2] {
			return b[row][0]
		}
	}
	for col := 0; col < Size; col++ {
		if b[0][col] != Empty && b[0][col] == b[1][col] && b[1][col] == b[2][col] {
			return b[0][col]
		}
	}
	if b[0][0] != Empty && b[0][0] == b[1][1] && b[1][1] == b[2][2] {
		return b[0][0]
	}
	if b[0][2] != Empty && b[0][2] == b[1][1] && b[1][1] == b[2][0] {
		return b[0][2]
	}
	return Empty
}

// CheckTie reports whether no empty cell is left.
func CheckTie(b Board) bool {
	for row := range b {
		for col := range b[row] {
			if b[row][col] == Empty {
				return false
			}
		}
	}
	return true
}

// CellAt maps a screen coordinate to a board cell of cellSize pixels.
func CellAt(x, y, cellSize int) (row, col int, ok bool) {
	if x < 0 || y < 0 || cellSize <= 0 {
		return 0, 0, false
	}
	row, col = y/cellSize, x/cellSize
	if row >= Size || col >= Size {
		return 0, 0, false
	}
	return row, col, true
}

// State is a two-player tic-tac-toe game. X moves first.
type State struct {
	board    Board
	player   Mark
	gameOver bool
}

// Snapshot is the persisted view of a State.
type Snapshot struct {
	Board    Board
	Player   Mark
	GameOver bool
}

func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

func (s *State) Reset() {
	s.board = NewBoard()
	s.player = X
	s.gameOver = false
}

// Place puts the current player's mark at row, col and passes the turn.
// Occupied cells, out of range cells and finished games are ignored.
func (s *State) Place(row, col int) bool {
	if s.gameOver || row < 0 || row >= Size || col < 0 || col >= Size {
		return false
	}
	if s.board[row][col] != Empty {
		return false
	}

	s.board[row][col] = s.player
	if winner := CheckWin(s.board); winner != Empty {
		log.Info("Player %s wins!", winner)
		s.gameOver = true
		return true
	}
	if CheckTie(s.board) {
		log.Info("It's a tie!")
		s.gameOver = true
		return true
	}
	s.player = s.player.Other()
	return true
}

func (s *State) Board() Board {
	return s.board
}

// Player is the mark to move next, or the last mover once the game is over.
func (s *State) Player() Mark {
	return s.player
}

func (s *State) IsOver() bool {
	return s.gameOver
}

// Winner returns the winning mark, or Empty for a tie or unfinished game.
func (s *State) Winner() Mark {
	return CheckWin(s.board)
}

// IsTie reports whether the game ended without a winner.
func (s *State) IsTie() bool {
	return s.gameOver && CheckWin(s.board) == Empty && CheckTie(s.board)
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Board:    s.board,
		Player:   s.player,
		GameOver: s.gameOver,
	}
}

// Restore replaces the state with snapshot if it is well formed.
func (s *State) Restore(snapshot Snapshot) error {
	for row := range snapshot.Board {
		for col, mark := range snapshot.Board[row] {
			if !mark.Valid() {
				return fmt.Errorf("invalid mark %q at %d,%d", mark, row, col)
			}
		}
	}
	if snapshot.Player != X && snapshot.Player != O {
		return fmt.Errorf("invalid player %q", snapshot.Player)
	}

	s.board = snapshot.Board
	s.player = snapshot.Player
	s.gameOver = snapshot.GameOver
	return nil
}

package game

import (
	"fmt"

	"github.com/cbodonnell/arcade/pkg/game/constants"
	"github.com/cbodonnell/arcade/pkg/game/tictactoe"
	"github.com/cbodonnell/arcade/pkg/records"
	"github.com/cbodonnell/arcade/pkg/session"
)

// TicTacToeGame maps board clicks onto a tic-tac-toe state.
type TicTacToeGame struct {
	state    *tictactoe.State
	cellSize int
}

var _ session.Playable = &TicTacToeGame{}

func NewTicTacToeGame() *TicTacToeGame {
	return &TicTacToeGame{
		state:    tictactoe.NewState(),
		cellSize: constants.TicTacToeCellSize,
	}
}

func (g *TicTacToeGame) State() *tictactoe.State {
	return g.state
}

func (g *TicTacToeGame) CellSize() int {
	return g.cellSize
}

func (g *TicTacToeGame) GameType() records.GameType {
	return records.GameTypeTicTacToe
}

func (g *TicTacToeGame) Name() string {
	return "Tic-Tac-Toe"
}

// HandleAction places a mark on the clicked cell. Clicks off the board are ignored.
func (g *TicTacToeGame) HandleAction(a session.Action) {
	if a.Type != session.ActionClick || g.state.IsOver() {
		return
	}
	row, col, ok := tictactoe.CellAt(a.X, a.Y, g.cellSize)
	if !ok {
		return
	}
	g.state.Place(row, col)
}

// Step is a no-op; the board only changes on clicks.
func (g *TicTacToeGame) Step() {}

func (g *TicTacToeGame) IsOver() bool {
	return g.state.IsOver()
}

func (g *TicTacToeGame) Reset() {
	g.state.Reset()
}

func (g *TicTacToeGame) Snapshot() *records.SavedGame {
	return records.NewTicTacToeGame(TicTacToeRecordFromSnapshot(g.state.Snapshot()))
}

func (g *TicTacToeGame) Restore(saved *records.SavedGame) error {
	if saved == nil || saved.GameType != records.GameTypeTicTacToe || saved.TicTacToe == nil {
		got := records.GameType("")
		if saved != nil {
			got = saved.GameType
		}
		return &ErrIncompatibleRecord{Want: records.GameTypeTicTacToe, Got: got}
	}
	if err := g.state.Restore(TicTacToeSnapshotFromRecord(saved.TicTacToe)); err != nil {
		return fmt.Errorf("failed to restore tic-tac-toe state: %v", err)
	}
	return nil
}

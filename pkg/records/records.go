package records

import (
	"github.com/cbodonnell/arcade/pkg/game/types"
)

// GameType discriminates the saved record.
type GameType string

const (
	GameTypeSnake     GameType = "snake"
	GameTypeTicTacToe GameType = "tic_tac_toe"
)

func (t GameType) Valid() bool {
	return t == GameTypeSnake || t == GameTypeTicTacToe
}

// SavedGame is the single persisted game. Exactly one of Snake or
// TicTacToe is set, matching GameType.
type SavedGame struct {
	GameType  GameType
	Snake     *SnakeRecord
	TicTacToe *TicTacToeRecord
}

type SnakeRecord struct {
	// Body is head first
	Body      []types.Position
	Food      types.Position
	Direction types.Direction
	Score     int
	// Obstacle is nil when there is none
	Obstacle *types.Position
	GameOver bool
}

type TicTacToeRecord struct {
	// Board is indexed [row][col]; cells are " ", "X" or "O"
	Board    [3][3]string
	Player   string
	GameOver bool
}

func NewSnakeGame(record *SnakeRecord) *SavedGame {
	return &SavedGame{
		GameType: GameTypeSnake,
		Snake:    record,
	}
}

func NewTicTacToeGame(record *TicTacToeRecord) *SavedGame {
	return &SavedGame{
		GameType:  GameTypeTicTacToe,
		TicTacToe: record,
	}
}

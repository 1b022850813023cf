package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/cbodonnell/arcade/pkg/game/types"
	"github.com/klauspost/compress/zstd"
)

// ErrMalformed is returned when stored bytes do not decode to a SavedGame.
var ErrMalformed = errors.New("malformed saved game")

func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformed)
}

// snakeJSON and ticTacToeJSON are the on-disk layouts, one per game type.
type snakeJSON struct {
	GameType         GameType         `json:"game_type"`
	SnakeBody        []types.Position `json:"snake_body"`
	FoodPosition     types.Position   `json:"food_position"`
	Direction        types.Direction  `json:"direction"`
	Score            int              `json:"score"`
	ObstaclePosition *types.Position  `json:"obstacle_position"`
	GameOver         bool             `json:"game_over"`
}

type ticTacToeJSON struct {
	GameType GameType   `json:"game_type"`
	Board    [][]string `json:"board"`
	Player   string     `json:"player"`
	GameOver bool       `json:"game_over"`
}

type header struct {
	GameType GameType `json:"game_type"`
}

// Serialize encodes a saved game as JSON.
func Serialize(g *SavedGame) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("saved game is nil")
	}

	switch g.GameType {
	case GameTypeSnake:
		if g.Snake == nil {
			return nil, fmt.Errorf("snake record is missing")
		}
		return json.Marshal(&snakeJSON{
			GameType:         GameTypeSnake,
			SnakeBody:        g.Snake.Body,
			FoodPosition:     g.Snake.Food,
			Direction:        g.Snake.Direction,
			Score:            g.Snake.Score,
			ObstaclePosition: g.Snake.Obstacle,
			GameOver:         g.Snake.GameOver,
		})
	case GameTypeTicTacToe:
		if g.TicTacToe == nil {
			return nil, fmt.Errorf("tic-tac-toe record is missing")
		}
		board := make([][]string, len(g.TicTacToe.Board))
		for row := range g.TicTacToe.Board {
			board[row] = append([]string(nil), g.TicTacToe.Board[row][:]...)
		}
		return json.Marshal(&ticTacToeJSON{
			GameType: GameTypeTicTacToe,
			Board:    board,
			Player:   g.TicTacToe.Player,
			GameOver: g.TicTacToe.GameOver,
		})
	default:
		return nil, fmt.Errorf("unknown game type %q", g.GameType)
	}
}

// Deserialize decodes JSON produced by Serialize. Structural problems
// are reported as ErrMalformed.
func Deserialize(b []byte) (*SavedGame, error) {
	h := &header{}
	if err := json.Unmarshal(b, h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch h.GameType {
	case GameTypeSnake:
		s := &snakeJSON{}
		if err := json.Unmarshal(b, s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if len(s.SnakeBody) == 0 {
			return nil, fmt.Errorf("%w: snake body is empty", ErrMalformed)
		}
		return NewSnakeGame(&SnakeRecord{
			Body:      s.SnakeBody,
			Food:      s.FoodPosition,
			Direction: s.Direction,
			Score:     s.Score,
			Obstacle:  s.ObstaclePosition,
			GameOver:  s.GameOver,
		}), nil
	case GameTypeTicTacToe:
		t := &ticTacToeJSON{}
		if err := json.Unmarshal(b, t); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		record := &TicTacToeRecord{
			Player:   t.Player,
			GameOver: t.GameOver,
		}
		if len(t.Board) != len(record.Board) {
			return nil, fmt.Errorf("%w: board has %d rows", ErrMalformed, len(t.Board))
		}
		for row := range t.Board {
			if len(t.Board[row]) != len(record.Board[row]) {
				return nil, fmt.Errorf("%w: board row %d has %d cells", ErrMalformed, row, len(t.Board[row]))
			}
			copy(record.Board[row][:], t.Board[row])
		}
		return NewTicTacToeGame(record), nil
	default:
		return nil, fmt.Errorf("%w: unknown game type %q", ErrMalformed, h.GameType)
	}
}

// SerializeCompressed encodes a saved game as zstd-compressed JSON.
func SerializeCompressed(g *SavedGame) ([]byte, error) {
	b, err := Serialize(g)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize saved game: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress saved game: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

// DeserializeCompressed decodes bytes produced by SerializeCompressed.
func DeserializeCompressed(data []byte) (*SavedGame, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create zstd reader: %v", ErrMalformed, err)
	}
	defer compReader.Close()

	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decompress saved game: %v", ErrMalformed, err)
	}

	return Deserialize(b)
}

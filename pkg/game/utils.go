package game

import (
	"fmt"

	"github.com/cbodonnell/arcade/pkg/game/snake"
	"github.com/cbodonnell/arcade/pkg/game/tictactoe"
	"github.com/cbodonnell/arcade/pkg/game/types"
	"github.com/cbodonnell/arcade/pkg/records"
)

// ErrIncompatibleRecord is returned when a saved game belongs to another game type.
type ErrIncompatibleRecord struct {
	Want records.GameType
	Got  records.GameType
}

func (e *ErrIncompatibleRecord) Error() string {
	return fmt.Sprintf("saved game is %q, not %q", e.Got, e.Want)
}

func IsIncompatibleRecord(err error) bool {
	_, ok := err.(*ErrIncompatibleRecord)
	return ok
}

func SnakeRecordFromSnapshot(snapshot snake.Snapshot) *records.SnakeRecord {
	body := make([]types.Position, len(snapshot.Body))
	copy(body, snapshot.Body)

	record := &records.SnakeRecord{
		Body:      body,
		Food:      snapshot.Food,
		Direction: snapshot.Direction,
		Score:     snapshot.Score,
		GameOver:  snapshot.GameOver,
	}
	if snapshot.Obstacle != nil {
		obstacle := *snapshot.Obstacle
		record.Obstacle = &obstacle
	}
	return record
}

func SnakeSnapshotFromRecord(record *records.SnakeRecord) snake.Snapshot {
	snapshot := snake.Snapshot{
		Body:      record.Body,
		Food:      record.Food,
		Direction: record.Direction,
		Score:     record.Score,
		GameOver:  record.GameOver,
	}
	if record.Obstacle != nil {
		obstacle := *record.Obstacle
		snapshot.Obstacle = &obstacle
	}
	return snapshot
}

func TicTacToeRecordFromSnapshot(snapshot tictactoe.Snapshot) *records.TicTacToeRecord {
	record := &records.TicTacToeRecord{
		Player:   string(snapshot.Player),
		GameOver: snapshot.GameOver,
	}
	for row := range snapshot.Board {
		for col, mark := range snapshot.Board[row] {
			record.Board[row][col] = string(mark)
		}
	}
	return record
}

func TicTacToeSnapshotFromRecord(record *records.TicTacToeRecord) tictactoe.Snapshot {
	snapshot := tictactoe.Snapshot{
		Player:   tictactoe.Mark(record.Player),
		GameOver: record.GameOver,
	}
	for row := range record.Board {
		for col, mark := range record.Board[row] {
			snapshot.Board[row][col] = tictactoe.Mark(mark)
		}
	}
	return snapshot
}

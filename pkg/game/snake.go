package game

import (
	"fmt"
	"math/rand"

	"github.com/cbodonnell/arcade/pkg/game/snake"
	"github.com/cbodonnell/arcade/pkg/game/types"
	"github.com/cbodonnell/arcade/pkg/records"
	"github.com/cbodonnell/arcade/pkg/session"
)

// SnakeGame is the snake simulation with its buffered direction input.
type SnakeGame struct {
	state *snake.State
	input *snake.InputBuffer
}

var _ session.Playable = &SnakeGame{}

type NewSnakeGameOptions struct {
	Bounds types.Bounds
	Rand   *rand.Rand
}

func NewSnakeGame(opts NewSnakeGameOptions) *SnakeGame {
	return &SnakeGame{
		state: snake.NewState(snake.NewStateOptions{
			Bounds: opts.Bounds,
			Rand:   opts.Rand,
		}),
		input: snake.NewInputBuffer(),
	}
}

func (g *SnakeGame) State() *snake.State {
	return g.state
}

func (g *SnakeGame) GameType() records.GameType {
	return records.GameTypeSnake
}

func (g *SnakeGame) Name() string {
	return "Snake"
}

// HandleAction queues a turn. Requests along the current axis are dropped.
func (g *SnakeGame) HandleAction(a session.Action) {
	var requested types.Direction
	switch a.Type {
	case session.ActionUp:
		requested = types.DirectionUp
	case session.ActionDown:
		requested = types.DirectionDown
	case session.ActionLeft:
		requested = types.DirectionLeft
	case session.ActionRight:
		requested = types.DirectionRight
	default:
		return
	}

	current := g.state.Direction()
	if requested.SameAxis(current) {
		return
	}
	g.input.Enqueue(requested, current)
}

// Step applies at most one queued turn, then moves the snake.
func (g *SnakeGame) Step() {
	g.state.SetDirection(g.input.Next(g.state.Direction()))
	g.state.Update()
}

func (g *SnakeGame) IsOver() bool {
	return g.state.IsOver()
}

func (g *SnakeGame) Reset() {
	g.input.Clear()
	g.state.Reset()
}

func (g *SnakeGame) Snapshot() *records.SavedGame {
	return records.NewSnakeGame(SnakeRecordFromSnapshot(g.state.Snapshot()))
}

func (g *SnakeGame) Restore(saved *records.SavedGame) error {
	if saved == nil || saved.GameType != records.GameTypeSnake || saved.Snake == nil {
		got := records.GameType("")
		if saved != nil {
			got = saved.GameType
		}
		return &ErrIncompatibleRecord{Want: records.GameTypeSnake, Got: got}
	}
	if err := g.state.Restore(SnakeSnapshotFromRecord(saved.Snake)); err != nil {
		return fmt.Errorf("failed to restore snake state: %v", err)
	}
	g.input.Clear()
	return nil
}

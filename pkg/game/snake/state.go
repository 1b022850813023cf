package snake

import (
	"fmt"
	"math/rand"

	"github.com/cbodonnell/arcade/pkg/game/constants"
	"github.com/cbodonnell/arcade/pkg/game/types"
	"github.com/cbodonnell/arcade/pkg/log"
)

// State is the snake game state machine. It is either running or over;
// once over, Update is a no-op until Reset or Restore.
type State struct {
	bounds types.Bounds
	rng    *rand.Rand
	placer *Placer

	// body is head first, tail last
	body      []types.Position
	direction types.Direction
	food      types.Position
	obstacle  *types.Position
	score     int
	gameOver  bool
}

// Snapshot is the persisted view of a State.
type Snapshot struct {
	Body      []types.Position
	Food      types.Position
	Direction types.Direction
	Score     int
	Obstacle  *types.Position
	GameOver  bool
}

type NewStateOptions struct {
	// Bounds is the play field. Defaults to types.DefaultBounds().
	Bounds types.Bounds
	// Rand is the source used for the starting direction and placement.
	Rand *rand.Rand
}

// NewState creates a fresh game.
func NewState(opts NewStateOptions) *State {
	bounds := opts.Bounds
	if bounds.CellSize == 0 {
		bounds = types.DefaultBounds()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	s := &State{
		bounds: bounds,
		rng:    rng,
		placer: NewPlacer(bounds, rng),
	}
	s.Reset()
	return s
}

// Reset starts a new game: one cell at the center, a random direction, no score.
func (s *State) Reset() {
	s.body = []types.Position{s.bounds.Center()}
	s.direction = types.Directions[s.rng.Intn(len(types.Directions))]
	s.score = 0
	s.gameOver = false
	s.obstacle = nil
	s.food, _ = s.placer.GenerateFood(s.body, nil)
	s.obstacle = s.placer.GenerateObstacle(s.body, s.food)
}

// Update advances the snake by one cell.
func (s *State) Update() {
	if s.gameOver {
		return
	}

	newHead := s.body[0].Add(s.direction)
	if s.collides(newHead) {
		log.Debug("Snake collided at %s with score %d", newHead, s.score)
		s.gameOver = true
		return
	}

	s.body = append([]types.Position{newHead}, s.body...)

	if newHead != s.food {
		s.body = s.body[:len(s.body)-1]
		return
	}

	s.score += constants.FoodScore
	food, ok := s.placer.GenerateFood(s.body, s.obstacle)
	if !ok {
		// no free cell left for food
		log.Debug("Snake filled the grid with score %d", s.score)
		s.gameOver = true
		return
	}
	s.food = food
	s.obstacle = s.placer.GenerateObstacle(s.body, s.food)
}

// collides reports whether moving the head to pos ends the game.
// The current head cell is not part of the self-collision check.
func (s *State) collides(pos types.Position) bool {
	if !s.bounds.Contains(pos) {
		return true
	}
	for _, cell := range s.body[1:] {
		if cell == pos {
			return true
		}
	}
	return s.obstacle != nil && *s.obstacle == pos
}

// SetDirection changes the direction used by the next Update.
func (s *State) SetDirection(d types.Direction) {
	if !d.Valid() {
		return
	}
	s.direction = d
}

func (s *State) Direction() types.Direction {
	return s.direction
}

// Body returns a copy of the snake cells, head first.
func (s *State) Body() []types.Position {
	body := make([]types.Position, len(s.body))
	copy(body, s.body)
	return body
}

func (s *State) Head() types.Position {
	return s.body[0]
}

func (s *State) Len() int {
	return len(s.body)
}

func (s *State) Food() types.Position {
	return s.food
}

// Obstacle returns the obstacle cell and whether there is one.
func (s *State) Obstacle() (types.Position, bool) {
	if s.obstacle == nil {
		return types.Position{}, false
	}
	return *s.obstacle, true
}

func (s *State) Score() int {
	return s.score
}

func (s *State) IsOver() bool {
	return s.gameOver
}

func (s *State) Bounds() types.Bounds {
	return s.bounds
}

func (s *State) Snapshot() Snapshot {
	snapshot := Snapshot{
		Body:      s.Body(),
		Food:      s.food,
		Direction: s.direction,
		Score:     s.score,
		GameOver:  s.gameOver,
	}
	if s.obstacle != nil {
		obstacle := *s.obstacle
		snapshot.Obstacle = &obstacle
	}
	return snapshot
}

// Restore replaces the state with snapshot. The state is left untouched
// if the snapshot does not fit the play field.
func (s *State) Restore(snapshot Snapshot) error {
	if err := s.validate(snapshot); err != nil {
		return err
	}

	s.body = make([]types.Position, len(snapshot.Body))
	copy(s.body, snapshot.Body)
	s.food = snapshot.Food
	s.direction = snapshot.Direction
	s.score = snapshot.Score
	s.gameOver = snapshot.GameOver
	s.obstacle = nil
	if snapshot.Obstacle != nil {
		obstacle := *snapshot.Obstacle
		s.obstacle = &obstacle
	}
	return nil
}

func (s *State) validate(snapshot Snapshot) error {
	if len(snapshot.Body) == 0 {
		return fmt.Errorf("snake body is empty")
	}
	for _, pos := range snapshot.Body {
		if !s.inGrid(pos) {
			return fmt.Errorf("snake cell %s is off the grid", pos)
		}
	}
	if !s.inGrid(snapshot.Food) {
		return fmt.Errorf("food %s is off the grid", snapshot.Food)
	}
	if snapshot.Obstacle != nil && !s.inGrid(*snapshot.Obstacle) {
		return fmt.Errorf("obstacle %s is off the grid", *snapshot.Obstacle)
	}
	if !snapshot.Direction.Valid() {
		return fmt.Errorf("invalid direction %s", snapshot.Direction)
	}
	if snapshot.Score < 0 {
		return fmt.Errorf("negative score %d", snapshot.Score)
	}
	return nil
}

func (s *State) inGrid(pos types.Position) bool {
	return s.bounds.Contains(pos) && s.bounds.Aligned(pos)
}

package snake

import (
	"math/rand"
	"testing"

	"github.com/cbodonnell/arcade/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, seed int64) *State {
	t.Helper()
	return NewState(NewStateOptions{
		Bounds: types.DefaultBounds(),
		Rand:   rand.New(rand.NewSource(seed)),
	})
}

func restore(t *testing.T, s *State, snapshot Snapshot) {
	t.Helper()
	require.NoError(t, s.Restore(snapshot))
}

func assertPlacementInvariants(t *testing.T, s *State) {
	t.Helper()
	body := s.Body()
	assert.NotContains(t, body, s.Food(), "food on snake")
	if obstacle, ok := s.Obstacle(); ok {
		assert.NotContains(t, body, obstacle, "obstacle on snake")
		assert.NotEqual(t, s.Food(), obstacle, "obstacle on food")
	}
}

func TestNewState(t *testing.T) {
	s := newTestState(t, 1)

	assert.Equal(t, []types.Position{{X: 300, Y: 240}}, s.Body())
	assert.True(t, s.Direction().Valid())
	assert.Equal(t, 0, s.Score())
	assert.False(t, s.IsOver())
	_, hasObstacle := s.Obstacle()
	assert.False(t, hasObstacle)
	assertPlacementInvariants(t, s)
}

func TestState_Update(t *testing.T) {
	obstacle := types.Position{X: 140, Y: 100}

	tests := []struct {
		name         string
		snapshot     Snapshot
		wantBody     []types.Position
		wantScore    int
		wantOver     bool
		wantObstacle bool
	}{
		{
			name: "eat food",
			snapshot: Snapshot{
				Body:      []types.Position{{X: 300, Y: 240}},
				Direction: types.DirectionRight,
				Food:      types.Position{X: 320, Y: 240},
			},
			wantBody:  []types.Position{{X: 320, Y: 240}, {X: 300, Y: 240}},
			wantScore: 10,
		},
		{
			name: "off the left edge",
			snapshot: Snapshot{
				Body:      []types.Position{{X: 0, Y: 0}},
				Direction: types.DirectionLeft,
				Food:      types.Position{X: 100, Y: 100},
			},
			wantBody: []types.Position{{X: 0, Y: 0}},
			wantOver: true,
		},
		{
			name: "off the bottom edge",
			snapshot: Snapshot{
				Body:      []types.Position{{X: 40, Y: 460}, {X: 40, Y: 440}},
				Direction: types.DirectionDown,
				Food:      types.Position{X: 100, Y: 100},
				Score:     10,
			},
			wantBody:  []types.Position{{X: 40, Y: 460}, {X: 40, Y: 440}},
			wantScore: 10,
			wantOver:  true,
		},
		{
			name: "move without eating",
			snapshot: Snapshot{
				Body:      []types.Position{{X: 100, Y: 100}, {X: 80, Y: 100}, {X: 60, Y: 100}},
				Direction: types.DirectionUp,
				Food:      types.Position{X: 300, Y: 300},
				Score:     20,
			},
			wantBody:  []types.Position{{X: 100, Y: 80}, {X: 100, Y: 100}, {X: 80, Y: 100}},
			wantScore: 20,
		},
		{
			name: "self collision",
			snapshot: Snapshot{
				Body: []types.Position{
					{X: 100, Y: 100},
					{X: 120, Y: 100},
					{X: 120, Y: 120},
					{X: 100, Y: 120},
					{X: 80, Y: 120},
				},
				Direction: types.DirectionDown,
				Food:      types.Position{X: 300, Y: 300},
				Score:     40,
			},
			wantBody: []types.Position{
				{X: 100, Y: 100},
				{X: 120, Y: 100},
				{X: 120, Y: 120},
				{X: 100, Y: 120},
				{X: 80, Y: 120},
			},
			wantScore: 40,
			wantOver:  true,
		},
		{
			name: "obstacle collision",
			snapshot: Snapshot{
				Body: []types.Position{
					{X: 120, Y: 100},
					{X: 100, Y: 100},
					{X: 80, Y: 100},
					{X: 60, Y: 100},
					{X: 40, Y: 100},
				},
				Direction: types.DirectionRight,
				Food:      types.Position{X: 300, Y: 300},
				Obstacle:  &obstacle,
				Score:     40,
			},
			wantBody: []types.Position{
				{X: 120, Y: 100},
				{X: 100, Y: 100},
				{X: 80, Y: 100},
				{X: 60, Y: 100},
				{X: 40, Y: 100},
			},
			wantScore:    40,
			wantOver:     true,
			wantObstacle: true,
		},
		{
			name: "growing to five places an obstacle",
			snapshot: Snapshot{
				Body: []types.Position{
					{X: 120, Y: 100},
					{X: 100, Y: 100},
					{X: 80, Y: 100},
					{X: 60, Y: 100},
				},
				Direction: types.DirectionRight,
				Food:      types.Position{X: 140, Y: 100},
				Score:     30,
			},
			wantBody: []types.Position{
				{X: 140, Y: 100},
				{X: 120, Y: 100},
				{X: 100, Y: 100},
				{X: 80, Y: 100},
				{X: 60, Y: 100},
			},
			wantScore:    40,
			wantObstacle: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, 42)
			restore(t, s, tt.snapshot)
			oldFood := s.Food()

			s.Update()

			assert.Equal(t, tt.wantBody, s.Body())
			assert.Equal(t, tt.wantScore, s.Score())
			assert.Equal(t, tt.wantOver, s.IsOver())
			_, hasObstacle := s.Obstacle()
			assert.Equal(t, tt.wantObstacle, hasObstacle)
			if !tt.wantOver {
				assertPlacementInvariants(t, s)
			}
			if tt.wantScore > tt.snapshot.Score {
				assert.NotEqual(t, oldFood, s.Food(), "food should be relocated")
			}
		})
	}
}

func TestState_Update_afterGameOver(t *testing.T) {
	s := newTestState(t, 1)
	restore(t, s, Snapshot{
		Body:      []types.Position{{X: 0, Y: 0}},
		Direction: types.DirectionUp,
		Food:      types.Position{X: 100, Y: 100},
	})

	s.Update()
	require.True(t, s.IsOver())
	before := s.Snapshot()

	s.SetDirection(types.DirectionRight)
	s.Update()
	s.Update()

	after := s.Snapshot()
	assert.Equal(t, before.Body, after.Body)
	assert.Equal(t, before.Score, after.Score)
	assert.True(t, s.IsOver())
}

func TestState_Update_fullGrid(t *testing.T) {
	bounds := types.Bounds{Width: 60, Height: 20, CellSize: 20}
	s := NewState(NewStateOptions{Bounds: bounds, Rand: rand.New(rand.NewSource(1))})
	restore(t, s, Snapshot{
		Body:      []types.Position{{X: 20, Y: 0}, {X: 0, Y: 0}},
		Direction: types.DirectionRight,
		Food:      types.Position{X: 40, Y: 0},
	})

	s.Update()

	assert.True(t, s.IsOver())
	assert.Equal(t, 10, s.Score())
	assert.Equal(t, 3, s.Len())
}

func TestState_Reset(t *testing.T) {
	s := newTestState(t, 9)
	restore(t, s, Snapshot{
		Body:      []types.Position{{X: 0, Y: 0}, {X: 20, Y: 0}},
		Direction: types.DirectionLeft,
		Food:      types.Position{X: 100, Y: 100},
		Score:     120,
		GameOver:  true,
	})

	s.Reset()

	assert.False(t, s.IsOver())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, []types.Position{types.DefaultBounds().Center()}, s.Body())
	assertPlacementInvariants(t, s)
}

func TestState_invariantsUnderRandomPlay(t *testing.T) {
	bounds := types.Bounds{Width: 200, Height: 200, CellSize: 20}
	rng := rand.New(rand.NewSource(2024))
	s := NewState(NewStateOptions{Bounds: bounds, Rand: rng})
	buffer := NewInputBuffer()

	for step := 0; step < 20000; step++ {
		if s.IsOver() {
			s.Reset()
		}

		// steer towards the food most of the time so the snake grows
		head, food := s.Head(), s.Food()
		want := s.Direction()
		switch {
		case rng.Intn(5) == 0:
			want = types.Directions[rng.Intn(len(types.Directions))]
		case food.X > head.X:
			want = types.DirectionRight
		case food.X < head.X:
			want = types.DirectionLeft
		case food.Y > head.Y:
			want = types.DirectionDown
		case food.Y < head.Y:
			want = types.DirectionUp
		}
		buffer.Enqueue(want, s.Direction())
		s.SetDirection(buffer.Next(s.Direction()))

		before := s.Snapshot()
		s.Update()

		if s.IsOver() {
			continue
		}
		assertPlacementInvariants(t, s)
		if s.Head() == before.Food {
			assert.Equal(t, len(before.Body)+1, s.Len())
			assert.Equal(t, before.Score+10, s.Score())
		} else {
			assert.Equal(t, len(before.Body), s.Len())
			assert.Equal(t, before.Score, s.Score())
		}
		if s.Len() < 5 {
			_, hasObstacle := s.Obstacle()
			assert.False(t, hasObstacle)
		}
	}
}

func TestState_Restore(t *testing.T) {
	offGrid := types.Position{X: 600, Y: 0}
	tests := []struct {
		name     string
		snapshot Snapshot
		wantErr  bool
	}{
		{
			name: "valid",
			snapshot: Snapshot{
				Body:      []types.Position{{X: 20, Y: 20}},
				Direction: types.DirectionUp,
				Food:      types.Position{X: 40, Y: 40},
			},
		},
		{
			name: "empty body",
			snapshot: Snapshot{
				Direction: types.DirectionUp,
				Food:      types.Position{X: 40, Y: 40},
			},
			wantErr: true,
		},
		{
			name: "unaligned body",
			snapshot: Snapshot{
				Body:      []types.Position{{X: 21, Y: 20}},
				Direction: types.DirectionUp,
				Food:      types.Position{X: 40, Y: 40},
			},
			wantErr: true,
		},
		{
			name: "obstacle off grid",
			snapshot: Snapshot{
				Body:      []types.Position{{X: 20, Y: 20}},
				Direction: types.DirectionUp,
				Food:      types.Position{X: 40, Y: 40},
				Obstacle:  &offGrid,
			},
			wantErr: true,
		},
		{
			name: "bad direction",
			snapshot: Snapshot{
				Body:      []types.Position{{X: 20, Y: 20}},
				Direction: types.Direction{DX: 20, DY: 20},
				Food:      types.Position{X: 40, Y: 40},
			},
			wantErr: true,
		},
		{
			name: "negative score",
			snapshot: Snapshot{
				Body:      []types.Position{{X: 20, Y: 20}},
				Direction: types.DirectionUp,
				Food:      types.Position{X: 40, Y: 40},
				Score:     -10,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(t, 1)
			before := s.Snapshot()

			err := s.Restore(tt.snapshot)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, before, s.Snapshot(), "state must be untouched")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.snapshot, s.Snapshot())
		})
	}
}

func TestState_Snapshot_isCopy(t *testing.T) {
	obstacle := types.Position{X: 200, Y: 200}
	s := newTestState(t, 1)
	restore(t, s, Snapshot{
		Body:      []types.Position{{X: 20, Y: 20}},
		Direction: types.DirectionUp,
		Food:      types.Position{X: 40, Y: 40},
		Obstacle:  &obstacle,
	})

	snapshot := s.Snapshot()
	snapshot.Body[0] = types.Position{X: 0, Y: 0}
	snapshot.Obstacle.X = 0
	obstacle.Y = 0

	assert.Equal(t, types.Position{X: 20, Y: 20}, s.Head())
	got, ok := s.Obstacle()
	require.True(t, ok)
	assert.Equal(t, types.Position{X: 200, Y: 200}, got)
}

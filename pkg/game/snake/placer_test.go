package snake

import (
	"math/rand"
	"testing"

	"github.com/cbodonnell/arcade/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacer_Place(t *testing.T) {
	bounds := types.Bounds{Width: 100, Height: 60, CellSize: 20}
	rng := rand.New(rand.NewSource(7))
	placer := NewPlacer(bounds, rng)

	for excludedCount := 0; excludedCount < bounds.Cells(); excludedCount++ {
		excluded := map[types.Position]struct{}{}
		for _, i := range rng.Perm(bounds.Cells())[:excludedCount] {
			excluded[bounds.CellAt(i)] = struct{}{}
		}

		for i := 0; i < 20; i++ {
			pos, ok := placer.Place(excluded)
			require.True(t, ok, "excluded %d of %d cells", excludedCount, bounds.Cells())
			assert.True(t, bounds.Contains(pos), "position %s out of bounds", pos)
			assert.True(t, bounds.Aligned(pos), "position %s not aligned", pos)
			assert.NotContains(t, excluded, pos)
		}
	}
}

func TestPlacer_Place_singleFreeCell(t *testing.T) {
	bounds := types.DefaultBounds()
	placer := NewPlacer(bounds, rand.New(rand.NewSource(1)))

	free := bounds.CellAt(321)
	excluded := map[types.Position]struct{}{}
	for i := 0; i < bounds.Cells(); i++ {
		if pos := bounds.CellAt(i); pos != free {
			excluded[pos] = struct{}{}
		}
	}

	pos, ok := placer.Place(excluded)
	require.True(t, ok)
	assert.Equal(t, free, pos)
}

func TestPlacer_Place_fullGrid(t *testing.T) {
	bounds := types.Bounds{Width: 40, Height: 40, CellSize: 20}
	placer := NewPlacer(bounds, rand.New(rand.NewSource(1)))

	excluded := map[types.Position]struct{}{}
	for i := 0; i < bounds.Cells(); i++ {
		excluded[bounds.CellAt(i)] = struct{}{}
	}

	_, ok := placer.Place(excluded)
	assert.False(t, ok)
}

func TestPlacer_GenerateFood(t *testing.T) {
	bounds := types.Bounds{Width: 60, Height: 20, CellSize: 20}
	placer := NewPlacer(bounds, rand.New(rand.NewSource(3)))

	body := []types.Position{{X: 0, Y: 0}}
	obstacle := &types.Position{X: 20, Y: 0}
	for i := 0; i < 50; i++ {
		food, ok := placer.GenerateFood(body, obstacle)
		require.True(t, ok)
		assert.Equal(t, types.Position{X: 40, Y: 0}, food)
	}
}

func TestPlacer_GenerateObstacle(t *testing.T) {
	bounds := types.DefaultBounds()
	placer := NewPlacer(bounds, rand.New(rand.NewSource(5)))
	food := types.Position{X: 0, Y: 0}

	tests := []struct {
		name    string
		length  int
		wantNil bool
	}{
		{name: "length 1", length: 1, wantNil: true},
		{name: "length 4", length: 4, wantNil: true},
		{name: "length 5", length: 5, wantNil: false},
		{name: "length 12", length: 12, wantNil: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := make([]types.Position, tt.length)
			for i := range body {
				body[i] = types.Position{X: 100 + i*20, Y: 100}
			}

			obstacle := placer.GenerateObstacle(body, food)
			if tt.wantNil {
				assert.Nil(t, obstacle)
				return
			}
			require.NotNil(t, obstacle)
			assert.NotContains(t, body, *obstacle)
			assert.NotEqual(t, food, *obstacle)
			assert.True(t, bounds.Contains(*obstacle))
		})
	}
}

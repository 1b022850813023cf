package snake

import (
	"math/rand"

	"github.com/cbodonnell/arcade/pkg/game/constants"
	"github.com/cbodonnell/arcade/pkg/game/types"
)

// maxPlacementAttempts bounds rejection sampling before falling back to
// enumerating the free cells.
const maxPlacementAttempts = 64

// Placer picks random grid cells outside an exclusion set.
type Placer struct {
	bounds types.Bounds
	rng    *rand.Rand
}

func NewPlacer(bounds types.Bounds, rng *rand.Rand) *Placer {
	return &Placer{
		bounds: bounds,
		rng:    rng,
	}
}

// Place returns a cell chosen uniformly among the cells not in excluded.
// It returns false if every cell is excluded.
func (p *Placer) Place(excluded map[types.Position]struct{}) (types.Position, bool) {
	cells := p.bounds.Cells()
	if cells == 0 {
		return types.Position{}, false
	}

	// sampling is only cheap while most of the grid is free
	if len(excluded)*2 < cells {
		for i := 0; i < maxPlacementAttempts; i++ {
			pos := p.bounds.CellAt(p.rng.Intn(cells))
			if _, ok := excluded[pos]; !ok {
				return pos, true
			}
		}
	}

	free := make([]types.Position, 0, cells)
	for i := 0; i < cells; i++ {
		pos := p.bounds.CellAt(i)
		if _, ok := excluded[pos]; !ok {
			free = append(free, pos)
		}
	}
	if len(free) == 0 {
		return types.Position{}, false
	}
	return free[p.rng.Intn(len(free))], true
}

// GenerateFood places food off the snake and off the obstacle, if any.
func (p *Placer) GenerateFood(body []types.Position, obstacle *types.Position) (types.Position, bool) {
	excluded := exclusionSet(body)
	if obstacle != nil {
		excluded[*obstacle] = struct{}{}
	}
	return p.Place(excluded)
}

// GenerateObstacle places an obstacle off the snake and off the food.
// Short snakes get no obstacle.
func (p *Placer) GenerateObstacle(body []types.Position, food types.Position) *types.Position {
	if len(body) < constants.ObstacleMinLength {
		return nil
	}
	excluded := exclusionSet(body)
	excluded[food] = struct{}{}
	pos, ok := p.Place(excluded)
	if !ok {
		return nil
	}
	return &pos
}

func exclusionSet(body []types.Position) map[types.Position]struct{} {
	excluded := make(map[types.Position]struct{}, len(body)+1)
	for _, pos := range body {
		excluded[pos] = struct{}{}
	}
	return excluded
}

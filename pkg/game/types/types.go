package types

import (
	"encoding/json"
	"fmt"

	"github.com/cbodonnell/arcade/pkg/game/constants"
)

// Position is a grid-aligned pixel coordinate. It is encoded as [x, y].
type Position struct {
	X int
	Y int
}

func (p Position) Add(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

func (p *Position) UnmarshalJSON(b []byte) error {
	var pair []int
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("failed to unmarshal position: %v", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("position must have 2 coordinates, got %d", len(pair))
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

// Direction is a one-cell step. Exactly one of DX, DY is non-zero
// and equal to ±GridSize. It is encoded as [dx, dy].
type Direction struct {
	DX int
	DY int
}

var (
	DirectionUp    = Direction{DX: 0, DY: -constants.GridSize}
	DirectionDown  = Direction{DX: 0, DY: constants.GridSize}
	DirectionLeft  = Direction{DX: -constants.GridSize, DY: 0}
	DirectionRight = Direction{DX: constants.GridSize, DY: 0}
)

// Directions lists the four legal directions.
var Directions = [4]Direction{DirectionUp, DirectionDown, DirectionRight, DirectionLeft}

func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// IsOpposite reports whether d is the exact reverse of other.
func (d Direction) IsOpposite(other Direction) bool {
	return d == other.Opposite() && d != (Direction{})
}

// SameAxis reports whether d and other move along the same axis.
func (d Direction) SameAxis(other Direction) bool {
	return (d.DX == 0) == (other.DX == 0)
}

// Valid reports whether d is one of the four legal directions.
func (d Direction) Valid() bool {
	for _, dir := range Directions {
		if d == dir {
			return true
		}
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return fmt.Sprintf("(%d,%d)", d.DX, d.DY)
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{d.DX, d.DY})
}

func (d *Direction) UnmarshalJSON(b []byte) error {
	var pair []int
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("failed to unmarshal direction: %v", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("direction must have 2 components, got %d", len(pair))
	}
	d.DX, d.DY = pair[0], pair[1]
	return nil
}

// Bounds describes the play field: [0, Width) x [0, Height) split into CellSize cells.
type Bounds struct {
	Width    int
	Height   int
	CellSize int
}

// DefaultBounds is the play field used by the program.
func DefaultBounds() Bounds {
	return Bounds{
		Width:    constants.ScreenWidth,
		Height:   constants.ScreenHeight,
		CellSize: constants.GridSize,
	}
}

func (b Bounds) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Aligned reports whether p lies on a cell corner.
func (b Bounds) Aligned(p Position) bool {
	return p.X%b.CellSize == 0 && p.Y%b.CellSize == 0
}

func (b Bounds) Columns() int {
	return b.Width / b.CellSize
}

func (b Bounds) Rows() int {
	return b.Height / b.CellSize
}

// Cells is the number of cells in the grid.
func (b Bounds) Cells() int {
	return b.Columns() * b.Rows()
}

// CellAt returns the position of the i-th cell in row-major order.
func (b Bounds) CellAt(i int) Position {
	cols := b.Columns()
	return Position{X: (i % cols) * b.CellSize, Y: (i / cols) * b.CellSize}
}

// Center returns the cell at the middle of the grid.
func (b Bounds) Center() Position {
	return Position{
		X: (b.Columns() / 2) * b.CellSize,
		Y: (b.Rows() / 2) * b.CellSize,
	}
}

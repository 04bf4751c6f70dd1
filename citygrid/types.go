// Package citygrid defines core types and sentinel errors
// for the city grid model.
package citygrid

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("citygrid: grid must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("citygrid: all rows must have the same length")
)

// DefaultCost is the price of entering a cell without a terrain entry.
const DefaultCost = 1

// Cell is a grid coordinate. X grows to the east, Y grows to the south.
type Cell struct {
	X, Y int
}

// String formats the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the cell shifted by the offset d.
func (c Cell) Add(d [2]int) Cell {
	return Cell{X: c.X + d[0], Y: c.Y + d[1]}
}

// Manhattan returns |c.X-o.X| + |c.Y-o.Y|.
func (c Cell) Manhattan(o Cell) int {
	dx, dy := c.X-o.X, c.Y-o.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// Delivery is a registered pickup/drop-off pair.
type Delivery struct {
	Start, End Cell
}

// Grid is a city map: static walls, terrain costs, and per-tick traffic.
// Width and Height bound the coordinate domain [0,Width)×[0,Height).
// Mutators only accumulate; queries never mutate, so a Grid may be shared
// by any number of planners once built.
type Grid struct {
	Width, Height int
	Name          string

	walls      mapset.Set[Cell]
	terrain    map[Cell]int
	traffic    map[int]mapset.Set[Cell]
	deliveries []Delivery
}

// neighborOffsets is the fixed 4-neighbour enumeration order. Every planner
// iterates it in this order, which makes tie-breaking reproducible.
var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

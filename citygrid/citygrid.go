package citygrid

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// NewGrid returns an empty width×height grid: no walls, unit cost everywhere,
// no traffic. Returns ErrEmptyGrid if either dimension is not positive.
func NewGrid(width, height int, name string) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}

	return &Grid{
		Width:   width,
		Height:  height,
		Name:    name,
		walls:   mapset.New[Cell](),
		terrain: make(map[Cell]int),
		traffic: make(map[int]mapset.Set[Cell]),
	}, nil
}

// From2D builds a grid from a row-major layout, rows[y][x]:
// 0 (or any value < 1) marks a wall, n ≥ 1 sets terrain cost n.
// The input is not retained.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed layouts.
func From2D(name string, rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := NewGrid(w, len(rows), name)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x, v := range row {
			switch {
			case v < 1:
				g.AddWall(x, y)
			case v > DefaultCost:
				g.SetTerrain(x, y, v)
			}
		}
	}

	return g, nil
}

// AddWall makes (x,y) permanently impassable. Out-of-bounds cells are stored
// but inert, since IsOpen rejects them anyway.
func (g *Grid) AddWall(x, y int) {
	g.walls.Put(Cell{x, y})
}

// SetTerrain sets the cost of entering (x,y). Costs below 1 are clamped to 1
// so that Manhattan distance stays an admissible heuristic.
func (g *Grid) SetTerrain(x, y, cost int) {
	if cost < DefaultCost {
		cost = DefaultCost
	}
	g.terrain[Cell{x, y}] = cost
}

// AddTraffic closes (x,y) at tick t only.
func (g *Grid) AddTraffic(t, x, y int) {
	closed, ok := g.traffic[t]
	if !ok {
		closed = mapset.New[Cell]()
		g.traffic[t] = closed
	}
	closed.Put(Cell{x, y})
}

// AddDelivery registers a pickup/drop-off request on the map.
func (g *Grid) AddDelivery(startX, startY, endX, endY int) {
	g.deliveries = append(g.deliveries, Delivery{
		Start: Cell{startX, startY},
		End:   Cell{endX, endY},
	})
}

// Deliveries returns a copy of the registered requests, in registration order.
func (g *Grid) Deliveries() []Delivery {
	out := make([]Delivery, len(g.deliveries))
	copy(out, g.deliveries)
	return out
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsWall reports whether (x,y) is a static wall.
func (g *Grid) IsWall(x, y int) bool {
	return g.walls.Has(Cell{x, y})
}

// IsClosedAt reports whether traffic closes (x,y) at tick t.
func (g *Grid) IsClosedAt(t, x, y int) bool {
	closed, ok := g.traffic[t]
	return ok && closed.Has(Cell{x, y})
}

// IsOpen reports whether (x,y) can be entered at tick t: in bounds,
// not walled, and not closed by traffic at t.
func (g *Grid) IsOpen(x, y, t int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	if g.IsWall(x, y) {
		return false
	}
	return !g.IsClosedAt(t, x, y)
}

// Cost returns the price of entering (x,y); DefaultCost when unmapped.
func (g *Grid) Cost(x, y int) int {
	if c, ok := g.terrain[Cell{x, y}]; ok {
		return c
	}
	return DefaultCost
}

// TrafficTicks returns the ticks that carry at least one closure, ascending.
func (g *Grid) TrafficTicks() []int {
	ticks := make([]int, 0, len(g.traffic))
	for t, closed := range g.traffic {
		if closed.Size() > 0 {
			ticks = append(ticks, t)
		}
	}
	sort.Ints(ticks)
	return ticks
}

// Neighbors returns the 4-neighbour offsets in enumeration order:
// south (0,+1), east (+1,0), north (0,-1), west (-1,0).
func Neighbors() [4][2]int {
	return neighborOffsets
}

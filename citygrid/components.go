package citygrid

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Reachable returns every cell reachable from start through cells open at
// tick t, in breadth-first discovery order, start first.
// Returns nil if start itself is not open at t.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for the seen set and output.
func (g *Grid) Reachable(start Cell, t int) []Cell {
	if !g.IsOpen(start.X, start.Y, t) {
		return nil
	}
	seen := mapset.New[Cell]()
	seen.Put(start)
	q := queue.New[Cell]()
	q.Enqueue(start)

	var region []Cell
	for !q.Empty() {
		u := q.Dequeue()
		region = append(region, u)
		for _, d := range neighborOffsets {
			v := u.Add(d)
			if !g.IsOpen(v.X, v.Y, t) || seen.Has(v) {
				continue
			}
			seen.Put(v)
			q.Enqueue(v)
		}
	}
	return region
}

// Connected reports whether b is reachable from a at tick t.
func (g *Grid) Connected(a, b Cell, t int) bool {
	for _, c := range g.Reachable(a, t) {
		if c == b {
			return true
		}
	}
	return false
}

package search

import "github.com/rishita24358/AI-DELIVERY-STIMULATOR/citygrid"

// aStar orders the frontier by accumulated cost plus Manhattan distance to goal.
//
// Every step costs at least 1 and Manhattan distance counts the fewest steps
// ignoring walls, so the heuristic is admissible and consistent: the first pop
// of goal is cost-optimal for the grid as seen at the reference tick.
// Traffic at any other tick is invisible here.
func aStar(g Grid, start, goal citygrid.Cell, o Options) Result {
	h := func(c citygrid.Cell) int64 { return int64(c.Manhattan(goal)) }
	return newRunner(g, goal, o, h).run(start)
}

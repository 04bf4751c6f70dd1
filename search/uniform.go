package search

import "github.com/rishita24358/AI-DELIVERY-STIMULATOR/citygrid"

// uniformCost is Dijkstra's algorithm ordered by accumulated cost alone.
// Returns the minimum-cost route at the reference tick.
//
// Complexity: O(N log N) for N = W×H, Memory: O(N).
func uniformCost(g Grid, start, goal citygrid.Cell, o Options) Result {
	return newRunner(g, goal, o, func(citygrid.Cell) int64 { return 0 }).run(start)
}

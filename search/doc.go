// Package search plans routes across a citygrid with four interchangeable
// strategies behind one capability, Planner.
//
// What
//
//   - BreadthFirst: FIFO over the 4-neighbourhood, visited closed at enqueue.
//     Minimum hops; terrain cost is summed along the route, not minimised.
//   - UniformCost: Dijkstra ordered by accumulated cost, closed at pop.
//     Minimum cost.
//   - AStar: as UniformCost, ordered by cost + Manhattan distance to goal.
//     Minimum cost with fewer expansions.
//   - RandomizedLocal: bounded greedy random walks, keeps the cheapest walk
//     that reached the goal. Neither complete nor optimal; also used by the
//     courier to repair routes mid-delivery.
//
// Reference tick
//
//	Every planner evaluates the grid at one fixed tick (Options.Tick, default
//	0). Plans never reason about future traffic; the executor re-checks each
//	step at the live tick and repairs when they disagree.
//
// Determinism
//
//	Neighbours are always enumerated south, east, north, west. Priority ties
//	are broken by push order. The only nondeterministic input is the
//	*rand.Rand used by RandomizedLocal, which the caller supplies; with a fixed
//	seed whole runs are reproducible.
//
// Results
//
//	A Result carries the Route, its Cost, and Expanded (nodes expanded, for
//	comparison only). An unreachable goal is not an error: Route is nil and
//	Cost is Unreachable, while Expanded still reports the work done. For
//	BreadthFirst, UniformCost and AStar that equals the size of the region
//	reachable from start.
//
// Complexity (N = W×H)
//
//   - BreadthFirst:     O(N) time and memory.
//   - UniformCost/AStar: O(N log N) time, O(N) memory.
//   - RandomizedLocal:  O(Tries × StepCap).
//
// Usage
//
//	p, err := search.New(search.AStar)
//	if err != nil {
//	    // ErrUnknownStrategy or ErrOptionViolation
//	}
//	res := p.Plan(grid, start, goal)
//
//	local, _ := search.New(search.RandomizedLocal,
//	    search.WithRand(search.NewRand(42)),
//	    search.WithTries(6),
//	)
//
// Errors
//
//   - ErrUnknownStrategy  for an unknown Kind or name.
//   - ErrOptionViolation  for invalid options (negative tick, zero tries, …).
package search

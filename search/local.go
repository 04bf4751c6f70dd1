package search

import (
	"math/rand"

	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/citygrid"
)

// walkOption is one open neighbour considered by a walk step.
type walkOption struct {
	cell     citygrid.Cell
	stepCost int
	score    int // stepCost + Manhattan distance to goal
}

// walk is the outcome of a single randomized attempt.
type walk struct {
	route   []citygrid.Cell
	cost    int64
	steps   int
	reached bool
}

// randomizedLocal makes o.Tries bounded walks from start toward goal and keeps
// the cheapest walk that reached it.
//
// Each step enumerates the open neighbours; with probability
// o.GreedyProbability it takes the lowest stepCost+Manhattan score (first in
// enumeration order on ties), otherwise a uniformly random neighbour. A walk
// ends at goal, after o.StepCap steps, or at a dead end.
//
// Expanded is the total number of steps over all walks, failed ones included.
// The search is neither complete nor optimal.
func randomizedLocal(g Grid, start, goal citygrid.Cell, o Options) Result {
	rng := o.Rand
	if rng == nil {
		rng = NewRand(0)
	}

	best := notFound(0)
	total := 0
	for try := 0; try < o.Tries; try++ {
		w := walkOnce(g, start, goal, o, rng)
		total += w.steps
		if w.reached && w.cost < best.Cost {
			best.Route = w.route
			best.Cost = w.cost
		}
	}
	best.Expanded = total
	return best
}

// walkOnce runs one attempt.
func walkOnce(g Grid, start, goal citygrid.Cell, o Options, rng *rand.Rand) walk {
	w := walk{route: []citygrid.Cell{start}}
	cur := start
	options := make([]walkOption, 0, 4)

	for cur != goal && w.steps < o.StepCap {
		w.steps++
		o.OnExpand(cur)

		options = options[:0]
		for _, d := range citygrid.Neighbors() {
			next := cur.Add(d)
			if !g.IsOpen(next.X, next.Y, o.Tick) {
				continue
			}
			sc := g.Cost(next.X, next.Y)
			options = append(options, walkOption{cell: next, stepCost: sc, score: sc + next.Manhattan(goal)})
		}
		if len(options) == 0 {
			break
		}

		var pick walkOption
		if rng.Float64() < o.GreedyProbability {
			pick = greedyPick(options)
		} else {
			pick = options[rng.Intn(len(options))]
		}
		w.route = append(w.route, pick.cell)
		w.cost += int64(pick.stepCost)
		cur = pick.cell
	}
	w.reached = cur == goal
	return w
}

// greedyPick returns the lowest-scoring option; the first one wins ties.
func greedyPick(options []walkOption) walkOption {
	best := options[0]
	for _, opt := range options[1:] {
		if opt.score < best.score {
			best = opt
		}
	}
	return best
}

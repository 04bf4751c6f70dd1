package search

import (
	"fmt"

	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/citygrid"
)

// planFunc is the shape shared by the four strategy implementations.
type planFunc func(g Grid, start, goal citygrid.Cell, o Options) Result

var strategies = map[Kind]planFunc{
	BreadthFirst:    breadthFirst,
	UniformCost:     uniformCost,
	AStar:           aStar,
	RandomizedLocal: randomizedLocal,
}

// planner binds a strategy to validated options.
type planner struct {
	kind Kind
	opts Options
	run  planFunc
}

// New returns the Planner for kind, configured by opts.
// Returns ErrUnknownStrategy for an invalid kind and ErrOptionViolation for
// bad options. When no Rand is supplied, the planner owns a stream seeded
// with DefaultSeed, so repeated calls on one planner continue that stream.
func New(kind Kind, opts ...Option) (Planner, error) {
	run, ok := strategies[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, kind)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Rand == nil {
		o.Rand = NewRand(0)
	}

	return &planner{kind: kind, opts: o, run: run}, nil
}

// Kind reports the strategy tag.
func (p *planner) Kind() Kind { return p.kind }

// Plan runs the bound strategy. Planners never mutate g.
func (p *planner) Plan(g Grid, start, goal citygrid.Cell) Result {
	return p.run(g, start, goal, p.opts)
}

// Plan is a one-shot helper: New(kind, opts...) followed by Plan.
func Plan(kind Kind, g Grid, start, goal citygrid.Cell, opts ...Option) (Result, error) {
	p, err := New(kind, opts...)
	if err != nil {
		return Result{}, err
	}
	return p.Plan(g, start, goal), nil
}

// RouteCost sums g.Cost over every cell of route after the first.
// It is the declared cost of a plan; an empty route costs 0.
func RouteCost(g Grid, route []citygrid.Cell) int64 {
	var total int64
	for i := 1; i < len(route); i++ {
		total += int64(g.Cost(route[i].X, route[i].Y))
	}
	return total
}

// buildRoute walks the parent links back from goal to start.
// parent must contain an entry for every cell on the chain except start.
func buildRoute(parent map[citygrid.Cell]citygrid.Cell, start, goal citygrid.Cell) []citygrid.Cell {
	route := []citygrid.Cell{goal}
	for cur := goal; cur != start; {
		prev, ok := parent[cur]
		if !ok {
			return nil
		}
		route = append(route, prev)
		cur = prev
	}
	// reverse to get start → goal
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}

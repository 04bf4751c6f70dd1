package search

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/citygrid"
)

// runner holds the mutable state for a single best-first execution
// (UniformCost or AStar).
type runner struct {
	grid      Grid                            // read-only within the search
	opts      Options                         // reference tick, hooks
	goal      citygrid.Cell                   // target cell
	heuristic func(c citygrid.Cell) int64     // 0 for UniformCost, Manhattan for AStar
	pq        *frontier                       // (priority, seq) min-heap
	dist      map[citygrid.Cell]int64         // best known accumulated cost
	parent    map[citygrid.Cell]citygrid.Cell // predecessor on the best known path
	closed    mapset.Set[citygrid.Cell]       // cells whose cost is final
	expanded  int                             // settled pops, goal pop included
}

func newRunner(g Grid, goal citygrid.Cell, o Options, h func(citygrid.Cell) int64) *runner {
	return &runner{
		grid:      g,
		opts:      o,
		goal:      goal,
		heuristic: h,
		pq:        newFrontier(),
		dist:      make(map[citygrid.Cell]int64),
		parent:    make(map[citygrid.Cell]citygrid.Cell),
		closed:    mapset.New[citygrid.Cell](),
	}
}

// run pops entries in (priority, seq) order until the goal is popped or the
// frontier drains.
//
// A cell is closed when popped, not when pushed, so a cell may sit in the
// queue several times with different candidate costs. Its first pop carries
// its final cost: every step costs at least 1, so there are no negative edges.
// Stale pops of already-closed cells are skipped and not counted.
func (r *runner) run(start citygrid.Cell) Result {
	r.dist[start] = 0
	r.pq.push(start, 0, r.heuristic(start))

	for r.pq.len() > 0 {
		item, _ := r.pq.pop()
		if r.closed.Has(item.cell) {
			continue
		}
		r.expanded++
		r.opts.OnExpand(item.cell)

		if item.cell == r.goal {
			return Result{
				Route:    buildRoute(r.parent, start, r.goal),
				Cost:     item.cost,
				Expanded: r.expanded,
			}
		}
		r.closed.Put(item.cell)
		r.relax(item)
	}
	return notFound(r.expanded)
}

// relax pushes every open, unclosed neighbour whose candidate cost strictly
// improves on the best known one. Ties keep the earlier path.
func (r *runner) relax(item frontierItem) {
	for _, d := range citygrid.Neighbors() {
		next := item.cell.Add(d)
		if !r.grid.IsOpen(next.X, next.Y, r.opts.Tick) || r.closed.Has(next) {
			continue
		}
		nd := item.cost + int64(r.grid.Cost(next.X, next.Y))
		if best, seen := r.dist[next]; seen && nd >= best {
			continue
		}
		r.dist[next] = nd
		r.parent[next] = item.cell
		r.pq.push(next, nd, nd+r.heuristic(next))
	}
}

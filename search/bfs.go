package search

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/citygrid"
)

// bfsItem pairs a cell with the terrain cost accumulated along the path that
// discovered it.
type bfsItem struct {
	cell citygrid.Cell
	cost int64
}

// bfsWalker encapsulates mutable breadth-first state.
type bfsWalker struct {
	grid     Grid
	opts     Options
	goal     citygrid.Cell
	queue    *queue.Queue[bfsItem]
	visited  mapset.Set[citygrid.Cell]
	parent   map[citygrid.Cell]citygrid.Cell
	expanded int
}

// breadthFirst explores the 4-neighbourhood in FIFO order.
//
// A cell is marked visited when it is enqueued, so it is expanded at most once
// and a cheaper path found later never replaces the first one. The route is
// therefore hop-minimal but not cost-minimal; Cost is the terrain cost summed
// along that first-discovered route. Expanded counts dequeues, which for an
// unreachable goal equals the size of the reachable region.
func breadthFirst(g Grid, start, goal citygrid.Cell, o Options) Result {
	w := &bfsWalker{
		grid:    g,
		opts:    o,
		goal:    goal,
		queue:   queue.New[bfsItem](),
		visited: mapset.New[citygrid.Cell](),
		parent:  make(map[citygrid.Cell]citygrid.Cell),
	}
	w.enqueue(start, 0)

	for !w.queue.Empty() {
		item := w.dequeue()
		if item.cell == goal {
			return Result{
				Route:    buildRoute(w.parent, start, goal),
				Cost:     item.cost,
				Expanded: w.expanded,
			}
		}
		w.enqueueNeighbors(item)
	}
	return notFound(w.expanded)
}

// enqueue marks c visited and appends it to the queue.
func (w *bfsWalker) enqueue(c citygrid.Cell, cost int64) {
	w.visited.Put(c)
	w.queue.Enqueue(bfsItem{cell: c, cost: cost})
}

// dequeue pops the oldest item and counts it as expanded.
func (w *bfsWalker) dequeue() bfsItem {
	item := w.queue.Dequeue()
	w.expanded++
	w.opts.OnExpand(item.cell)
	return item
}

// enqueueNeighbors enqueues each open, unseen neighbour of item.
func (w *bfsWalker) enqueueNeighbors(item bfsItem) {
	for _, d := range citygrid.Neighbors() {
		next := item.cell.Add(d)
		if !w.grid.IsOpen(next.X, next.Y, w.opts.Tick) || w.visited.Has(next) {
			continue
		}
		w.parent[next] = item.cell
		w.enqueue(next, item.cost+int64(w.grid.Cost(next.X, next.Y)))
	}
}

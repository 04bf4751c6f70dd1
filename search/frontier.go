package search

import (
	"github.com/zyedidia/generic/heap"

	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/citygrid"
)

// frontierItem is one entry of the best-first priority queue.
type frontierItem struct {
	cell     citygrid.Cell
	cost     int64  // accumulated cost from start
	priority int64  // ordering key: cost (+ heuristic for A*)
	seq      uint64 // push order, breaks priority ties
}

// frontier is a min-heap of frontierItem ordered by (priority, seq).
// Duplicates for one cell are allowed ("lazy decrease-key"); stale entries
// are skipped by the caller when popped.
type frontier struct {
	h   *heap.Heap[frontierItem]
	seq uint64
}

func newFrontier() *frontier {
	return &frontier{
		h: heap.New[frontierItem](func(a, b frontierItem) bool {
			if a.priority != b.priority {
				return a.priority < b.priority
			}
			return a.seq < b.seq
		}),
	}
}

// push adds c with the given accumulated cost and ordering key.
func (f *frontier) push(c citygrid.Cell, cost, priority int64) {
	f.h.Push(frontierItem{cell: c, cost: cost, priority: priority, seq: f.seq})
	f.seq++
}

// pop removes the entry with the smallest (priority, seq).
func (f *frontier) pop() (frontierItem, bool) {
	return f.h.Pop()
}

// len returns the number of queued entries, stale ones included.
func (f *frontier) len() int {
	return f.h.Size()
}

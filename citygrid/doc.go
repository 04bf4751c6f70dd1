// Package citygrid models a city as a rectangular grid of cells whose
// passability changes over time.
//
// What:
//
//   - Grid holds static walls, per-cell terrain costs, and a traffic table
//     keyed by simulated tick.
//   - IsOpen answers point-in-time passability; Cost answers the price of
//     entering a cell.
//   - From2D builds a Grid from a [][]int layout (0 = wall, n ≥ 1 = cost n).
//   - Reachable floods the open region around a cell at a fixed tick.
//   - Render draws the grid as text for terminals.
//
// Why:
//
//   - Planners query the grid at one reference tick; the executor queries it
//     at the live tick. Both go through the same IsOpen, which is where plans
//     and reality diverge.
//
// Invariants:
//
//   - A walled cell is closed at every tick, regardless of traffic.
//   - Cost(x, y) ≥ 1 for every coordinate, mapped or not, in bounds or not.
//   - Queries never fail: out-of-bounds coordinates are simply not open.
//
// Complexity:
//
//   - IsOpen, Cost: O(1).
//   - Reachable:    O(W×H), Memory: O(W×H).
//   - Render:       O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive width or height, or an empty layout.
//   - ErrNonRectangular: layout rows of differing lengths.
package citygrid

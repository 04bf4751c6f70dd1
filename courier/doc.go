// Package courier executes planned routes against a grid whose traffic
// changes every tick.
//
// A Courier is one agent with a clock, a fuel tank, a delivered count and a
// bounded event history. RunDelivery drives a single request through
//
//	Planning → Executing → (Repairing ⇄ Executing) → Delivered | Failed
//
// Planning runs the chosen search strategy at tick 0. Executing moves one cell
// per tick and re-checks every cell at the live tick, Clock()+k for the k-th
// move. When a cell is closed, Repairing runs search.RandomizedLocal from the
// current cell at that tick and splices its route in place of the rest of the
// plan. If the repair finds nothing, or MaxRepairs is used up, the delivery
// fails where it stands.
// The repair is the only planner call that sees traffic; the initial plan
// always runs at tick 0.
//
// Nothing in this package returns an error once a Courier exists: an
// unreachable goal, a blockage and a failed repair are all reported through
// Outcome and the history.
//
// Clock, fuel, delivered count and history carry over between deliveries;
// Reset rewinds clock and fuel for side-by-side comparisons (see Compare).
//
// The animate flag only turns on the Observer and Pacer callbacks. Both
// default to no-ops, so tests never sleep.
package courier

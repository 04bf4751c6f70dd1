// Package search defines the planner capability, the strategy tag, functional
// options, and sentinel errors shared by the four route planners.
package search

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/citygrid"
)

// Sentinel errors for planner construction.
var (
	// ErrUnknownStrategy is returned when a strategy name or Kind is not recognised.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Unreachable is the Cost reported when no route to the goal was found.
const Unreachable int64 = math.MaxInt64

// Defaults used by DefaultOptions.
const (
	DefaultTries             = 4
	DefaultStepCap           = 100
	DefaultGreedyProbability = 0.8
)

// Grid is the read-only view every planner consumes.
// *citygrid.Grid satisfies it.
type Grid interface {
	// IsOpen reports whether (x,y) may be entered at tick t.
	IsOpen(x, y, t int) bool
	// Cost returns the price (≥ 1) of entering (x,y).
	Cost(x, y int) int
}

// Kind tags one of the four planning strategies.
type Kind int

const (
	// BreadthFirst finds a minimum-hop route; terrain cost is reported, not minimised.
	BreadthFirst Kind = iota
	// UniformCost finds a minimum-cost route (Dijkstra).
	UniformCost
	// AStar finds a minimum-cost route guided by Manhattan distance.
	AStar
	// RandomizedLocal runs bounded greedy random walks; neither complete nor optimal.
	RandomizedLocal
)

// Kinds returns every strategy in menu order.
func Kinds() []Kind {
	return []Kind{BreadthFirst, UniformCost, AStar, RandomizedLocal}
}

var kindNames = map[Kind]string{
	BreadthFirst:    "bfs",
	UniformCost:     "ucs",
	AStar:           "astar",
	RandomizedLocal: "local",
}

var kindAliases = map[string]Kind{
	"bfs":              BreadthFirst,
	"breadth-first":    BreadthFirst,
	"ucs":              UniformCost,
	"uniform-cost":     UniformCost,
	"dijkstra":         UniformCost,
	"astar":            AStar,
	"a*":               AStar,
	"a-star":           AStar,
	"local":            RandomizedLocal,
	"random":           RandomizedLocal,
	"randomized-local": RandomizedLocal,
}

// String returns the short name: bfs, ucs, astar or local.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is one of the four strategies.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind maps a case-insensitive name (short or long form) to a Kind.
func ParseKind(name string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Result is the outcome of one planning call.
//
//   - Route: start … goal, consecutive cells one cardinal step apart; nil if not found.
//   - Cost: sum of Cost over every cell after the first, or Unreachable.
//   - Expanded: nodes expanded, for comparison only.
type Result struct {
	Route    []citygrid.Cell
	Cost     int64
	Expanded int
}

// Found reports whether a route to the goal was produced.
func (r Result) Found() bool {
	return len(r.Route) > 0
}

// Hops returns the number of moves along the route (0 when not found).
func (r Result) Hops() int {
	if len(r.Route) == 0 {
		return 0
	}
	return len(r.Route) - 1
}

// notFound builds the unreachable result with the given instrumentation count.
func notFound(expanded int) Result {
	return Result{Cost: Unreachable, Expanded: expanded}
}

// Planner is the single capability shared by every strategy.
type Planner interface {
	// Kind reports which strategy this planner runs.
	Kind() Kind
	// Plan computes a route from start to goal. It never fails: an unreachable
	// goal yields a Result with Found() == false.
	Plan(g Grid, start, goal citygrid.Cell) Result
}

// Option configures planner behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the parameters shared by the planners. Fields a strategy
// does not use are ignored by it.
type Options struct {
	// Tick is the single reference tick at which the grid is evaluated.
	Tick int

	// Tries is the number of walks made by RandomizedLocal.
	Tries int

	// StepCap bounds the length of each RandomizedLocal walk.
	StepCap int

	// GreedyProbability is the chance that a walk step takes the best-scoring
	// neighbour instead of a uniformly random one.
	GreedyProbability float64

	// Rand is the randomness source for RandomizedLocal. Not goroutine-safe.
	Rand *rand.Rand

	// OnExpand is called once per counted expansion.
	OnExpand func(c citygrid.Cell)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Tick 0 (plans never look at future traffic)
//   - Tries DefaultTries, StepCap DefaultStepCap
//   - GreedyProbability DefaultGreedyProbability
//   - Rand nil (New substitutes a stream seeded with DefaultSeed)
//   - no-op OnExpand.
func DefaultOptions() Options {
	return Options{
		Tick:              0,
		Tries:             DefaultTries,
		StepCap:           DefaultStepCap,
		GreedyProbability: DefaultGreedyProbability,
		OnExpand:          func(citygrid.Cell) {},
	}
}

// WithTick evaluates the grid at tick t instead of 0. t < 0 is invalid.
func WithTick(t int) Option {
	return func(o *Options) {
		if t < 0 {
			o.err = fmt.Errorf("%w: Tick cannot be negative (%d)", ErrOptionViolation, t)
			return
		}
		o.Tick = t
	}
}

// WithTries sets the number of RandomizedLocal walks. n < 1 is invalid.
func WithTries(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Tries must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Tries = n
	}
}

// WithStepCap sets the per-walk step limit. n < 1 is invalid.
func WithStepCap(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: StepCap must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.StepCap = n
	}
}

// WithGreedyProbability sets the greedy step probability, p ∈ [0,1].
func WithGreedyProbability(p float64) Option {
	return func(o *Options) {
		if p < 0 || p > 1 || math.IsNaN(p) {
			o.err = fmt.Errorf("%w: GreedyProbability must be in [0,1] (%v)", ErrOptionViolation, p)
			return
		}
		o.GreedyProbability = p
	}
}

// WithRand sets the randomness source. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithOnExpand registers a callback run once per counted expansion.
func WithOnExpand(fn func(c citygrid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

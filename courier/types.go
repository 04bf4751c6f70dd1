// Package courier defines the delivery session types, options, and sentinel
// errors for the execution engine.
package courier

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/citygrid"
	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/search"
)

// Sentinel errors for courier construction.
var (
	// ErrNilGrid is returned when New is given a nil grid.
	ErrNilGrid = errors.New("courier: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("courier: invalid option supplied")
)

// Defaults used by DefaultOptions.
const (
	DefaultFuel         = 100
	DefaultRepairTries  = 6
	DefaultMaxRepairs   = 32
	DefaultHistoryLimit = 256
	DefaultPlanPause    = 600 * time.Millisecond
	DefaultStepPause    = 300 * time.Millisecond
)

// State is a phase of one delivery.
type State int

const (
	// Planning runs the selected strategy at the reference tick.
	Planning State = iota
	// Executing walks the route one cell per tick.
	Executing
	// Repairing replans locally after a blocked step.
	Repairing
	// Delivered is terminal: the courier reached the drop-off.
	Delivered
	// Failed is terminal: no route, or the repair could not recover.
	Failed
)

var stateNames = [...]string{"planning", "executing", "repairing", "delivered", "failed"}

// String returns the lower-case state name.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether s ends a delivery.
func (s State) Terminal() bool {
	return s == Delivered || s == Failed
}

// Request is a pickup/drop-off pair.
type Request = citygrid.Delivery

// Outcome summarises one delivery attempt.
//
//   - Cost: terrain cost of the cells actually entered (0 when no plan was found).
//   - Expanded: planning expansions plus every repair's expansions.
//   - Path: cells actually occupied, start first.
type Outcome struct {
	RunID     uuid.UUID
	Strategy  search.Kind
	Cost      int64
	Expanded  int
	Success   bool
	Final     State
	Planned   search.Result
	Path      []citygrid.Cell
	Blockages int
	Repairs   int
}

// Frame is what an Observer sees between steps of an animated delivery.
type Frame struct {
	Grid     *citygrid.Grid
	State    State
	Position citygrid.Cell
	Route    []citygrid.Cell
	Tick     int
	Status   Status
}

// Status is the read-only snapshot shown to displays.
type Status struct {
	Position  citygrid.Cell
	Clock     int
	Fuel      int
	Delivered int
}

// String formats the status line.
func (s Status) String() string {
	return fmt.Sprintf("Location: (%d, %d)  Time: %d  Fuel: %d  Delivered: %d",
		s.Position.X, s.Position.Y, s.Clock, s.Fuel, s.Delivered)
}

// Option configures a Courier via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the courier configuration.
type Options struct {
	// Fuel is the tank after New and after Reset. Fuel may go negative.
	Fuel int

	// RepairTries is the walk budget of each mid-route repair.
	RepairTries int

	// MaxRepairs caps repairs per delivery; one more blockage fails it.
	MaxRepairs int

	// HistoryLimit bounds the event history; the oldest entries are dropped.
	HistoryLimit int

	// PlanPause and StepPause are handed to Pacer when animating.
	PlanPause time.Duration
	StepPause time.Duration

	// Observer receives a Frame before each step when animating.
	Observer func(Frame)

	// Pacer performs the cosmetic animation delay.
	Pacer func(time.Duration)

	// Logger receives structured diagnostics.
	Logger *slog.Logger

	// Rand drives RandomizedLocal, both as a strategy and as the repair.
	Rand *rand.Rand

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Fuel DefaultFuel, RepairTries DefaultRepairTries, MaxRepairs DefaultMaxRepairs
//   - HistoryLimit DefaultHistoryLimit
//   - PlanPause/StepPause DefaultPlanPause/DefaultStepPause, no-op Pacer and Observer
//   - a Logger that discards everything
//   - Rand nil (New substitutes search.NewRand(0)).
func DefaultOptions() Options {
	return Options{
		Fuel:         DefaultFuel,
		RepairTries:  DefaultRepairTries,
		MaxRepairs:   DefaultMaxRepairs,
		HistoryLimit: DefaultHistoryLimit,
		PlanPause:    DefaultPlanPause,
		StepPause:    DefaultStepPause,
		Observer:     func(Frame) {},
		Pacer:        func(time.Duration) {},
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithFuel sets the starting fuel.
func WithFuel(f int) Option {
	return func(o *Options) { o.Fuel = f }
}

// WithRepairTries sets the repair walk budget. n < 1 is invalid.
func WithRepairTries(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: RepairTries must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.RepairTries = n
	}
}

// WithMaxRepairs caps repairs per delivery. 0 disables repair; n < 0 is invalid.
func WithMaxRepairs(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRepairs cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRepairs = n
	}
}

// WithHistoryLimit bounds the event history. n < 1 is invalid.
func WithHistoryLimit(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: HistoryLimit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.HistoryLimit = n
	}
}

// WithPauses sets the animation delays. Negative durations are invalid.
func WithPauses(plan, step time.Duration) Option {
	return func(o *Options) {
		if plan < 0 || step < 0 {
			o.err = fmt.Errorf("%w: pauses cannot be negative (%v, %v)", ErrOptionViolation, plan, step)
			return
		}
		o.PlanPause, o.StepPause = plan, step
	}
}

// WithObserver registers the per-step display callback.
func WithObserver(fn func(Frame)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

// WithPacer sets the delay function, typically time.Sleep.
func WithPacer(fn func(time.Duration)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Pacer = fn
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRand sets the randomness source shared by planning and repair.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

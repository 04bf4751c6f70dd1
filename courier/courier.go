package courier

import (
	"log/slog"
	"math/rand"

	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/citygrid"
	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/search"
)

// Courier is the single agent driven across a grid. It owns its position,
// clock, fuel, delivered count and event history. Not safe for concurrent use.
type Courier struct {
	grid *citygrid.Grid
	opts Options
	rng  *rand.Rand
	log  *slog.Logger

	pos       citygrid.Cell
	clock     int
	fuel      int
	delivered int
	history   []string
}

// New returns a courier parked at (0,0) on grid with a full tank.
// Returns ErrNilGrid or ErrOptionViolation.
func New(grid *citygrid.Grid, opts ...Option) (*Courier, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Rand == nil {
		o.Rand = search.NewRand(0)
	}

	return &Courier{
		grid: grid,
		opts: o,
		rng:  o.Rand,
		log:  o.Logger.With("city", grid.Name),
		fuel: o.Fuel,
	}, nil
}

// Grid returns the map the courier drives on.
func (c *Courier) Grid() *citygrid.Grid { return c.grid }

// Position returns the current cell.
func (c *Courier) Position() citygrid.Cell { return c.pos }

// Clock returns the ticks elapsed since the last Reset.
func (c *Courier) Clock() int { return c.clock }

// Fuel returns the remaining fuel, possibly negative.
func (c *Courier) Fuel() int { return c.fuel }

// Delivered returns the number of successful deliveries.
func (c *Courier) Delivered() int { return c.delivered }

// Status returns a snapshot of the counters.
func (c *Courier) Status() Status {
	return Status{Position: c.pos, Clock: c.clock, Fuel: c.fuel, Delivered: c.delivered}
}

// History returns a copy of the last n events, oldest first.
// n ≤ 0 or n beyond the stored count returns everything stored.
func (c *Courier) History(n int) []string {
	from := 0
	if n > 0 && n < len(c.history) {
		from = len(c.history) - n
	}
	out := make([]string, len(c.history)-from)
	copy(out, c.history[from:])
	return out
}

// Reset rewinds the clock and refills the tank. Position, delivered count
// and history are kept.
func (c *Courier) Reset() {
	c.clock = 0
	c.fuel = c.opts.Fuel
}

// record appends an event, dropping the oldest past HistoryLimit.
func (c *Courier) record(event string) {
	c.history = append(c.history, event)
	if over := len(c.history) - c.opts.HistoryLimit; over > 0 {
		c.history = append(c.history[:0], c.history[over:]...)
	}
}

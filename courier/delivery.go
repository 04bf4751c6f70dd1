package courier

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/citygrid"
	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/search"
)

// session holds the mutable state of one RunDelivery call.
type session struct {
	c       *Courier
	req     Request
	animate bool

	state State
	route []citygrid.Cell // current plan, route[0] is where the courier stands
	next  int             // index into route of the next cell to enter
	steps int             // committed moves
	out   Outcome
}

// RunDelivery plans req with the strategy kind and walks the plan one cell
// per tick, repairing locally when a cell turns out closed at the live tick.
//
// Planning always evaluates the grid at tick 0. Step k of the walk is checked
// at tick Clock()+k. A blocked step triggers RandomizedLocal from the current
// cell, evaluated at the blocked tick, whose route replaces the rest of the
// plan. Failures are reported in the Outcome and the history, never as errors.
//
// An invalid kind falls back to RandomizedLocal. animate only enables the
// Observer and Pacer; it never changes the numbers.
func (c *Courier) RunDelivery(req Request, kind search.Kind, animate bool) Outcome {
	if !kind.Valid() {
		c.log.Warn("unknown strategy, using local search", "kind", int(kind))
		kind = search.RandomizedLocal
	}
	s := &session{
		c:       c,
		req:     req,
		animate: animate,
		state:   Planning,
		out: Outcome{
			RunID:    uuid.New(),
			Strategy: kind,
			Path:     []citygrid.Cell{req.Start},
		},
	}
	c.pos = req.Start
	c.log.Info("delivery started", "run", s.out.RunID, "from", req.Start, "to", req.End, "strategy", kind)

	if s.plan(kind) {
		s.execute()
	}
	s.out.Final = s.state
	return s.out
}

// plan runs the selected strategy at the reference tick. Returns false, and
// leaves the session Failed, when no route exists.
func (s *session) plan(kind search.Kind) bool {
	c := s.c
	p, err := search.New(kind, search.WithRand(c.rng))
	if err != nil {
		c.log.Error("planner unavailable", "run", s.out.RunID, "err", err)
		c.record(fmt.Sprintf("Sorry! No %v planner", kind))
		s.state = Failed
		return false
	}
	res := p.Plan(c.grid, s.req.Start, s.req.End)
	s.out.Planned = res
	s.out.Expanded = res.Expanded
	c.log.Debug("planned", "run", s.out.RunID, "found", res.Found(), "cost", res.Cost, "expanded", res.Expanded)

	if !res.Found() {
		c.record(fmt.Sprintf("Sorry! No route from %v to %v", s.req.Start, s.req.End))
		s.state = Failed
		return false
	}
	s.route = res.Route
	s.next = 1
	s.state = Executing
	if s.animate {
		s.show(c.clock)
		c.opts.Pacer(c.opts.PlanPause)
	}
	return true
}

// execute walks the route until it is exhausted or a repair fails, then does
// the terminal accounting.
func (s *session) execute() {
	c := s.c
	for s.state == Executing && s.next < len(s.route) {
		cell := s.route[s.next]
		// blocked turns commit no move, so they do not advance the tick
		now := c.clock + s.steps + 1
		if s.animate {
			s.show(now)
			c.opts.Pacer(c.opts.StepPause)
		}
		if !c.grid.IsOpen(cell.X, cell.Y, now) {
			s.out.Blockages++
			c.record(fmt.Sprintf("Blocked at %d,%d at t=%d", cell.X, cell.Y, now))
			c.log.Info("blocked", "run", s.out.RunID, "cell", cell, "tick", now)
			s.state = Repairing
			s.repair(now)
			continue
		}
		s.move(cell)
	}

	c.clock += s.steps
	if s.state == Failed || c.pos != s.req.End {
		s.state = Failed
		c.log.Info("delivery failed", "run", s.out.RunID, "cost", s.out.Cost, "steps", s.steps)
		return
	}
	s.state = Delivered
	s.out.Success = true
	c.delivered++
	c.record(fmt.Sprintf("Delivered in %s! Cost=%d", c.grid.Name, s.out.Cost))
	c.log.Info("delivered", "run", s.out.RunID, "cost", s.out.Cost, "expanded", s.out.Expanded, "fuel", c.fuel)
}

// move commits one step: position, cost and fuel.
func (s *session) move(cell citygrid.Cell) {
	c := s.c
	cost := c.grid.Cost(cell.X, cell.Y)
	c.pos = cell
	c.fuel -= cost
	s.out.Cost += int64(cost)
	s.out.Path = append(s.out.Path, cell)
	s.steps++
	s.next++
}

// repair replans from the current cell with RandomizedLocal at tick now, so
// the first step of a repaired route is open at the tick it will be taken.
// On success the repaired route replaces the remaining plan.
func (s *session) repair(now int) {
	c := s.c
	if s.out.Repairs >= c.opts.MaxRepairs {
		c.record("Stuck, delivery failed")
		c.log.Info("repair budget exhausted", "run", s.out.RunID, "repairs", s.out.Repairs)
		s.state = Failed
		return
	}
	p, err := search.New(search.RandomizedLocal,
		search.WithTick(now),
		search.WithTries(c.opts.RepairTries),
		search.WithRand(c.rng),
	)
	if err != nil {
		c.log.Error("repair planner unavailable", "run", s.out.RunID, "err", err)
		c.record("Stuck, delivery failed")
		s.state = Failed
		return
	}
	res := p.Plan(c.grid, c.pos, s.req.End)
	s.out.Repairs++
	s.out.Expanded += res.Expanded

	if !res.Found() {
		c.record("Stuck, delivery failed")
		c.log.Info("repair failed", "run", s.out.RunID, "at", c.pos, "tick", now, "expanded", res.Expanded)
		s.state = Failed
		return
	}
	c.record("New route found")
	c.log.Debug("repaired", "run", s.out.RunID, "at", c.pos, "hops", res.Hops(), "cost", res.Cost)
	s.route = res.Route
	s.next = 1
	s.state = Executing
}

// show hands a frame to the observer.
func (s *session) show(tick int) {
	c := s.c
	c.opts.Observer(Frame{
		Grid:     c.grid,
		State:    s.state,
		Position: c.pos,
		Route:    s.route,
		Tick:     tick,
		Status:   c.Status(),
	})
}

// Package deliverysim is a courier route planner for small city grids with
// walls, terrain costs and traffic that closes cells at given ticks.
//
// The module is organized into four packages and one command:
//
//	citygrid/          Cell, Grid, walls/terrain/traffic, IsOpen, Cost, Render
//	search/            BreadthFirst, UniformCost, AStar and RandomizedLocal planners
//	courier/           the agent: plan at tick 0, walk tick by tick, repair on blockage
//	presets/           the Bhopal, Indore, Shivpuri and Jabalpur maps
//	cmd/courier-sim/   command-line front end for single runs and comparisons
//
// Quick start:
//
//	g := presets.Bhopal()
//	cr, _ := courier.New(g, courier.WithRand(search.NewRand(42)))
//	out := cr.RunDelivery(g.Deliveries()[0], search.AStar, false)
//	fmt.Println(out.Final, out.Cost, cr.Status())
//
// Planners only read the grid through search.Grid (IsOpen and Cost), so any
// type with those two methods can be searched.
package deliverysim

// Package presets builds the bundled city maps.
//
// Each city carries a few walls, one expensive cell, a short run of traffic
// closures on a single cell, and one registered delivery from the top-left
// corner to the bottom-right corner.
package presets

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/citygrid"
)

// ErrUnknownCity is returned by ByName for a name with no preset.
var ErrUnknownCity = errors.New("presets: unknown city")

// city describes one preset declaratively.
type city struct {
	name          string
	width, height int
	walls         [][2]int
	terrain       [3]int // x, y, cost
	trafficCell   [2]int
	trafficTicks  [2]int // [from, to)
	delivery      [4]int // sx, sy, ex, ey
}

var cities = []city{
	{
		name: "Bhopal", width: 8, height: 6,
		walls:        [][2]int{{1, 1}, {2, 1}, {3, 1}, {4, 4}},
		terrain:      [3]int{5, 2, 3},
		trafficCell:  [2]int{2, 0},
		trafficTicks: [2]int{3, 6},
		delivery:     [4]int{0, 0, 7, 5},
	},
	{
		name: "Indore", width: 7, height: 7,
		walls:        [][2]int{{2, 2}, {2, 3}, {2, 4}, {5, 5}},
		terrain:      [3]int{4, 1, 4},
		trafficCell:  [2]int{3, 3},
		trafficTicks: [2]int{4, 9},
		delivery:     [4]int{0, 0, 6, 6},
	},
	{
		name: "Shivpuri", width: 6, height: 8,
		walls:        [][2]int{{1, 6}, {2, 6}, {3, 6}, {4, 6}},
		terrain:      [3]int{3, 2, 2},
		trafficCell:  [2]int{4, 0},
		trafficTicks: [2]int{2, 5},
		delivery:     [4]int{0, 0, 5, 7},
	},
	{
		name: "Jabalpur", width: 9, height: 5,
		walls:        [][2]int{{7, 1}, {7, 2}, {7, 3}},
		terrain:      [3]int{2, 2, 5},
		trafficCell:  [2]int{5, 4},
		trafficTicks: [2]int{6, 10},
		delivery:     [4]int{0, 0, 8, 4},
	},
}

// build turns a description into a grid.
func (c city) build() *citygrid.Grid {
	g, err := citygrid.NewGrid(c.width, c.height, c.name)
	if err != nil {
		// preset dimensions are positive constants
		panic(fmt.Sprintf("presets: %s: %v", c.name, err))
	}
	for _, w := range c.walls {
		g.AddWall(w[0], w[1])
	}
	g.SetTerrain(c.terrain[0], c.terrain[1], c.terrain[2])
	for t := c.trafficTicks[0]; t < c.trafficTicks[1]; t++ {
		g.AddTraffic(t, c.trafficCell[0], c.trafficCell[1])
	}
	g.AddDelivery(c.delivery[0], c.delivery[1], c.delivery[2], c.delivery[3])
	return g
}

// Bhopal is an 8×6 city with a wall run across row 1 and traffic at (2,0) for ticks 3–5.
func Bhopal() *citygrid.Grid { return cities[0].build() }

// Indore is a 7×7 city with a wall column at x=2 and traffic at (3,3) for ticks 4–8.
func Indore() *citygrid.Grid { return cities[1].build() }

// Shivpuri is a 6×8 city with a wall run across row 6 and traffic at (4,0) for ticks 2–4.
func Shivpuri() *citygrid.Grid { return cities[2].build() }

// Jabalpur is a 9×5 city with a wall column at x=7 and traffic at (5,4) for ticks 6–9.
func Jabalpur() *citygrid.Grid { return cities[3].build() }

// Names returns the preset names in menu order.
func Names() []string {
	out := make([]string, len(cities))
	for i, c := range cities {
		out[i] = c.name
	}
	return out
}

// ByName builds the preset whose name matches case-insensitively.
func ByName(name string) (*citygrid.Grid, error) {
	for _, c := range cities {
		if strings.EqualFold(c.name, strings.TrimSpace(name)) {
			return c.build(), nil
		}
	}
	known := Names()
	sort.Strings(known)
	return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownCity, name, strings.Join(known, ", "))
}

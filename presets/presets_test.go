package presets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/citygrid"
	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/presets"
	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/search"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"Bhopal", "Indore", "Shivpuri", "Jabalpur"}, presets.Names())
}

func TestByName(t *testing.T) {
	g, err := presets.ByName("  indore ")
	require.NoError(t, err)
	assert.Equal(t, "Indore", g.Name)
	assert.Equal(t, 7, g.Width)
	assert.Equal(t, 7, g.Height)

	_, err = presets.ByName("Atlantis")
	require.ErrorIs(t, err, presets.ErrUnknownCity)
	assert.Contains(t, err.Error(), "Bhopal")
}

func TestBhopal_Layout(t *testing.T) {
	g := presets.Bhopal()
	assert.Equal(t, 8, g.Width)
	assert.Equal(t, 6, g.Height)
	for _, w := range [][2]int{{1, 1}, {2, 1}, {3, 1}, {4, 4}} {
		assert.True(t, g.IsWall(w[0], w[1]), "wall %v", w)
	}
	assert.Equal(t, 3, g.Cost(5, 2))
	assert.Equal(t, citygrid.DefaultCost, g.Cost(0, 0))

	assert.True(t, g.IsOpen(2, 0, 2))
	for tick := 3; tick <= 5; tick++ {
		assert.False(t, g.IsOpen(2, 0, tick), "tick %d", tick)
	}
	assert.True(t, g.IsOpen(2, 0, 6))
	assert.Equal(t, []int{3, 4, 5}, g.TrafficTicks())
}

func TestTrafficWindows(t *testing.T) {
	cases := []struct {
		build func() *citygrid.Grid
		ticks []int
	}{
		{presets.Bhopal, []int{3, 4, 5}},
		{presets.Indore, []int{4, 5, 6, 7, 8}},
		{presets.Shivpuri, []int{2, 3, 4}},
		{presets.Jabalpur, []int{6, 7, 8, 9}},
	}
	for _, tc := range cases {
		g := tc.build()
		assert.Equal(t, tc.ticks, g.TrafficTicks(), g.Name)
	}
}

// Every preset delivery is reachable at the reference tick and the three
// systematic planners agree on feasibility.
func TestPresets_DeliveriesReachable(t *testing.T) {
	for _, name := range presets.Names() {
		g, err := presets.ByName(name)
		require.NoError(t, err)
		ds := g.Deliveries()
		require.Len(t, ds, 1, name)
		d := ds[0]
		assert.Equal(t, citygrid.Cell{}, d.Start, name)
		assert.Equal(t, citygrid.Cell{X: g.Width - 1, Y: g.Height - 1}, d.End, name)
		require.True(t, g.Connected(d.Start, d.End, 0), name)

		for _, k := range []search.Kind{search.BreadthFirst, search.UniformCost, search.AStar} {
			res, err := search.Plan(k, g, d.Start, d.End)
			require.NoError(t, err)
			assert.True(t, res.Found(), "%s/%v", name, k)
			assert.Equal(t, d.Start.Manhattan(d.End), res.Hops(), "%s/%v shortest hop count", name, k)
		}
	}
}

func TestPresets_FreshGrids(t *testing.T) {
	a, b := presets.Jabalpur(), presets.Jabalpur()
	a.AddWall(0, 1)
	assert.False(t, b.IsWall(0, 1))
}

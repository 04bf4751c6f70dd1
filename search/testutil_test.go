package search_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/citygrid"
	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/search"
)

// c is a short constructor for cells in fixtures.
func c(x, y int) citygrid.Cell { return citygrid.Cell{X: x, Y: y} }

// openGrid returns a w×h grid with no walls and unit cost.
func openGrid(t testing.TB, w, h int) *citygrid.Grid {
	t.Helper()
	g, err := citygrid.NewGrid(w, h, "open")
	require.NoError(t, err)
	return g
}

// randomGrid builds a small seeded grid with ~25% walls and costs in [1,5],
// plus an open start and a random goal.
func randomGrid(t testing.TB, r *rand.Rand) (*citygrid.Grid, citygrid.Cell, citygrid.Cell) {
	t.Helper()
	w, h := 2+r.Intn(5), 2+r.Intn(5)
	g := openGrid(t, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.Float64() < 0.25 {
				g.AddWall(x, y)
				continue
			}
			g.SetTerrain(x, y, 1+r.Intn(5))
		}
	}
	start := c(r.Intn(w), r.Intn(h))
	for g.IsWall(start.X, start.Y) {
		start = c(r.Intn(w), r.Intn(h))
	}
	goal := c(r.Intn(w), r.Intn(h))
	return g, start, goal
}

// bruteHops is an independent breadth-first hop count; -1 if unreachable.
func bruteHops(g *citygrid.Grid, start, goal citygrid.Cell) int {
	dist := map[citygrid.Cell]int{start: 0}
	frontier := []citygrid.Cell{start}
	for len(frontier) > 0 {
		var next []citygrid.Cell
		for _, u := range frontier {
			if u == goal {
				return dist[u]
			}
			for _, d := range citygrid.Neighbors() {
				v := u.Add(d)
				if _, seen := dist[v]; seen || !g.IsOpen(v.X, v.Y, 0) {
					continue
				}
				dist[v] = dist[u] + 1
				next = append(next, v)
			}
		}
		frontier = next
	}
	return -1
}

// bruteCost is Bellman-Ford over the whole grid; math.MaxInt64 if unreachable.
func bruteCost(g *citygrid.Grid, start, goal citygrid.Cell) int64 {
	n := g.Width * g.Height
	dist := map[citygrid.Cell]int64{start: 0}
	for i := 0; i < n; i++ {
		changed := false
		for u, du := range dist {
			for _, d := range citygrid.Neighbors() {
				v := u.Add(d)
				if !g.IsOpen(v.X, v.Y, 0) {
					continue
				}
				nd := du + int64(g.Cost(v.X, v.Y))
				if dv, ok := dist[v]; !ok || nd < dv {
					dist[v] = nd
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	if d, ok := dist[goal]; ok {
		return d
	}
	return math.MaxInt64
}

// requireValidRoute checks endpoints, cardinal adjacency, openness at tick 0,
// and that the declared cost matches the route.
func requireValidRoute(t *testing.T, g *citygrid.Grid, res search.Result, start, goal citygrid.Cell) {
	t.Helper()
	require.True(t, res.Found())
	require.Equal(t, start, res.Route[0])
	require.Equal(t, goal, res.Route[len(res.Route)-1])
	for i := 1; i < len(res.Route); i++ {
		prev, cur := res.Route[i-1], res.Route[i]
		require.Equal(t, 1, prev.Manhattan(cur), "step %d %v→%v is not cardinal", i, prev, cur)
		require.True(t, g.IsOpen(cur.X, cur.Y, 0), "step %d enters closed %v", i, cur)
	}
	require.Equal(t, search.RouteCost(g, res.Route), res.Cost)
}

// mustPlan runs one strategy and fails the test on construction errors.
func mustPlan(t testing.TB, k search.Kind, g search.Grid, start, goal citygrid.Cell, opts ...search.Option) search.Result {
	t.Helper()
	res, err := search.Plan(k, g, start, goal, opts...)
	require.NoError(t, err)
	return res
}

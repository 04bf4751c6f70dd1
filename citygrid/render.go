package citygrid

import (
	"fmt"
	"io"
	"strings"
)

// RenderOptions selects the overlays drawn by Render.
type RenderOptions struct {
	// Agent, if non-nil, is drawn as "R".
	Agent *Cell
	// Route cells are drawn as "·".
	Route []Cell
	// Clock selects which tick's traffic is drawn as "T".
	Clock int
}

// Render writes a text picture of the grid to w.
// Precedence per cell: R agent, # wall, T traffic at Clock, · route,
// terrain digit when cost > 1, . otherwise.
func (g *Grid) Render(w io.Writer, opts RenderOptions) error {
	onRoute := make(map[Cell]bool, len(opts.Route))
	for _, c := range opts.Route {
		onRoute[c] = true
	}
	rule := strings.Repeat("=", g.Width*3+2)

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n%s MAP  (Time: %d)\n%s\n", rule, strings.ToUpper(g.Name), opts.Clock, rule)
	for y := 0; y < g.Height; y++ {
		b.WriteString("|")
		for x := 0; x < g.Width; x++ {
			c := Cell{x, y}
			switch {
			case opts.Agent != nil && *opts.Agent == c:
				b.WriteString(" R ")
			case g.IsWall(x, y):
				b.WriteString(" # ")
			case g.IsClosedAt(opts.Clock, x, y):
				b.WriteString(" T ")
			case onRoute[c]:
				b.WriteString(" · ")
			case g.Cost(x, y) > DefaultCost:
				fmt.Fprintf(&b, " %d ", g.Cost(x, y))
			default:
				b.WriteString(" . ")
			}
		}
		b.WriteString("|\n")
	}
	fmt.Fprintf(&b, "%s\nLegend: R=Robot  #=Wall  T=Traffic  ·=Route  Number=Cost\n", rule)

	_, err := io.WriteString(w, b.String())
	return err
}

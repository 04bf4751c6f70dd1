package courier

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/search"
)

// Compare runs req once per kind without animation, resetting the clock and
// fuel before each run so the strategies start from the same state.
// With no kinds, all four strategies run in menu order.
func (c *Courier) Compare(req Request, kinds ...search.Kind) []Outcome {
	if len(kinds) == 0 {
		kinds = search.Kinds()
	}
	out := make([]Outcome, 0, len(kinds))
	for _, k := range kinds {
		c.Reset()
		out = append(out, c.RunDelivery(req, k, false))
	}
	return out
}

// WriteComparison prints one aligned row per outcome.
func WriteComparison(w io.Writer, outcomes []Outcome) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	for _, o := range outcomes {
		fmt.Fprintf(tw, "%s\t| Cost=%d\t| Nodes=%d\t| Success=%t\n", o.Strategy, o.Cost, o.Expanded, o.Success)
	}
	return tw.Flush()
}

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/citygrid"
	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/courier"
)

// clearScreen homes the cursor and clears an ANSI terminal.
const clearScreen = "\033[H\033[2J"

// frameWriter returns an observer that redraws the map, the planned route
// and the status line for every frame. Write failures are logged and the
// delivery carries on.
func frameWriter(w io.Writer, logger *slog.Logger) func(courier.Frame) {
	return func(f courier.Frame) {
		pos := f.Position
		fmt.Fprint(w, clearScreen)
		if err := f.Grid.Render(w, citygrid.RenderOptions{
			Agent: &pos,
			Route: f.Route,
			Clock: f.Tick,
		}); err != nil {
			logger.Warn("render failed", "tick", f.Tick, "err", err)
			return
		}
		fmt.Fprintf(w, "[%s] %s\n", f.State, f.Status)
	}
}

// Command courier-sim runs deliveries on a bundled city map and prints the
// outcome, the event history and, with -compare, one row per strategy.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/courier"
	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/presets"
	"github.com/rishita24358/AI-DELIVERY-STIMULATOR/search"
)

// config is the parsed command line.
type config struct {
	city     string
	strategy string
	compare  bool
	animate  bool
	seed     int64
	pace     time.Duration
	logLevel string
	history  int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, returning the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	level, err := parseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	grid, err := presets.ByName(cfg.city)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	kind, err := search.ParseKind(cfg.strategy)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	opts := []courier.Option{
		courier.WithLogger(logger),
		courier.WithRand(search.NewRand(cfg.seed)),
		courier.WithPauses(2*cfg.pace, cfg.pace),
	}
	if cfg.animate {
		opts = append(opts,
			courier.WithObserver(frameWriter(stdout, logger)),
			courier.WithPacer(time.Sleep),
		)
	}
	cr, err := courier.New(grid, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	logger.Debug("courier ready", "city", grid.Name, "strategy", kind, "seed", cfg.seed)

	if cfg.compare {
		return runCompare(cr, stdout)
	}
	return runDeliveries(cr, kind, cfg, stdout)
}

// parseFlags reads args into a config.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("courier-sim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.city, "city", "Bhopal", "city map: "+strings.Join(presets.Names(), ", "))
	fs.StringVar(&cfg.strategy, "strategy", "astar", "planning strategy: bfs, ucs, astar or local")
	fs.BoolVar(&cfg.compare, "compare", false, "run every strategy on each delivery and print a comparison")
	fs.BoolVar(&cfg.animate, "animate", false, "draw the map before every step")
	fs.Int64Var(&cfg.seed, "seed", search.DefaultSeed, "seed for randomized local search")
	fs.DurationVar(&cfg.pace, "pace", courier.DefaultStepPause, "pause between animated steps")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "diagnostic log level: debug, info, warn or error")
	fs.IntVar(&cfg.history, "history", 10, "number of recent history entries to print, 0 for all")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.pace < 0 {
		return cfg, errors.New("-pace must be >= 0")
	}
	if cfg.history < 0 {
		return cfg, errors.New("-history must be >= 0")
	}
	return cfg, nil
}

// parseLevel maps a -log-level value onto slog.
func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return l, fmt.Errorf("invalid -log-level %q", s)
	}
	return l, nil
}

// runDeliveries executes every registered delivery of the city in order.
// Exit code 1 reports that at least one delivery failed.
func runDeliveries(cr *courier.Courier, kind search.Kind, cfg config, stdout io.Writer) int {
	code := 0
	for i, req := range cr.Grid().Deliveries() {
		out := cr.RunDelivery(req, kind, cfg.animate)
		fmt.Fprintf(stdout, "delivery %d %v -> %v: %s strategy=%s cost=%d nodes=%d repairs=%d\n",
			i+1, req.Start, req.End, out.Final, out.Strategy, out.Cost, out.Expanded, out.Repairs)
		if !out.Success {
			code = 1
		}
	}
	fmt.Fprintln(stdout, cr.Status())
	writeHistory(stdout, cr.History(cfg.history))
	return code
}

// runCompare prints one comparison table per registered delivery.
func runCompare(cr *courier.Courier, stdout io.Writer) int {
	for _, req := range cr.Grid().Deliveries() {
		fmt.Fprintf(stdout, "Comparison %s %v -> %v\n", cr.Grid().Name, req.Start, req.End)
		if err := courier.WriteComparison(stdout, cr.Compare(req)); err != nil {
			return 1
		}
	}
	return 0
}

func writeHistory(w io.Writer, events []string) {
	if len(events) == 0 {
		return
	}
	fmt.Fprintln(w, "History:")
	for _, e := range events {
		fmt.Fprintf(w, "  %s\n", e)
	}
}

// Command pathtrace builds a weighted undirected graph from a YAML file, runs
// Dijkstra from the configured source, prints the step trace and the paths
// to each target, and optionally persists the graph and those paths.
//
// Usage:
//
//	pathtrace -config graph.yaml [-source A] [-log-level debug] [-log-format json]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/pathtrace/config"
	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/persist"
	"github.com/katalvlaran/pathtrace/persist/memory"
	"github.com/katalvlaran/pathtrace/persist/sqlite"
	"github.com/katalvlaran/pathtrace/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "pathtrace:", err)
		stop()
		os.Exit(1)
	}
}

// run is main without the process exits. Results go to stdout, logs to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	// 1) Flags override the file.
	fs := flag.NewFlagSet("pathtrace", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML run description")
	source := fs.String("source", "", "source vertex (overrides config)")
	logLevel := fs.String("log-level", "", "debug, info, warn or error (overrides config)")
	logFormat := fs.String("log-format", "", "text or json (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *source != "" {
		cfg.Source = *source
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	strategy, _ := dijkstra.ParseStrategy(cfg.Strategy)

	log := newLogger(cfg.Log.Level, cfg.Log.Format, stderr)

	// 2) Open the adapter; the store owns it from here on.
	adapter, err := openAdapter(ctx, cfg.Store)
	if err != nil {
		return err
	}
	s := store.New(store.WithAdapter(adapter), store.WithLogger(log), store.WithStrategy(strategy))
	defer func() {
		if cerr := s.Close(); cerr != nil {
			err = multierror.Append(err, cerr).ErrorOrNil()
		}
	}()
	vertices, edges := cfg.Graph.Len()
	log.Info("store opened", "driver", cfg.Store.Driver, "dsn", cfg.Store.DSN,
		"vertices", vertices, "edges", edges)

	// 3) Vertices, then edges. Dropped edges are logged by the store and
	// skipped; persistence failures abort.
	if err := load(ctx, s, cfg.Graph); err != nil {
		return err
	}

	// 4) Compute and print.
	result, err := s.ShortestPaths(cfg.Source)
	if err != nil {
		return err
	}
	printTrace(stdout, result, s.Graph().Labels())

	// 5) Persist and print paths.
	if cfg.Save.Graph {
		if err := s.SaveGraph(ctx); err != nil {
			return err
		}
	}
	for _, target := range cfg.Targets {
		var path []string
		if cfg.Save.Paths {
			path, err = s.SavePathTo(ctx, target)
		} else {
			path, err = s.PathTo(target)
		}
		switch {
		case errors.Is(err, core.ErrUnreachable):
			fmt.Fprintf(stdout, "%s: unreachable\n", target)
			continue
		case err != nil:
			return err
		}
		fmt.Fprintf(stdout, "%s: %s (%v)\n", target, strings.Join(path, " → "), result.Distances[target])
	}

	return nil
}

// openAdapter is replaced in tests.
var openAdapter = adapterFor

// adapterFor returns the adapter for the configured driver.
func adapterFor(ctx context.Context, sc config.StoreConfig) (persist.Adapter, error) {
	switch sc.Driver {
	case config.DriverSQLite:
		return sqlite.Open(ctx, sc.DSN)
	case config.DriverMemory:
		return memory.New(), nil
	case config.DriverNone:
		return persist.Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", sc.Driver)
	}
}

// load inserts the configured graph into s.
func load(ctx context.Context, s *store.Store, g config.GraphConfig) error {
	for _, v := range g.Vertices {
		if err := s.AddVertex(ctx, v); err != nil {
			return err
		}
	}
	for _, e := range g.Edges {
		err := s.AddEdge(ctx, e.From, e.To, e.Weight)
		if err != nil && !errors.Is(err, core.ErrInvalidEdge) {
			return err
		}
	}

	return nil
}

// printTrace writes one line per finalized vertex, with the distances known
// after that step, followed by the final distance of every label.
func printTrace(w io.Writer, r *store.Run, labels []string) {
	for i, step := range r.Trace {
		dist := make([]string, len(labels))
		for j, l := range labels {
			dist[j] = l + "=" + formatDistance(step.Distances[l])
		}
		fmt.Fprintf(w, "step %d: %s visited=%v dist=[%s]\n", i+1, step.Current, step.Visited, strings.Join(dist, " "))
	}

	for _, l := range labels {
		fmt.Fprintf(w, "  %s = %s\n", l, formatDistance(r.Distances[l]))
	}
}

func formatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "∞"
	}

	return strconv.FormatFloat(d, 'g', -1, 64)
}

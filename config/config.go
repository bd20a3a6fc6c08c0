// Package config loads the pathtrace run description from YAML: the graph to
// build, the source and targets, the persistence backend and logging.
//
// A minimal file:
//
//	source: A
//	targets: [D]
//	graph:
//	  vertices: [A, B, C, D]
//	  edges:
//	    - {from: A, to: B, weight: 1}
//	    - {from: B, to: C, weight: 2}
//	store:
//	  driver: sqlite
//	  dsn: ./pathtrace.db
//	save:
//	  graph: true
//	  paths: true
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathtrace/dijkstra"
)

// Persistence drivers.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
	DriverNone   = "none"
)

// Defaults applied to empty fields.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultDriver    = DriverNone
	DefaultSQLiteDSN = "./pathtrace.db"
)

// ErrInvalid is wrapped by every problem reported from Validate.
var ErrInvalid = errors.New("config: invalid")

// Config describes one pathtrace run.
type Config struct {
	Log      LogConfig   `yaml:"log"`
	Store    StoreConfig `yaml:"store"`
	Graph    GraphConfig `yaml:"graph"`
	Source   string      `yaml:"source"`
	Targets  []string    `yaml:"targets,omitempty"`
	Strategy string      `yaml:"strategy,omitempty"` // "linear" or "heap"
	Save     SaveConfig  `yaml:"save"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// StoreConfig selects the persistence adapter.
type StoreConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn,omitempty"`
}

// GraphConfig lists the vertices and edges in insertion order.
type GraphConfig struct {
	Vertices []string     `yaml:"vertices"`
	Edges    []EdgeConfig `yaml:"edges"`
}

// EdgeConfig is one undirected weighted edge.
type EdgeConfig struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// SaveConfig controls what is written to the adapter after the run.
type SaveConfig struct {
	Graph bool `yaml:"graph"`
	Paths bool `yaml:"paths"`
}

// Default returns a config with no graph and no persistence.
func Default() *Config {
	return &Config{
		Log:   LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Store: StoreConfig{Driver: DefaultDriver},
	}
}

// Load reads the YAML file at path. An empty path yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML and fills in defaults. It does not validate.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Store.Driver == "" {
		c.Store.Driver = DefaultDriver
	}
	if c.Store.Driver == DriverSQLite && c.Store.DSN == "" {
		c.Store.DSN = DefaultSQLiteDSN
	}
}

// Validate reports every problem at once; each wraps ErrInvalid.
// Edges with unknown endpoints are not reported here: the store drops and
// logs them at load time.
func (c *Config) Validate() error {
	var result *multierror.Error
	fail := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		fail("log.level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		fail("log.format %q", c.Log.Format)
	}
	switch c.Store.Driver {
	case DriverSQLite, DriverMemory, DriverNone:
	default:
		fail("store.driver %q", c.Store.Driver)
	}
	if _, err := dijkstra.ParseStrategy(c.Strategy); err != nil {
		fail("strategy %q", c.Strategy)
	}

	known := make(map[string]bool, len(c.Graph.Vertices))
	for i, v := range c.Graph.Vertices {
		switch {
		case v == "":
			fail("graph.vertices[%d] is empty", i)
		case known[v]:
			fail("graph.vertices[%d] %q is a duplicate", i, v)
		}
		known[v] = true
	}
	for i, e := range c.Graph.Edges {
		if e.From == "" || e.To == "" {
			fail("graph.edges[%d] %q→%q has an empty endpoint", i, e.From, e.To)
		}
		switch {
		case math.IsNaN(e.Weight):
			fail("graph.edges[%d] %s→%s has NaN weight", i, e.From, e.To)
		case e.Weight < 0:
			fail("graph.edges[%d] %s→%s has negative weight %v", i, e.From, e.To, e.Weight)
		}
	}

	if c.Source == "" {
		fail("source is empty")
	} else if !known[c.Source] {
		fail("source %q is not a vertex", c.Source)
	}
	for _, t := range c.Targets {
		if !known[t] {
			fail("target %q is not a vertex", t)
		}
	}

	return result.ErrorOrNil()
}

// Len returns the vertex and edge counts.
func (g GraphConfig) Len() (vertices, edges int) {
	return len(g.Vertices), len(g.Edges)
}

// Package main implements the gridpath CLI: solve a grid scenario with A*,
// Dijkstra or BFS, compare the three, or edit a grid interactively.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/search"
)

// version information
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand once the persistent
// flags have been applied.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Shortest paths on a 2D grid with obstacles",
		Long: `gridpath searches a 4-connected grid for a path between a start and a goal
cell, using A*, Dijkstra or breadth-first search.

Scenarios are text maps (.txt, .map) or YAML files. Without a scenario the
grid size comes from the configuration, the start is the top-left corner
and the goal the bottom-right corner.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (console, json)")

	root.AddCommand(newSolveCmd(a), newCompareCmd(a), newPlayCmd(a))

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewWithWriter(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	a.logger.Debug("configuration loaded",
		zap.String("path", a.configPath),
		zap.Int("width", cfg.Grid.Width),
		zap.Int("height", cfg.Grid.Height),
		zap.String("algorithm", cfg.Search.Algorithm),
		zap.Bool("ordered_dijkstra", cfg.Search.OrderedDijkstra),
	)

	return nil
}

// scenario loads the scenario named by args, or builds the default open grid.
// A file that names no algorithm uses the configured one.
func (a *app) scenario(args []string) (*scenario.Scenario, error) {
	if len(args) > 0 {
		sc, err := scenario.Load(args[0])
		if err != nil {
			return nil, err
		}
		if !sc.HasAlgorithm {
			sc.Algorithm, sc.HasAlgorithm = a.cfg.Algorithm(), true
		}
		a.logger.Debug("scenario loaded",
			zap.String("path", args[0]),
			zap.Stringer("start", sc.Start),
			zap.Stringer("goal", sc.Goal),
			zap.Int("obstacles", len(sc.Grid.Obstacles())),
		)
		return sc, nil
	}

	return defaultScenario(a.cfg)
}

// defaultScenario places start in the top-left corner and goal in the
// bottom-right corner of an open grid.
func defaultScenario(cfg *config.Config) (*scenario.Scenario, error) {
	w, h := cfg.Grid.Width, cfg.Grid.Height
	g, err := gridgraph.New(w, h)
	if err != nil {
		return nil, fmt.Errorf("default grid: %w", err)
	}

	return &scenario.Scenario{
		Grid:      g,
		Start:        gridgraph.Point{X: 0, Y: 0},
		Goal:         gridgraph.Point{X: w - 1, Y: h - 1},
		Algorithm:    cfg.Algorithm(),
		HasAlgorithm: true,
	}, nil
}

// searchOptions combines configured options with the logger.
func (a *app) searchOptions() []search.Option {
	return append(a.cfg.SearchOptions(), search.WithLogger(a.logger))
}

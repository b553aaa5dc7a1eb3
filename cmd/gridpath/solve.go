package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/scenario"
	"github.com/katalvlaran/gridpath/search"
)

func newSolveCmd(a *app) *cobra.Command {
	var algo string
	var ordered bool
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Search a scenario and print the grid with its path",
		Long: `Search a scenario and draw the result: '*' marks the path, 'o' the cells
the algorithm expanded, '#' obstacles, 'S' and 'G' the endpoints.

The algorithm is taken from --algo, else from the scenario file's
algorithm key, else from the configuration (text maps never name one).

Examples:
  # Default 15x15 grid with A*
  gridpath solve

  # A text map with breadth-first search
  gridpath solve --algo bfs maze.map`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.scenario(args)
			if err != nil {
				return err
			}
			if algo != "" {
				if sc.Algorithm, err = search.ParseAlgorithm(algo); err != nil {
					return err
				}
			}
			opts := a.searchOptions()
			if ordered {
				opts = append(opts, search.WithOrderedDijkstra())
			}

			return runSolve(cmd.OutOrStdout(), sc, opts...)
		},
	}
	cmd.Flags().StringVarP(&algo, "algo", "a", "", "algorithm: astar, dijkstra or bfs")
	cmd.Flags().BoolVar(&ordered, "ordered", false, "run Dijkstra with a priority queue instead of FIFO order")

	return cmd
}

// runSolve searches sc and writes the rendered grid and a summary to w.
func runSolve(w io.Writer, sc *scenario.Scenario, opts ...search.Option) error {
	res, err := sc.Run(opts...)
	if err != nil {
		return err
	}

	fmt.Fprint(w, scenario.Render(sc, res))
	fmt.Fprintln(w)
	if res.Reachable {
		fmt.Fprintf(w, "%s: %s -> %s in %d hops, cost %.1f, expanded %d cells\n",
			res.Algorithm, sc.Start, sc.Goal, res.Hops(), res.Cost(), res.Expanded)
		return nil
	}

	fmt.Fprintf(w, "%s: %s -> %s unreachable, expanded %d cells\n",
		res.Algorithm, sc.Start, sc.Goal, res.Expanded)
	_, count := sc.Grid.RegionOf()
	fmt.Fprintf(w, "open regions: %d\n", count)
	if _, cost, err := sc.Grid.MinClearance(sc.Start, sc.Goal); err == nil {
		fmt.Fprintf(w, "removing %d obstacle(s) would connect them\n", cost)
	}

	return nil
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [file]",
		Short: "Run every algorithm on a scenario and tabulate the results",
		Long: `Run A*, Dijkstra and breadth-first search on the same scenario and
print reachability, path length, path cost and expanded cell count for each.

Examples:
  gridpath compare maze.map`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.scenario(args)
			if err != nil {
				return err
			}

			return runCompare(cmd.OutOrStdout(), sc, a.searchOptions()...)
		},
	}
}

// runCompare searches sc with every algorithm and writes a table to w.
func runCompare(w io.Writer, sc *scenario.Scenario, opts ...search.Option) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tREACHABLE\tHOPS\tCOST\tEXPANDED")
	for _, alg := range search.Algorithms() {
		res, err := search.Run(sc.Grid, sc.Start, sc.Goal, alg, opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", alg, err)
		}
		reachable := "no"
		if res.Reachable {
			reachable = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.1f\t%d\n", alg, reachable, res.Hops(), res.Cost(), res.Expanded)
	}

	return tw.Flush()
}

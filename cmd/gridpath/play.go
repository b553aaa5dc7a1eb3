package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/tui"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play [file]",
		Short: "Edit a grid interactively and watch the search update",
		Long: `Open the grid in the terminal. Click a cell (or move the cursor and press
space) to toggle an obstacle; the search re-runs after every change.

Keys:
  arrows/hjkl  move cursor      s  move start to cursor
  space        toggle obstacle  g  move goal to cursor
  a            next algorithm   c  clear obstacles
  ?            help             q  quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := a.scenario(args)
			if err != nil {
				return err
			}

			return tui.Run(sc, a.logger, a.cfg.SearchOptions()...)
		},
	}
}

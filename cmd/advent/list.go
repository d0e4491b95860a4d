package advent

import (
	"github.com/husi/advent-of-tdd/pkg/display"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "puzzles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().Str("inputs", a.cfg.Inputs.Dir).Msg("Listing solvers")

			var days []display.DayInfo
			for _, solver := range puzzle.All() {
				path := a.inputPath(solver.Day())
				days = append(days, display.DayInfo{
					Day:      solver.Day(),
					Title:    solver.Title(),
					Input:    path,
					HasInput: a.loader.Exists(path),
				})
			}

			r, err := a.renderer()
			if err != nil {
				return err
			}
			return r.Days(cmd.OutOrStdout(), days)
		},
	}
}

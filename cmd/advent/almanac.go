package advent

import (
	"strconv"

	"github.com/husi/advent-of-tdd/pkg/almanac"
	"github.com/husi/advent-of-tdd/pkg/display"
	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/logging"
	"github.com/spf13/cobra"
)

func newAlmanacCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "almanac",
		Short:   MsgAlmanacShort,
		Long:    MsgAlmanacLong,
		Example: MsgAlmanacExample,
		GroupID: "puzzles",
	}

	cmd.AddCommand(newAlmanacLowestCmd(a))
	cmd.AddCommand(newAlmanacTraceCmd(a))
	cmd.AddCommand(newAlmanacCheckCmd(a))
	return cmd
}

// readAlmanac loads and parses the almanac at path
func (a *app) readAlmanac(path string) (*almanac.Almanac, error) {
	lines, err := a.loader.ReadLines(path)
	if err != nil {
		return nil, err
	}
	alm, err := almanac.Parse(lines)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrParse, "%s is not a valid almanac", path)
	}
	logger := logging.GetLogger("cmd.almanac")
	logger.Debug().
		Str("path", path).
		Int("seeds", len(alm.Seeds)).
		Int("stages", alm.Pipeline.Len()).
		Msg("Parsed almanac")
	return alm, nil
}

func newAlmanacLowestCmd(a *app) *cobra.Command {
	var ranges bool

	cmd := &cobra.Command{
		Use:   "lowest <file>",
		Short: MsgAlmanacLowestShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alm, err := a.readAlmanac(args[0])
			if err != nil {
				return err
			}

			var lowest int64
			if ranges {
				seeds, perr := almanac.PairRanges(alm.Seeds)
				if perr != nil {
					return perr
				}
				lowest, err = almanac.LowestRange(alm.Pipeline, seeds)
			} else {
				lowest, err = almanac.LowestPoint(alm.Pipeline, alm.Seeds)
			}
			if err != nil {
				return err
			}

			r, err := a.renderer()
			if err != nil {
				return err
			}
			return r.Value(cmd.OutOrStdout(), MsgLowestLabel, lowest)
		},
	}

	cmd.Flags().BoolVarP(&ranges, "ranges", "r", false, MsgFlagRanges)
	return cmd
}

func newAlmanacTraceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <file> <seed>",
		Short: MsgAlmanacTraceShort,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil || seed < 0 {
				return errors.Newf(errors.ErrInvalidInput, MsgErrSeedArg, args[1]).WithDetail("seed", args[1])
			}
			alm, err := a.readAlmanac(args[0])
			if err != nil {
				return err
			}

			r, err := a.renderer()
			if err != nil {
				return err
			}
			return r.Trace(cmd.OutOrStdout(), alm.Pipeline.Trace(seed))
		},
	}
}

func newAlmanacCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: MsgAlmanacCheckShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alm, err := a.readAlmanac(args[0])
			if err != nil {
				return err
			}

			var checks []display.StageCheck
			for _, stage := range alm.Pipeline.Stages() {
				check := display.StageCheck{Name: stage.Name, Rules: len(stage.Rules())}
				for _, pair := range stage.Overlaps() {
					check.Overlaps = append(check.Overlaps, [2]almanac.Range{pair[0].Domain(), pair[1].Domain()})
				}
				checks = append(checks, check)
			}

			r, err := a.renderer()
			if err != nil {
				return err
			}
			return r.Checks(cmd.OutOrStdout(), checks)
		},
	}
}

package advent

import (
	"strconv"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/input"
	"github.com/husi/advent-of-tdd/pkg/logging"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
	"github.com/spf13/cobra"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		part int
		all  bool
	)

	cmd := &cobra.Command{
		Use:     "solve <day> [input-file]",
		Short:   MsgSolveShort,
		Long:    MsgSolveLong,
		Example: MsgSolveExample,
		GroupID: "puzzles",
		Args:    cobra.MaximumNArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			var days []string
			for _, d := range puzzle.Days() {
				days = append(days, strconv.Itoa(d))
			}
			return days, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, err := selectParts(part)
			if err != nil {
				return err
			}

			var results []puzzle.Result
			switch {
			case all && len(args) > 0:
				return errors.New(errors.ErrInvalidInput, MsgErrAllWithArgs)
			case all:
				results, err = a.solveAll(parts)
			case len(args) == 0:
				return errors.New(errors.ErrInvalidInput, MsgErrSolveArgs)
			default:
				results, err = a.solveDay(args, parts)
			}
			if err != nil {
				return err
			}

			r, err := a.renderer()
			if err != nil {
				return err
			}
			if err := r.Results(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			return firstError(results)
		},
	}

	cmd.Flags().IntVarP(&part, "part", "p", 0, MsgFlagPart)
	cmd.Flags().BoolVarP(&all, "all", "a", false, MsgFlagAll)

	return cmd
}

func selectParts(part int) ([]puzzle.Part, error) {
	if part == 0 {
		return puzzle.Parts, nil
	}
	p, err := puzzle.ParsePart(strconv.Itoa(part))
	if err != nil {
		return nil, err
	}
	return []puzzle.Part{p}, nil
}

func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(arg)
	if err != nil || day < 1 || day > 25 {
		return 0, errors.Newf(errors.ErrInvalidInput, MsgErrDayArg, arg).WithDetail("day", arg)
	}
	return day, nil
}

// inputPath is the configured input file of day
func (a *app) inputPath(day int) string {
	return input.PathFor(a.cfg.Inputs.Dir, a.cfg.Inputs.Pattern, day)
}

func (a *app) solveDay(args []string, parts []puzzle.Part) ([]puzzle.Result, error) {
	day, err := parseDay(args[0])
	if err != nil {
		return nil, err
	}
	solver, err := puzzle.Get(day)
	if err != nil {
		return nil, err
	}

	path := a.inputPath(day)
	if len(args) > 1 {
		path = args[1]
	}
	return a.run(solver, path, parts)
}

func (a *app) solveAll(parts []puzzle.Part) ([]puzzle.Result, error) {
	logger := logging.GetLogger("cmd.solve")

	var results []puzzle.Result
	for _, day := range puzzle.Days() {
		path := a.inputPath(day)
		if !a.loader.Exists(path) {
			logger.Info().Msgf(MsgSkippedMissing, day, path)
			continue
		}
		solver, err := puzzle.Get(day)
		if err != nil {
			return nil, err
		}
		dayResults, err := a.run(solver, path, parts)
		if err != nil {
			return nil, err
		}
		results = append(results, dayResults...)
	}
	if len(results) == 0 {
		return nil, errors.New(errors.ErrNotFound, MsgNoInputsAvailable).
			WithDetail("dir", a.cfg.Inputs.Dir)
	}
	return results, nil
}

func (a *app) run(solver puzzle.Solver, path string, parts []puzzle.Part) ([]puzzle.Result, error) {
	done := logging.LogOperationStart(logging.GetLogger("cmd.solve"), "solve "+path)
	defer done()

	lines, err := a.loader.ReadLines(path)
	if err != nil {
		return nil, err
	}
	in := puzzle.Input{Lines: lines, Params: a.cfg.Params(solver.Day())}
	if len(parts) == len(puzzle.Parts) {
		return puzzle.RunAll(solver, in), nil
	}

	results := make([]puzzle.Result, 0, len(parts))
	for _, part := range parts {
		results = append(results, puzzle.Run(solver, part, in))
	}
	return results, nil
}

func firstError(results []puzzle.Result) error {
	for _, r := range results {
		if r.Err != nil {
			return errors.Wrapf(r.Err, errors.GetErrorCode(r.Err), "%s failed", r.Label())
		}
	}
	return nil
}

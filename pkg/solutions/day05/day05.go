// Package day05 finds the lowest location reachable from the almanac seeds.
package day05

import (
	"github.com/husi/advent-of-tdd/pkg/almanac"
	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/logging"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
)

func init() {
	puzzle.MustRegister(Solver{})
}

// Solver for day 5. Part one treats every seed as a single point, part two
// reads the seeds as (start, length) pairs.
type Solver struct{}

func (Solver) Day() int      { return 5 }
func (Solver) Title() string { return "If You Give A Seed A Fertilizer" }

func (Solver) Solve(part puzzle.Part, in puzzle.Input) (int64, error) {
	logger := logging.GetLogger("day05")

	a, err := almanac.Parse(in.Lines)
	if err != nil {
		return 0, err
	}
	logger.Debug().
		Int("seeds", len(a.Seeds)).
		Int("stages", a.Pipeline.Len()).
		Msg("Parsed almanac")

	if part == puzzle.PartOne {
		return almanac.LowestPoint(a.Pipeline, a.Seeds)
	}

	seeds, err := almanac.PairRanges(a.Seeds)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrParse, "seeds must come in start/length pairs")
	}
	return almanac.LowestRange(a.Pipeline, seeds)
}

// Package day09 extrapolates OASIS sensor histories.
package day09

import (
	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/input"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
)

func init() {
	puzzle.MustRegister(Solver{})
}

// Differences returns the pairwise differences of seq, one shorter
func Differences(seq []int64) []int64 {
	if len(seq) < 2 {
		return nil
	}
	out := make([]int64, len(seq)-1)
	for i := range out {
		out[i] = seq[i+1] - seq[i]
	}
	return out
}

func allZero(seq []int64) bool {
	for _, v := range seq {
		if v != 0 {
			return false
		}
	}
	return true
}

// Next predicts the value following seq
func Next(seq []int64) int64 {
	if len(seq) == 0 || allZero(seq) {
		return 0
	}
	return seq[len(seq)-1] + Next(Differences(seq))
}

// Previous predicts the value preceding seq
func Previous(seq []int64) int64 {
	if len(seq) == 0 || allZero(seq) {
		return 0
	}
	return seq[0] - Previous(Differences(seq))
}

// Solver for day 9
type Solver struct{}

func (Solver) Day() int      { return 9 }
func (Solver) Title() string { return "Mirage Maintenance" }

func (Solver) Solve(part puzzle.Part, in puzzle.Input) (int64, error) {
	predict := Next
	if part == puzzle.PartTwo {
		predict = Previous
	}

	var total int64
	for i, line := range in.Lines {
		if line == "" {
			continue
		}
		seq, err := input.Ints(line)
		if err != nil {
			return 0, errors.Wrapf(err, errors.ErrParse, "line %d", i+1)
		}
		total += predict(seq)
	}
	return total, nil
}

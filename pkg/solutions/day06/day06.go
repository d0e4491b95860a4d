// Package day06 counts the ways to win toy boat races.
package day06

import (
	"math"
	"strconv"
	"strings"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/input"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
)

func init() {
	puzzle.MustRegister(Solver{})
}

// Race lasts Time milliseconds and the record is Distance millimetres
type Race struct {
	Time, Distance int64
}

// Ways counts the hold times h in [0, Time] with h*(Time-h) > Distance.
// The quadratic roots give a first guess that is then corrected on integers.
func (r Race) Ways() int64 {
	t, d := r.Time, r.Distance
	disc := float64(t)*float64(t) - 4*float64(d)
	if disc < 0 {
		return 0
	}

	wins := func(h int64) bool { return h*(t-h) > d }

	lo := int64(math.Floor((float64(t) - math.Sqrt(disc)) / 2))
	lo = max(lo, 0)
	for lo > 0 && wins(lo-1) {
		lo--
	}
	for lo <= t/2 && !wins(lo) {
		lo++
	}
	if lo > t/2 {
		return 0
	}
	hi := t - lo
	return hi - lo + 1
}

// ParseRaces reads the "Time:" and "Distance:" lines as columns of races
func ParseRaces(lines []string) ([]Race, error) {
	times, distances, err := fields(lines)
	if err != nil {
		return nil, err
	}
	t, err := input.Ints(strings.Join(times, " "))
	if err != nil {
		return nil, err
	}
	d, err := input.Ints(strings.Join(distances, " "))
	if err != nil {
		return nil, err
	}
	if len(t) != len(d) {
		return nil, errors.Newf(errors.ErrParse, "%d times but %d distances", len(t), len(d)).
			WithDetail("times", len(t)).
			WithDetail("distances", len(d))
	}

	races := make([]Race, len(t))
	for i := range t {
		races[i] = Race{Time: t[i], Distance: d[i]}
	}
	return races, nil
}

// ParseRace reads the two lines as a single race, ignoring the spaces
// between digits
func ParseRace(lines []string) (Race, error) {
	times, distances, err := fields(lines)
	if err != nil {
		return Race{}, err
	}
	t, err := strconv.ParseInt(strings.Join(times, ""), 10, 64)
	if err != nil {
		return Race{}, errors.Wrap(err, errors.ErrParse, "invalid race time")
	}
	d, err := strconv.ParseInt(strings.Join(distances, ""), 10, 64)
	if err != nil {
		return Race{}, errors.Wrap(err, errors.ErrParse, "invalid race distance")
	}
	return Race{Time: t, Distance: d}, nil
}

func fields(lines []string) (times, distances []string, err error) {
	lines = input.NonEmpty(lines)
	if len(lines) != 2 {
		return nil, nil, errors.Newf(errors.ErrParse, "expected 2 lines, got %d", len(lines))
	}
	t, ok := strings.CutPrefix(lines[0], "Time:")
	if !ok {
		return nil, nil, errors.Newf(errors.ErrParse, "expected \"Time:\", got %q", lines[0])
	}
	d, ok := strings.CutPrefix(lines[1], "Distance:")
	if !ok {
		return nil, nil, errors.Newf(errors.ErrParse, "expected \"Distance:\", got %q", lines[1])
	}
	return strings.Fields(t), strings.Fields(d), nil
}

// Solver for day 6
type Solver struct{}

func (Solver) Day() int      { return 6 }
func (Solver) Title() string { return "Wait For It" }

func (Solver) Solve(part puzzle.Part, in puzzle.Input) (int64, error) {
	if part == puzzle.PartTwo {
		race, err := ParseRace(in.Lines)
		if err != nil {
			return 0, err
		}
		return race.Ways(), nil
	}

	races, err := ParseRaces(in.Lines)
	if err != nil {
		return 0, err
	}
	product := int64(1)
	for _, r := range races {
		product *= r.Ways()
	}
	return product, nil
}

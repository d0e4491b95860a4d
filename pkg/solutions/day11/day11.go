// Package day11 measures distances between galaxies in an expanding universe.
package day11

import (
	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/input"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
)

func init() {
	puzzle.MustRegister(Solver{})
}

// DefaultExpansion is the part two growth factor of empty rows and columns
const DefaultExpansion = 1_000_000

// Galaxy position in the observed image
type Galaxy struct{ X, Y int64 }

// Parse finds every '#' in the image
func Parse(lines []string) ([]Galaxy, error) {
	lines = input.NonEmpty(lines)
	var galaxies []Galaxy
	for y, row := range lines {
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '#':
				galaxies = append(galaxies, Galaxy{int64(x), int64(y)})
			case '.':
			default:
				return nil, errors.Newf(errors.ErrParse, "unexpected %q at %d,%d", row[x], x, y)
			}
		}
	}
	return galaxies, nil
}

// Expand replaces every empty row and column with factor of them
func Expand(galaxies []Galaxy, factor int64) []Galaxy {
	xs := shifts(galaxies, factor, func(g Galaxy) int64 { return g.X })
	ys := shifts(galaxies, factor, func(g Galaxy) int64 { return g.Y })

	out := make([]Galaxy, len(galaxies))
	for i, g := range galaxies {
		out[i] = Galaxy{g.X + xs[g.X], g.Y + ys[g.Y]}
	}
	return out
}

// shifts maps each occupied coordinate to how far it moves
func shifts(galaxies []Galaxy, factor int64, coord func(Galaxy) int64) map[int64]int64 {
	occupied := make(map[int64]bool)
	var hi int64
	for _, g := range galaxies {
		c := coord(g)
		occupied[c] = true
		hi = max(hi, c)
	}

	out := make(map[int64]int64, len(occupied))
	var empty int64
	for c := int64(0); c <= hi; c++ {
		if !occupied[c] {
			empty++
			continue
		}
		out[c] = empty * (factor - 1)
	}
	return out
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// SumDistances adds the Manhattan distance of every unordered pair
func SumDistances(galaxies []Galaxy) int64 {
	var total int64
	for i := range galaxies {
		for j := i + 1; j < len(galaxies); j++ {
			total += abs(galaxies[i].X-galaxies[j].X) + abs(galaxies[i].Y-galaxies[j].Y)
		}
	}
	return total
}

// Solver for day 11. The part two factor is the "expansion" parameter.
type Solver struct{}

func (Solver) Day() int      { return 11 }
func (Solver) Title() string { return "Cosmic Expansion" }

func (Solver) Solve(part puzzle.Part, in puzzle.Input) (int64, error) {
	galaxies, err := Parse(in.Lines)
	if err != nil {
		return 0, err
	}

	factor := int64(2)
	if part == puzzle.PartTwo {
		factor = in.Params.Int("expansion", DefaultExpansion)
	}
	if factor < 1 {
		return 0, errors.Newf(errors.ErrInvalidInput, "expansion must be at least 1, got %d", factor).
			WithDetail("expansion", factor)
	}
	return SumDistances(Expand(galaxies, factor)), nil
}

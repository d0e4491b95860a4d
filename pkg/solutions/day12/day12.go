// Package day12 counts the arrangements of damaged hot springs.
package day12

import (
	"strings"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/input"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
)

func init() {
	puzzle.MustRegister(Solver{})
}

const (
	operational = '.'
	damaged     = '#'
	unknown     = '?'
)

// Record is one row of the condition report
type Record struct {
	Springs string
	Groups  []int
}

// ParseRecord parses "???.### 1,1,3"
func ParseRecord(line string) (Record, error) {
	springs, groups, ok := strings.Cut(line, " ")
	if !ok {
		return Record{}, errors.Newf(errors.ErrParse, "expected \"<springs> <groups>\", got %q", line)
	}
	if strings.Trim(springs, ".#?") != "" {
		return Record{}, errors.Newf(errors.ErrParse, "invalid spring in %q", springs)
	}
	g, err := input.Separated(strings.TrimSpace(groups), ",")
	if err != nil {
		return Record{}, err
	}
	for _, n := range g {
		if n <= 0 {
			return Record{}, errors.Newf(errors.ErrParse, "group sizes must be positive, got %d", n)
		}
	}
	return Record{Springs: springs, Groups: g}, nil
}

// Unfold repeats the record n times, joining the springs with '?'
func (r Record) Unfold(n int) Record {
	springs := make([]string, n)
	groups := make([]int, 0, n*len(r.Groups))
	for i := range springs {
		springs[i] = r.Springs
		groups = append(groups, r.Groups...)
	}
	return Record{Springs: strings.Join(springs, string(unknown)), Groups: groups}
}

// Arrangements counts the ways to fill in the unknown springs so that the
// damaged runs match Groups
func (r Record) Arrangements() int64 {
	memo := make(map[[2]int]int64)

	var count func(i, g int) int64
	count = func(i, g int) int64 {
		if g == len(r.Groups) {
			if strings.IndexByte(r.Springs[min(i, len(r.Springs)):], damaged) >= 0 {
				return 0
			}
			return 1
		}
		if i >= len(r.Springs) {
			return 0
		}

		key := [2]int{i, g}
		if v, ok := memo[key]; ok {
			return v
		}

		var total int64
		c := r.Springs[i]
		if c != damaged {
			total += count(i+1, g)
		}
		if c != operational && fits(r.Springs, i, r.Groups[g]) {
			total += count(i+r.Groups[g]+1, g+1)
		}

		memo[key] = total
		return total
	}

	return count(0, 0)
}

// fits reports whether a damaged run of size n can start at i
func fits(springs string, i, n int) bool {
	end := i + n
	if end > len(springs) {
		return false
	}
	if strings.IndexByte(springs[i:end], operational) >= 0 {
		return false
	}
	return end == len(springs) || springs[end] != damaged
}

// Solver for day 12
type Solver struct{}

func (Solver) Day() int      { return 12 }
func (Solver) Title() string { return "Hot Springs" }

func (Solver) Solve(part puzzle.Part, in puzzle.Input) (int64, error) {
	var total int64
	for i, line := range in.Lines {
		if line == "" {
			continue
		}
		r, err := ParseRecord(line)
		if err != nil {
			return 0, errors.Wrapf(err, errors.ErrParse, "line %d", i+1)
		}
		if part == puzzle.PartTwo {
			r = r.Unfold(5)
		}
		total += r.Arrangements()
	}
	return total, nil
}

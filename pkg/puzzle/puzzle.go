// Package puzzle defines the contract every daily solver implements and the
// global table solvers register themselves into.
package puzzle

import (
	"fmt"
	"strconv"
	"time"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/logging"
	"github.com/husi/advent-of-tdd/pkg/registry"
)

// Part selects which half of a daily puzzle to solve
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

// Parts lists both parts in order
var Parts = []Part{PartOne, PartTwo}

func (p Part) String() string {
	return "part " + strconv.Itoa(int(p))
}

// ParsePart converts "1" or "2" to a Part
func ParsePart(s string) (Part, error) {
	switch s {
	case "1":
		return PartOne, nil
	case "2":
		return PartTwo, nil
	}
	return 0, errors.Newf(errors.ErrInvalidInput, "part must be 1 or 2, got %q", s).
		WithDetail("part", s)
}

// Params carries per-day tunables from the configuration
type Params map[string]int64

// Int returns the value stored under key, or fallback when absent
func (p Params) Int(key string, fallback int64) int64 {
	if v, ok := p[key]; ok {
		return v
	}
	return fallback
}

// Input is what a solver receives
type Input struct {
	Lines  []string
	Params Params
}

// Solver solves both parts of one day
type Solver interface {
	Day() int
	Title() string
	Solve(part Part, in Input) (int64, error)
}

var solvers = registry.New[int, Solver]()

// Register adds a solver to the global table
func Register(s Solver) error {
	return solvers.Register(s.Day(), s)
}

// MustRegister is Register for init functions
func MustRegister(s Solver) {
	registry.MustRegister(solvers, s.Day(), s)
}

// Get returns the solver for day
func Get(day int) (Solver, error) {
	s, err := solvers.Get(day)
	if err != nil {
		return nil, errors.Newf(errors.ErrNotFound, "no solver registered for day %d", day).
			WithDetail("day", day)
	}
	return s, nil
}

// All returns the registered solvers ordered by day
func All() []Solver {
	return solvers.Values()
}

// Days lists the registered days in ascending order
func Days() []int {
	return solvers.Keys()
}

// Result is the outcome of one Run
type Result struct {
	Day      int           `json:"day"`
	Title    string        `json:"title"`
	Part     Part          `json:"part"`
	Answer   int64         `json:"answer"`
	Duration time.Duration `json:"duration_ns"`
	Err      error         `json:"-"`
}

// Label is a short "day 05 part 1" description
func (r Result) Label() string {
	return fmt.Sprintf("day %02d %s", r.Day, r.Part)
}

// Run solves one part, recording timing. Panics raised by the solver are
// reported as INTERNAL errors.
func Run(s Solver, part Part, in Input) (res Result) {
	logger := logging.GetLogger("puzzle")
	res = Result{Day: s.Day(), Title: s.Title(), Part: part}

	start := time.Now()
	defer func() {
		res.Duration = time.Since(start)
		if r := recover(); r != nil {
			res.Err = errors.Newf(errors.ErrInternal, "solver panicked: %v", r).
				WithDetail("day", s.Day())
		}
		event := logger.Debug()
		if res.Err != nil {
			event = logger.Error().Err(res.Err)
		}
		event.
			Int("day", res.Day).
			Int("part", int(part)).
			Int64("answer", res.Answer).
			Dur("duration", res.Duration).
			Msg("Solved")
	}()

	res.Answer, res.Err = s.Solve(part, in)
	return res
}

// RunAll solves both parts in order
func RunAll(s Solver, in Input) []Result {
	results := make([]Result, 0, len(Parts))
	for _, part := range Parts {
		results = append(results, Run(s, part, in))
	}
	return results
}

// Package day01 recovers calibration values from lines of text.
package day01

import (
	"strings"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
)

func init() {
	puzzle.MustRegister(Solver{})
}

var spelled = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// Extractor finds the digit starting at position i of line
type Extractor func(line string, i int) (int, bool)

// Digits recognises only the characters 0-9
func Digits(line string, i int) (int, bool) {
	c := line[i]
	if c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	return 0, false
}

// Words also recognises digits spelled out in English. Words may share letters,
// so "eightwo" holds both 8 and 2.
func Words(line string, i int) (int, bool) {
	if d, ok := Digits(line, i); ok {
		return d, true
	}
	for n, word := range spelled {
		if strings.HasPrefix(line[i:], word) {
			return n + 1, true
		}
	}
	return 0, false
}

// Calibration combines the first and last digit of line into a two digit number
func Calibration(line string, extract Extractor) (int, error) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		if d, ok := extract(line, i); ok {
			first = d
			break
		}
	}
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := extract(line, i); ok {
			last = d
			break
		}
	}
	if first < 0 {
		return 0, errors.Newf(errors.ErrParse, "no digit in %q", line)
	}
	return 10*first + last, nil
}

// Solver for day 1
type Solver struct{}

func (Solver) Day() int      { return 1 }
func (Solver) Title() string { return "Trebuchet?!" }

func (Solver) Solve(part puzzle.Part, in puzzle.Input) (int64, error) {
	extract := Extractor(Digits)
	if part == puzzle.PartTwo {
		extract = Words
	}

	var total int64
	for i, line := range in.Lines {
		if line == "" {
			continue
		}
		v, err := Calibration(line, extract)
		if err != nil {
			return 0, errors.Wrapf(err, errors.ErrParse, "line %d", i+1)
		}
		total += int64(v)
	}
	return total, nil
}

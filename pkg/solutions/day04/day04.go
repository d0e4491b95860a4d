// Package day04 scores scratchcards.
package day04

import (
	"strings"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/input"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
)

func init() {
	puzzle.MustRegister(Solver{})
}

// Card is one scratchcard
type Card struct {
	Winning []int64
	Have    []int64
}

// Matches counts the numbers you have that are also winning
func (c Card) Matches() int {
	winning := make(map[int64]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = struct{}{}
	}
	count := 0
	for _, n := range c.Have {
		if _, ok := winning[n]; ok {
			count++
		}
	}
	return count
}

// Points is 1 for the first match, doubled for each further one
func (c Card) Points() int64 {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

// ParseCard parses "Card 1: 41 48 | 83 86"
func ParseCard(line string) (Card, error) {
	_, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, errors.Newf(errors.ErrParse, "missing ':' in %q", line)
	}
	left, right, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, errors.Newf(errors.ErrParse, "missing '|' in %q", line)
	}
	winning, err := input.Ints(left)
	if err != nil {
		return Card{}, err
	}
	have, err := input.Ints(right)
	if err != nil {
		return Card{}, err
	}
	return Card{Winning: winning, Have: have}, nil
}

// Copies counts the cards held after every win hands out copies of the cards below it
func Copies(cards []Card) int64 {
	counts := make([]int64, len(cards))
	for i := range counts {
		counts[i] = 1
	}
	var total int64
	for i, c := range cards {
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			counts[j] += counts[i]
		}
		total += counts[i]
	}
	return total
}

// Solver for day 4
type Solver struct{}

func (Solver) Day() int      { return 4 }
func (Solver) Title() string { return "Scratchcards" }

func (Solver) Solve(part puzzle.Part, in puzzle.Input) (int64, error) {
	var cards []Card
	for i, line := range in.Lines {
		if line == "" {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return 0, errors.Wrapf(err, errors.ErrParse, "line %d", i+1)
		}
		cards = append(cards, c)
	}

	if part == puzzle.PartTwo {
		return Copies(cards), nil
	}
	var total int64
	for _, c := range cards {
		total += c.Points()
	}
	return total, nil
}

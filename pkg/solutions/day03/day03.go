// Package day03 reads part numbers off an engine schematic.
package day03

import (
	"github.com/husi/advent-of-tdd/pkg/puzzle"
)

func init() {
	puzzle.MustRegister(Solver{})
}

// Pos is a cell of the schematic
type Pos struct{ X, Y int }

// Number is a run of digits on one row
type Number struct {
	Pos    Pos
	Length int
	Value  int64
}

// Schematic holds the numbers and symbols of an engine schematic. Anything
// other than a digit or '.' is a symbol.
type Schematic struct {
	Numbers []Number
	Symbols map[Pos]byte
}

// Parse scans lines into a Schematic
func Parse(lines []string) Schematic {
	s := Schematic{Symbols: make(map[Pos]byte)}
	for y, line := range lines {
		for x := 0; x < len(line); {
			c := line[x]
			switch {
			case isDigit(c):
				start := x
				var value int64
				for x < len(line) && isDigit(line[x]) {
					value = value*10 + int64(line[x]-'0')
					x++
				}
				s.Numbers = append(s.Numbers, Number{Pos: Pos{start, y}, Length: x - start, Value: value})
				continue
			case c != '.':
				s.Symbols[Pos{x, y}] = c
			}
			x++
		}
	}
	return s
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Neighbours lists the cells bordering n, diagonals included
func (n Number) Neighbours() []Pos {
	out := make([]Pos, 0, 2*n.Length+6)
	for x := n.Pos.X - 1; x <= n.Pos.X+n.Length; x++ {
		out = append(out, Pos{x, n.Pos.Y - 1}, Pos{x, n.Pos.Y + 1})
	}
	out = append(out, Pos{n.Pos.X - 1, n.Pos.Y}, Pos{n.Pos.X + n.Length, n.Pos.Y})
	return out
}

// PartNumbers are the numbers adjacent to at least one symbol
func (s Schematic) PartNumbers() []Number {
	var parts []Number
	for _, n := range s.Numbers {
		for _, p := range n.Neighbours() {
			if _, ok := s.Symbols[p]; ok {
				parts = append(parts, n)
				break
			}
		}
	}
	return parts
}

// Gears maps every '*' to the numbers adjacent to it
func (s Schematic) Gears() map[Pos][]Number {
	gears := make(map[Pos][]Number)
	for _, n := range s.Numbers {
		for _, p := range n.Neighbours() {
			if s.Symbols[p] == '*' {
				gears[p] = append(gears[p], n)
			}
		}
	}
	return gears
}

// Solver for day 3
type Solver struct{}

func (Solver) Day() int      { return 3 }
func (Solver) Title() string { return "Gear Ratios" }

func (Solver) Solve(part puzzle.Part, in puzzle.Input) (int64, error) {
	s := Parse(in.Lines)

	var total int64
	if part == puzzle.PartOne {
		for _, n := range s.PartNumbers() {
			total += n.Value
		}
		return total, nil
	}

	for _, numbers := range s.Gears() {
		if len(numbers) == 2 {
			total += numbers[0].Value * numbers[1].Value
		}
	}
	return total, nil
}

// Package day10 traces the animal's pipe loop.
package day10

import (
	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/input"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
)

func init() {
	puzzle.MustRegister(Solver{})
}

// Dir is a compass direction bit
type Dir uint8

const (
	North Dir = 1 << iota
	East
	South
	West
)

var dirs = []Dir{North, East, South, West}

func (d Dir) delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	}
	return -1, 0
}

func (d Dir) opposite() Dir {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	}
	return East
}

var pipes = map[byte]Dir{
	'|': North | South,
	'-': East | West,
	'L': North | East,
	'J': North | West,
	'7': South | West,
	'F': South | East,
}

// Pos is a tile coordinate
type Pos struct{ X, Y int }

// Maze is the tile grid with the start tile resolved to the pipe under it
type Maze struct {
	grid   []string
	Start  Pos
	startC Dir
}

// Parse reads the grid and works out the shape of the pipe under S
func Parse(lines []string) (*Maze, error) {
	lines = input.NonEmpty(lines)
	m := &Maze{grid: lines, Start: Pos{-1, -1}}
	for y, row := range lines {
		for x := 0; x < len(row); x++ {
			if row[x] == 'S' {
				m.Start = Pos{x, y}
			}
		}
	}
	if m.Start.X < 0 {
		return nil, errors.New(errors.ErrParse, "maze has no start tile S")
	}

	for _, d := range dirs {
		dx, dy := d.delta()
		if pipes[m.at(Pos{m.Start.X + dx, m.Start.Y + dy})]&d.opposite() != 0 {
			m.startC |= d
		}
	}
	if bits(m.startC) != 2 {
		return nil, errors.Newf(errors.ErrUnsolvable, "start tile has %d connecting pipes, want 2", bits(m.startC)).
			WithDetail("x", m.Start.X).
			WithDetail("y", m.Start.Y)
	}
	return m, nil
}

func bits(d Dir) int {
	n := 0
	for _, b := range dirs {
		if d&b != 0 {
			n++
		}
	}
	return n
}

func (m *Maze) at(p Pos) byte {
	if p.Y < 0 || p.Y >= len(m.grid) || p.X < 0 || p.X >= len(m.grid[p.Y]) {
		return '.'
	}
	return m.grid[p.Y][p.X]
}

func (m *Maze) connections(p Pos) Dir {
	if p == m.Start {
		return m.startC
	}
	return pipes[m.at(p)]
}

// Loop walks the pipe from the start until it returns there
func (m *Maze) Loop() ([]Pos, error) {
	loop := []Pos{m.Start}
	pos := m.Start
	var came Dir
	for {
		conns := m.connections(pos)
		var next Dir
		for _, d := range dirs {
			if conns&d != 0 && d != came {
				next = d
				break
			}
		}
		if next == 0 {
			return nil, errors.Newf(errors.ErrUnsolvable, "pipe is broken at %d,%d", pos.X, pos.Y)
		}
		dx, dy := next.delta()
		pos = Pos{pos.X + dx, pos.Y + dy}
		came = next.opposite()
		if m.connections(pos)&came == 0 {
			return nil, errors.Newf(errors.ErrUnsolvable, "pipe is broken at %d,%d", pos.X, pos.Y)
		}
		if pos == m.Start {
			return loop, nil
		}
		loop = append(loop, pos)
	}
}

// Enclosed counts tiles inside the loop. Scanning each row left to right,
// crossing a loop tile with a northern connection flips inside/outside.
func (m *Maze) Enclosed(loop []Pos) int64 {
	onLoop := make(map[Pos]bool, len(loop))
	for _, p := range loop {
		onLoop[p] = true
	}

	var count int64
	for y, row := range m.grid {
		inside := false
		for x := 0; x < len(row); x++ {
			p := Pos{x, y}
			if onLoop[p] {
				if m.connections(p)&North != 0 {
					inside = !inside
				}
				continue
			}
			if inside {
				count++
			}
		}
	}
	return count
}

// Solver for day 10
type Solver struct{}

func (Solver) Day() int      { return 10 }
func (Solver) Title() string { return "Pipe Maze" }

func (Solver) Solve(part puzzle.Part, in puzzle.Input) (int64, error) {
	m, err := Parse(in.Lines)
	if err != nil {
		return 0, err
	}
	loop, err := m.Loop()
	if err != nil {
		return 0, err
	}
	if part == puzzle.PartTwo {
		return m.Enclosed(loop), nil
	}
	return int64(len(loop) / 2), nil
}

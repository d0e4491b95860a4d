// Package solutions links every daily solver into the puzzle registry.
package solutions

import (
	_ "github.com/husi/advent-of-tdd/pkg/solutions/day01"
	_ "github.com/husi/advent-of-tdd/pkg/solutions/day02"
	_ "github.com/husi/advent-of-tdd/pkg/solutions/day03"
	_ "github.com/husi/advent-of-tdd/pkg/solutions/day04"
	_ "github.com/husi/advent-of-tdd/pkg/solutions/day05"
	_ "github.com/husi/advent-of-tdd/pkg/solutions/day06"
	_ "github.com/husi/advent-of-tdd/pkg/solutions/day07"
	_ "github.com/husi/advent-of-tdd/pkg/solutions/day08"
	_ "github.com/husi/advent-of-tdd/pkg/solutions/day09"
	_ "github.com/husi/advent-of-tdd/pkg/solutions/day10"
	_ "github.com/husi/advent-of-tdd/pkg/solutions/day11"
	_ "github.com/husi/advent-of-tdd/pkg/solutions/day12"
)

package day06

import (
	"testing"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
	"github.com/husi/advent-of-tdd/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWays(t *testing.T) {
	tests := []struct {
		race Race
		want int64
	}{
		{Race{7, 9}, 4},
		{Race{15, 40}, 8},
		{Race{30, 200}, 9},
		{Race{71530, 940200}, 71503},
		{Race{4, 4}, 0},
		{Race{4, 3}, 1},
		{Race{1, 10}, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.race.Ways(), "%+v", tt.race)
	}
}

// Brute force agreement on small races
func TestWays_MatchesBruteForce(t *testing.T) {
	for time := int64(0); time <= 40; time++ {
		for dist := int64(0); dist <= 400; dist += 7 {
			var want int64
			for h := int64(0); h <= time; h++ {
				if h*(time-h) > dist {
					want++
				}
			}
			require.Equal(t, want, Race{time, dist}.Ways(), "time=%d dist=%d", time, dist)
		}
	}
}

func TestParseRaces(t *testing.T) {
	races, err := ParseRaces(testutil.ReadLines(t, "example.txt"))
	require.NoError(t, err)
	assert.Equal(t, []Race{{7, 9}, {15, 40}, {30, 200}}, races)

	race, err := ParseRace(testutil.ReadLines(t, "example.txt"))
	require.NoError(t, err)
	assert.Equal(t, Race{71530, 940200}, race)
}

func TestParseRaces_Errors(t *testing.T) {
	cases := [][]string{
		{"Time: 1 2"},
		{"Time: 1 2", "Distance: 3"},
		{"Duration: 1", "Distance: 3"},
		{"Time: 1", "Record: 3"},
	}
	for _, lines := range cases {
		_, err := ParseRaces(lines)
		assert.True(t, errors.IsErrorCode(err, errors.ErrParse), "%v", lines)
	}
}

func TestSolve(t *testing.T) {
	s := Solver{}
	in := testutil.Example(t, "example.txt")

	got, err := s.Solve(puzzle.PartOne, in)
	require.NoError(t, err)
	assert.Equal(t, int64(288), got)

	got, err = s.Solve(puzzle.PartTwo, in)
	require.NoError(t, err)
	assert.Equal(t, int64(71503), got)
}

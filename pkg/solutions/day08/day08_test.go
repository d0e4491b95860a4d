package day08

import (
	"testing"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
	"github.com/husi/advent-of-tdd/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	n, err := Parse(testutil.ReadLines(t, "example2.txt"))
	require.NoError(t, err)

	assert.Equal(t, "LLR", n.Instructions)
	assert.Equal(t, map[string][2]string{
		"AAA": {"BBB", "BBB"},
		"BBB": {"AAA", "ZZZ"},
		"ZZZ": {"ZZZ", "ZZZ"},
	}, n.Nodes)
}

func TestParse_Errors(t *testing.T) {
	cases := [][]string{
		{"LR"},
		{"LX", "", "AAA = (BBB, CCC)"},
		{"LR", "", "AAA (BBB, CCC)"},
		{"LR", "", "AAA = (BBB CCC)"},
	}
	for _, lines := range cases {
		_, err := Parse(lines)
		assert.True(t, errors.IsErrorCode(err, errors.ErrParse), "%v", lines)
	}
}

func TestSolve(t *testing.T) {
	tests := []struct {
		file string
		part puzzle.Part
		want int64
	}{
		{"example1.txt", puzzle.PartOne, 2},
		{"example2.txt", puzzle.PartOne, 6},
		{"example3.txt", puzzle.PartTwo, 6},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got, err := Solver{}.Solve(tt.part, testutil.Example(t, tt.file))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSteps_Unsolvable(t *testing.T) {
	n, err := Parse([]string{"L", "", "AAA = (BBB, BBB)", "BBB = (AAA, AAA)"})
	require.NoError(t, err)

	_, err = n.Steps("AAA", func(s string) bool { return s == "ZZZ" })
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsolvable))

	_, err = n.Steps("QQQ", func(s string) bool { return s == "ZZZ" })
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsolvable))
}

func TestLCM(t *testing.T) {
	assert.Equal(t, int64(6), lcm(2, 3))
	assert.Equal(t, int64(12), lcm(4, 6))
	assert.Equal(t, int64(7), lcm(1, 7))
}

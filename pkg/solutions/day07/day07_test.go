package day07

import (
	"testing"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
	"github.com/husi/advent-of-tdd/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		cards  string
		jokers bool
		want   Kind
	}{
		{"AAAAA", false, FiveOfAKind},
		{"AA8AA", false, FourOfAKind},
		{"23332", false, FullHouse},
		{"TTT98", false, ThreeOfAKind},
		{"23432", false, TwoPair},
		{"A23A4", false, OnePair},
		{"23456", false, HighCard},
		{"KTJJT", false, TwoPair},
		{"KTJJT", true, FourOfAKind},
		{"T55J5", true, FourOfAKind},
		{"QQQJA", true, FourOfAKind},
		{"2345J", true, OnePair},
		{"23J3J", true, FourOfAKind},
		{"2J3J2", true, FourOfAKind},
		{"2233J", true, FullHouse},
		{"JJJJJ", true, FiveOfAKind},
		{"JJJJ2", true, FiveOfAKind},
	}

	for _, tt := range tests {
		t.Run(tt.cards, func(t *testing.T) {
			h, err := ParseHand(tt.cards+" 1", tt.jokers)
			require.NoError(t, err)
			assert.Equal(t, tt.want, h.Kind, "got %s", h.Kind)
		})
	}
}

func TestCompare(t *testing.T) {
	parse := func(s string, jokers bool) Hand {
		h, err := ParseHand(s+" 0", jokers)
		require.NoError(t, err)
		return h
	}

	assert.Positive(t, Compare(parse("33332", false), parse("2AAAA", false)))
	assert.Positive(t, Compare(parse("77888", false), parse("77788", false)))
	assert.Negative(t, Compare(parse("JKKK2", true), parse("QQQQ2", true)))
	assert.Zero(t, Compare(parse("KK677", false), parse("KK677", false)))
}

func TestParseHand_Errors(t *testing.T) {
	for _, line := range []string{"32T3K", "32T3 765", "32T3X 765", "32T3K x"} {
		_, err := ParseHand(line, false)
		assert.True(t, errors.IsErrorCode(err, errors.ErrParse), line)
	}
}

func TestSolve(t *testing.T) {
	s := Solver{}
	in := testutil.Example(t, "example.txt")

	got, err := s.Solve(puzzle.PartOne, in)
	require.NoError(t, err)
	assert.Equal(t, int64(6440), got)

	got, err = s.Solve(puzzle.PartTwo, in)
	require.NoError(t, err)
	assert.Equal(t, int64(5905), got)
}

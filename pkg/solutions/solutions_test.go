package solutions

import (
	"testing"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllDaysRegistered(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, puzzle.Days())

	for _, day := range puzzle.Days() {
		s, err := puzzle.Get(day)
		require.NoError(t, err)
		assert.NotEmpty(t, s.Title(), "day %d", day)
	}
}

// Solvers must report errors instead of panicking on empty input
func TestEmptyInputDoesNotPanic(t *testing.T) {
	for _, day := range puzzle.Days() {
		s, err := puzzle.Get(day)
		require.NoError(t, err)
		for _, part := range puzzle.Parts {
			res := puzzle.Run(s, part, puzzle.Input{})
			assert.False(t, errors.IsErrorCode(res.Err, errors.ErrInternal), "day %d %s panicked: %v", day, part, res.Err)
		}
	}
}

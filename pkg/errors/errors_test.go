// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code inspection

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "parse_error",
			code:    errors.ErrParse,
			message: "bad rule",
			wantStr: "[PARSE] bad rule",
		},
		{
			name:    "no_data_error",
			code:    errors.ErrNoData,
			message: "no ranges",
			wantStr: "[NO_DATA] no ranges",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrNotFound, "day %d not registered", 13)
	assert.Equal(t, "[NOT_FOUND] day 13 not registered", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("nil_stays_nil", func(t *testing.T) {
		assert.NoError(t, errors.Wrap(nil, errors.ErrInputRead, "reading"))
		assert.NoError(t, errors.Wrapf(nil, errors.ErrInputRead, "reading %s", "x"))
	})

	t.Run("keeps_cause", func(t *testing.T) {
		cause := stderrors.New("disk on fire")
		err := errors.Wrapf(cause, errors.ErrInputRead, "reading %s", "day05.txt")

		require.Error(t, err)
		assert.Equal(t, "[INPUT_READ] reading day05.txt: disk on fire", err.Error())
		assert.ErrorIs(t, err, cause)
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrParse, "bad rule").
		WithDetail("line", 4).
		WithDetail("text", "1 2")

	details := errors.GetErrorDetails(err)
	assert.Equal(t, 4, details["line"])
	assert.Equal(t, "1 2", details["text"])
}

func TestIs(t *testing.T) {
	err := errors.New(errors.ErrNoData, "empty")

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrNoData, "other message")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrParse, "empty")))
	assert.False(t, stderrors.Is(err, stderrors.New("empty")))
}

func TestIsErrorCode(t *testing.T) {
	base := errors.New(errors.ErrUnsolvable, "no loop")
	wrapped := fmt.Errorf("day 10: %w", base)

	assert.True(t, errors.IsErrorCode(base, errors.ErrUnsolvable))
	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrUnsolvable))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrParse))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrUnsolvable))
	assert.False(t, errors.IsErrorCode(nil, errors.ErrUnsolvable))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrConfigValid, errors.GetErrorCode(errors.New(errors.ErrConfigValid, "bad")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestErrorChaining(t *testing.T) {
	root := errors.New(errors.ErrParse, "bad number")
	mid := errors.Wrap(root, errors.ErrInputRead, "loading almanac")

	// The outermost code wins, the inner one is still reachable
	assert.Equal(t, errors.ErrInputRead, errors.GetErrorCode(mid))
	assert.ErrorIs(t, mid, root)

	var inner *errors.AdventError
	require.True(t, stderrors.As(stderrors.Unwrap(mid), &inner))
	assert.Equal(t, errors.ErrParse, inner.Code)
}

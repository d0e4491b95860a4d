package input

import (
	"testing"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "inputs/day01.txt", []byte("1abc2\n  pqr3stu8vwx \n\ntreb7uchet\n"), 0644))

	lines, err := NewLoader(fs).ReadLines("inputs/day01.txt")
	require.NoError(t, err)

	assert.Equal(t, []string{"1abc2", "pqr3stu8vwx", "", "treb7uchet"}, lines)
}

func TestReadLines_WithoutTrailingNewline(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a.txt", []byte("a\nb"), 0644))

	lines, err := NewLoader(fs).ReadLines("a.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, lines)
}

func TestReadLines_Missing(t *testing.T) {
	_, err := NewLoader(afero.NewMemMapFs()).ReadLines("nope.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), "got %v", err)
}

func TestExists(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("inputs", 0755))
	require.NoError(t, afero.WriteFile(fs, "inputs/day05.txt", []byte("x"), 0644))
	loader := NewLoader(fs)

	assert.True(t, loader.Exists("inputs/day05.txt"))
	assert.False(t, loader.Exists("inputs"))
	assert.False(t, loader.Exists("inputs/day06.txt"))
}

func TestPathFor(t *testing.T) {
	assert.Equal(t, "inputs/day05.txt", PathFor("inputs", "day%02d.txt", 5))
	assert.Equal(t, "in/12.in", PathFor("in", "%d.in", 12))
}

func TestBlocks(t *testing.T) {
	lines := []string{"", "a", "b", "", "", "c", ""}
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, Blocks(lines))
	assert.Empty(t, Blocks(nil))
}

func TestNonEmpty(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, NonEmpty([]string{"", "a", "", "b"}))
}

func TestInts(t *testing.T) {
	values, err := Ints(" 0 3  -6 9 ")
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 3, -6, 9}, values)

	_, err = Ints("1 x")
	assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
}

func TestSeparated(t *testing.T) {
	values, err := Separated("1,1,3", ",")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 3}, values)

	_, err = Separated("1,,3", ",")
	assert.True(t, errors.IsErrorCode(err, errors.ErrParse))
}


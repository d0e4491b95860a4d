// Package input loads puzzle input files as trimmed lines.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/spf13/afero"
)

// Loader reads inputs from a filesystem
type Loader struct {
	Fs afero.Fs
}

// NewLoader creates a Loader over fs; a nil fs means the OS filesystem
func NewLoader(fs afero.Fs) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{Fs: fs}
}

// ReadLines reads path and returns its lines with surrounding whitespace removed
func (l *Loader) ReadLines(path string) ([]string, error) {
	f, err := l.Fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Newf(errors.ErrNotFound, "input %s does not exist", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrInputRead, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	lines, err := Lines(f)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputRead, "failed to read %s", path)
	}
	return lines, nil
}

// Exists reports whether path is a readable regular file
func (l *Loader) Exists(path string) bool {
	info, err := l.Fs.Stat(path)
	return err == nil && !info.IsDir()
}

// PathFor builds the input path of a day from a printf pattern such as "day%02d.txt"
func PathFor(dir, pattern string, day int) string {
	return filepath.Join(dir, fmt.Sprintf(pattern, day))
}

// Lines splits r into trimmed lines. A trailing newline does not produce an
// extra empty line.
func Lines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Blocks splits lines into groups separated by blank lines. Empty groups are skipped.
func Blocks(lines []string) [][]string {
	var (
		blocks  [][]string
		current []string
	)
	for _, line := range lines {
		if line == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// NonEmpty drops blank lines
func NonEmpty(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Ints parses whitespace separated integers
func Ints(field string) ([]int64, error) {
	parts := strings.Fields(field)
	values := make([]int64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, errors.Newf(errors.ErrParse, "%q is not an integer", part)
		}
		values = append(values, v)
	}
	return values, nil
}

// Separated parses integers split by sep, e.g. "1,1,3"
func Separated(field, sep string) ([]int, error) {
	parts := strings.Split(field, sep)
	values := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Newf(errors.ErrParse, "%q is not an integer", part)
		}
		values = append(values, v)
	}
	return values, nil
}

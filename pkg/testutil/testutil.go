package testutil

import (
	"path/filepath"
	"testing"

	"github.com/husi/advent-of-tdd/pkg/input"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
	"github.com/spf13/afero"
)

// ReadLines loads testdata/name from the calling package's directory.
// It fails the test if the file cannot be read.
func ReadLines(t *testing.T, name string) []string {
	t.Helper()

	lines, err := input.NewLoader(afero.NewOsFs()).ReadLines(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", name, err)
	}
	return lines
}

// Example builds a puzzle input from a fixture without parameters
func Example(t *testing.T, name string) puzzle.Input {
	t.Helper()
	return puzzle.Input{Lines: ReadLines(t, name)}
}

// ExampleWith builds a puzzle input from a fixture and the given parameters
func ExampleWith(t *testing.T, name string, params puzzle.Params) puzzle.Input {
	t.Helper()
	return puzzle.Input{Lines: ReadLines(t, name), Params: params}
}

// MemFS returns an in-memory filesystem holding files, keyed by path
func MemFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for path, content := range files {
		CreateFile(t, fs, path, content)
	}
	return fs
}

// CreateFile writes content to path on fs, creating parent directories.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, fs afero.Fs, path, content string) string {
	t.Helper()

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// ReadFile reads path from fs as a string.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

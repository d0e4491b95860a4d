package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
)

// Output formats
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	validFormats = []string{FormatText, FormatTable, FormatJSON}
	validColors  = []string{ColorAuto, ColorAlways, ColorNever}
)

// Config is the effective configuration
type Config struct {
	Inputs  Inputs                      `koanf:"inputs" toml:"inputs"`
	Output  Output                      `koanf:"output" toml:"output"`
	Puzzles map[string]map[string]int64 `koanf:"puzzles" toml:"puzzles"`
}

// Inputs locates puzzle input files
type Inputs struct {
	Dir     string `koanf:"dir" toml:"dir"`
	Pattern string `koanf:"pattern" toml:"pattern"`
}

// Output controls how results are rendered
type Output struct {
	Format string `koanf:"format" toml:"format"`
	Color  string `koanf:"color" toml:"color"`
}

// PuzzleKey is the key of a day in the puzzles table, e.g. "day05"
func PuzzleKey(day int) string {
	return fmt.Sprintf("day%02d", day)
}

// Params returns the tunables configured for day
func (c *Config) Params(day int) puzzle.Params {
	values := c.Puzzles[PuzzleKey(day)]
	params := make(puzzle.Params, len(values))
	for k, v := range values {
		params[k] = v
	}
	return params
}

// Validate checks values that cannot be expressed in the TOML types
func (c *Config) Validate() error {
	if !slices.Contains(validFormats, c.Output.Format) {
		return errors.Newf(errors.ErrConfigValid, "output.format must be one of %s, got %q",
			strings.Join(validFormats, ", "), c.Output.Format).
			WithDetail("key", "output.format")
	}
	if !slices.Contains(validColors, c.Output.Color) {
		return errors.Newf(errors.ErrConfigValid, "output.color must be one of %s, got %q",
			strings.Join(validColors, ", "), c.Output.Color).
			WithDetail("key", "output.color")
	}
	if strings.TrimSpace(c.Inputs.Pattern) == "" {
		return errors.New(errors.ErrConfigValid, "inputs.pattern cannot be empty").
			WithDetail("key", "inputs.pattern")
	}
	if !strings.Contains(c.Inputs.Pattern, "%") {
		return errors.Newf(errors.ErrConfigValid, "inputs.pattern %q has no day placeholder", c.Inputs.Pattern).
			WithDetail("key", "inputs.pattern")
	}
	return nil
}

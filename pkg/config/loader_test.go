package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config location at empty temp dirs
func isolate(t *testing.T) (configDir, workDir string) {
	t.Helper()

	configDir = t.TempDir()
	workDir = t.TempDir()
	t.Setenv(paths.EnvConfigDir, configDir)
	for _, key := range []string{
		"ADVENT_OUTPUT_FORMAT", "ADVENT_OUTPUT_COLOR",
		"ADVENT_INPUTS_DIR", "ADVENT_INPUTS_PATTERN",
		"ADVENT_PUZZLES_DAY11_EXPANSION",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return configDir, workDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	_, workDir := isolate(t)

	cfg, err := Load(Options{WorkDir: workDir})
	require.NoError(t, err)

	assert.Equal(t, "inputs", cfg.Inputs.Dir)
	assert.Equal(t, FormatText, cfg.Output.Format)
}

func TestLoad_Layers(t *testing.T) {
	configDir, workDir := isolate(t)

	writeFile(t, filepath.Join(configDir, "config.toml"), `
[inputs]
dir = "/home/elf/aoc"

[output]
format = "table"
`)
	writeFile(t, filepath.Join(workDir, "advent.toml"), `
[output]
format = "json"

[puzzles.day11]
expansion = 10
`)

	cfg, err := Load(Options{WorkDir: workDir})
	require.NoError(t, err)

	assert.Equal(t, "/home/elf/aoc", cfg.Inputs.Dir, "user file applies")
	assert.Equal(t, FormatJSON, cfg.Output.Format, "project file beats user file")
	assert.Equal(t, int64(10), cfg.Puzzles["day11"]["expansion"])
	assert.Equal(t, int64(12), cfg.Puzzles["day02"]["red"], "defaults survive")
}

func TestLoad_EnvAndOverrides(t *testing.T) {
	_, workDir := isolate(t)
	t.Setenv("ADVENT_OUTPUT_FORMAT", "table")
	t.Setenv("ADVENT_PUZZLES_DAY11_EXPANSION", "100")

	cfg, err := Load(Options{WorkDir: workDir})
	require.NoError(t, err)
	assert.Equal(t, FormatTable, cfg.Output.Format)
	assert.Equal(t, int64(100), cfg.Puzzles["day11"]["expansion"])

	cfg, err = Load(Options{WorkDir: workDir, Overrides: map[string]interface{}{"output.format": "json"}})
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, cfg.Output.Format, "overrides beat env")
}

func TestLoad_ExplicitFile(t *testing.T) {
	_, workDir := isolate(t)
	writeFile(t, filepath.Join(workDir, "advent.toml"), "[output]\nformat = \"json\"\n")
	explicit := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, explicit, "[output]\ncolor = \"never\"\n")

	cfg, err := Load(Options{WorkDir: workDir, ConfigFile: explicit})
	require.NoError(t, err)

	assert.Equal(t, ColorNever, cfg.Output.Color)
	assert.Equal(t, FormatText, cfg.Output.Format, "project file is skipped")
}

func TestLoad_PuzzleKeysNormalised(t *testing.T) {
	_, workDir := isolate(t)
	writeFile(t, filepath.Join(workDir, "advent.toml"), `
[puzzles.2]
red = 20

[puzzles.day9]
window = 3
`)

	cfg, err := Load(Options{WorkDir: workDir})
	require.NoError(t, err)

	assert.Equal(t, int64(20), cfg.Params(2)["red"])
	assert.Equal(t, int64(3), cfg.Params(9)["window"])
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing bool
		code    errors.ErrorCode
	}{
		{"missing explicit file", "", true, errors.ErrConfigLoad},
		{"malformed toml", "[output\nformat=", false, errors.ErrConfigParse},
		{"invalid value", "[output]\nformat = \"xml\"\n", false, errors.ErrConfigValid},
		{"wrong type", "[puzzles.day11]\nexpansion = \"lots\"\n", false, errors.ErrConfigParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, workDir := isolate(t)
			path := filepath.Join(workDir, "custom.toml")
			if !tt.missing {
				writeFile(t, path, tt.content)
			}

			_, err := Load(Options{WorkDir: workDir, ConfigFile: path})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "output.format", envKey("ADVENT_OUTPUT_FORMAT"))
	assert.Equal(t, "puzzles.day11.expansion", envKey("ADVENT_PUZZLES_DAY11_EXPANSION"))
	assert.Empty(t, envKey(paths.EnvConfigDir))
	assert.Empty(t, envKey(paths.EnvStateDir))
}

// Package paths resolves where advent keeps its files.
// It follows the XDG Base Directory layout, with ADVENT_* overrides.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for advent
	EnvConfigDir = "ADVENT_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for advent
	EnvStateDir = "ADVENT_STATE_DIR"
)

const (
	// AppDirName is the directory created under the XDG base directories
	AppDirName = "advent"

	// ConfigFileName is the user config file inside ConfigDir
	ConfigFileName = "config.toml"

	// ProjectConfigFile is looked up in the working directory
	ProjectConfigFile = "advent.toml"

	// LogFileName is the name of the log file
	LogFileName = "advent.log"
)

// Paths provides the locations advent reads from and writes to
type Paths interface {
	ConfigDir() string
	StateDir() string
	UserConfigPath() string
	ProjectConfigPath(workDir string) string
	LogFilePath() string
}

type paths struct {
	configDir string
	stateDir  string
}

// New resolves the directories from the environment. Lookups happen on every
// call so tests can change the environment between calls.
func New() Paths {
	return &paths{
		configDir: resolve(EnvConfigDir, "XDG_CONFIG_HOME", xdg.ConfigHome),
		stateDir:  resolve(EnvStateDir, "XDG_STATE_HOME", xdg.StateHome),
	}
}

// resolve prefers the app override, then the XDG variable, then the xdg default
func resolve(override, xdgVar, fallback string) string {
	if dir := os.Getenv(override); dir != "" {
		return dir
	}
	base := os.Getenv(xdgVar)
	if base == "" {
		base = fallback
	}
	if base == "" {
		return ""
	}
	return filepath.Join(base, AppDirName)
}

func (p *paths) ConfigDir() string { return p.configDir }

func (p *paths) StateDir() string { return p.stateDir }

// UserConfigPath is the per-user config file
func (p *paths) UserConfigPath() string {
	if p.configDir == "" {
		return ""
	}
	return filepath.Join(p.configDir, ConfigFileName)
}

// ProjectConfigPath is the config file in workDir
func (p *paths) ProjectConfigPath(workDir string) string {
	if workDir == "" {
		workDir = "."
	}
	return filepath.Join(workDir, ProjectConfigFile)
}

// LogFilePath falls back to the working directory when no state dir is known
func (p *paths) LogFilePath() string {
	if p.stateDir == "" {
		return LogFileName
	}
	return filepath.Join(p.stateDir, LogFileName)
}

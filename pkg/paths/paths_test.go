package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_XDGVariables(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	t.Setenv(EnvStateDir, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	p := New()
	assert.Equal(t, filepath.Join("/xdg/config", "advent"), p.ConfigDir())
	assert.Equal(t, filepath.Join("/xdg/config", "advent", "config.toml"), p.UserConfigPath())
	assert.Equal(t, filepath.Join("/xdg/state", "advent"), p.StateDir())
	assert.Equal(t, filepath.Join("/xdg/state", "advent", "advent.log"), p.LogFilePath())
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv(EnvConfigDir, "/custom/cfg")
	t.Setenv(EnvStateDir, "/custom/state")

	p := New()
	assert.Equal(t, "/custom/cfg", p.ConfigDir())
	assert.Equal(t, filepath.Join("/custom/cfg", "config.toml"), p.UserConfigPath())
	assert.Equal(t, filepath.Join("/custom/state", "advent.log"), p.LogFilePath())
}

func TestProjectConfigPath(t *testing.T) {
	p := New()
	assert.Equal(t, "advent.toml", p.ProjectConfigPath(""))
	assert.Equal(t, filepath.Join("/work", "advent.toml"), p.ProjectConfigPath("/work"))
}

// Package styles defines the visual styling for advent's terminal output.
//
// All styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. They are loaded from the embedded styles.yaml.
package styles

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	Align        string `yaml:"align,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var (
	mu       sync.RWMutex
	registry map[string]lipgloss.Style
)

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		initDefaultStyles()
	}
}

// initDefaultStyles registers unstyled entries so rendering never fails
func initDefaultStyles() {
	mu.Lock()
	defer mu.Unlock()

	registry = make(map[string]lipgloss.Style)
	for _, name := range []string{"Header", "Day", "Title", "Part", "Answer", "Duration", "Success", "Error", "Warning", "Muted", "Category", "Value"} {
		registry[name] = lipgloss.NewStyle()
	}
}

// LoadStylesFromData replaces the registry with the styles defined in data
func LoadStylesFromData(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	styles := make(map[string]lipgloss.Style, len(config.Styles))
	for name, def := range config.Styles {
		styles[name] = buildStyle(def, colors)
	}

	mu.Lock()
	registry = styles
	mu.Unlock()
	return nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	switch def.Align {
	case "center":
		style = style.Align(lipgloss.Center)
	case "right":
		style = style.Align(lipgloss.Right)
	}

	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}
	return style
}

// GetStyle safely retrieves a style from the registry
func GetStyle(name string) lipgloss.Style {
	mu.RLock()
	defer mu.RUnlock()

	if style, ok := registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Render applies the named style to text
func Render(name, text string) string {
	return GetStyle(name).Render(text)
}

package styles

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Color modes accepted by SetColorMode
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DetectColor reports whether out can show colors: it must be a terminal with
// a color profile and NO_COLOR must be unset
func DetectColor(out *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if out == nil || (!isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd())) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// SetColorMode switches lipgloss and pterm output between colored and plain.
// Unknown modes behave like auto. It returns whether colors are enabled.
func SetColorMode(mode string, out *os.File) bool {
	var enabled bool
	switch mode {
	case ColorAlways:
		enabled = true
	case ColorNever:
		enabled = false
	default:
		enabled = DetectColor(out)
	}

	if enabled {
		profile := termenv.ColorProfile()
		if profile == termenv.Ascii {
			profile = termenv.ANSI256
		}
		lipgloss.SetColorProfile(profile)
		pterm.EnableColor()
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableColor()
	}
	return enabled
}

// Package display renders command results as styled text, tables or JSON.
package display

import (
	"io"
	"time"

	"github.com/husi/advent-of-tdd/pkg/almanac"
	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
)

// Formats understood by New
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Renderer writes command results to w
type Renderer interface {
	// Results renders solved puzzle parts
	Results(w io.Writer, results []puzzle.Result) error

	// Days renders the registered solvers
	Days(w io.Writer, days []DayInfo) error

	// Trace renders the value of a seed after each almanac stage
	Trace(w io.Writer, steps []almanac.Step) error

	// Value renders a single labelled number
	Value(w io.Writer, label string, value int64) error

	// Checks renders the rule count and overlapping domains of each stage
	Checks(w io.Writer, checks []StageCheck) error
}

// StageCheck summarises one almanac stage. Overlaps holds the domains of
// every pair of rules that claim the same values.
type StageCheck struct {
	Name     string
	Rules    int
	Overlaps [][2]almanac.Range
}

// overlapCount is the number of overlapping pairs across checks
func overlapCount(checks []StageCheck) int {
	n := 0
	for _, c := range checks {
		n += len(c.Overlaps)
	}
	return n
}

// DayInfo describes a registered solver
type DayInfo struct {
	Day      int    `json:"day"`
	Title    string `json:"title"`
	Input    string `json:"input"`
	HasInput bool   `json:"has_input"`
}

// New returns the renderer for format
func New(format string) (Renderer, error) {
	switch format {
	case FormatText, "":
		return &TextRenderer{}, nil
	case FormatTable:
		return &TableRenderer{}, nil
	case FormatJSON:
		return &JSONRenderer{}, nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown output format %q", format).
		WithDetail("format", format)
}

// resultView is the serialisable shape of a puzzle.Result
type resultView struct {
	Day        int    `json:"day"`
	Title      string `json:"title"`
	Part       int    `json:"part"`
	Answer     int64  `json:"answer"`
	DurationMS int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
	Code       string `json:"code,omitempty"`
}

func viewOf(r puzzle.Result) resultView {
	v := resultView{
		Day:        r.Day,
		Title:      r.Title,
		Part:       int(r.Part),
		Answer:     r.Answer,
		DurationMS: r.Duration.Milliseconds(),
	}
	if r.Err != nil {
		v.Error = r.Err.Error()
		v.Code = string(errors.GetErrorCode(r.Err))
	}
	return v
}

// roundDuration trims durations for human output
func roundDuration(d time.Duration) time.Duration {
	switch {
	case d >= time.Second:
		return d.Round(10 * time.Millisecond)
	case d >= time.Millisecond:
		return d.Round(10 * time.Microsecond)
	}
	return d.Round(time.Microsecond)
}

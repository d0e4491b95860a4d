package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/husi/advent-of-tdd/pkg/almanac"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
	"github.com/husi/advent-of-tdd/pkg/ui/styles"
)

// TextRenderer writes one styled line per item
type TextRenderer struct{}

func (r *TextRenderer) Results(w io.Writer, results []puzzle.Result) error {
	lastDay := 0
	for _, res := range results {
		if res.Day != lastDay {
			header := fmt.Sprintf("%s %s", styles.Render("Day", fmt.Sprintf("Day %02d", res.Day)), styles.Render("Title", res.Title))
			if _, err := fmt.Fprintln(w, header); err != nil {
				return err
			}
			lastDay = res.Day
		}
		if _, err := fmt.Fprintln(w, "  "+resultLine(res)); err != nil {
			return err
		}
	}
	return nil
}

func resultLine(res puzzle.Result) string {
	part := styles.Render("Part", fmt.Sprintf("Part %d:", res.Part))
	if res.Err != nil {
		return fmt.Sprintf("%s %s", part, styles.Render("Error", res.Err.Error()))
	}
	return fmt.Sprintf("%s %s %s",
		part,
		styles.Render("Answer", fmt.Sprint(res.Answer)),
		styles.Render("Duration", "("+roundDuration(res.Duration).String()+")"))
}

func (r *TextRenderer) Days(w io.Writer, days []DayInfo) error {
	for _, d := range days {
		marker := styles.Render("Success", "✓")
		if !d.HasInput {
			marker = styles.Render("Muted", "·")
		}
		line := fmt.Sprintf("%s %s %s", marker, styles.Render("Day", fmt.Sprintf("%02d", d.Day)), d.Title)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextRenderer) Trace(w io.Writer, steps []almanac.Step) error {
	parts := make([]string, 0, len(steps))
	for _, s := range steps {
		parts = append(parts, fmt.Sprintf("%s %s", styles.Render("Muted", s.Category), styles.Render("Value", fmt.Sprint(s.Value))))
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, " → "))
	return err
}

func (r *TextRenderer) Value(w io.Writer, label string, value int64) error {
	_, err := fmt.Fprintf(w, "%s %s\n", styles.Render("Muted", label+":"), styles.Render("Answer", fmt.Sprint(value)))
	return err
}

func (r *TextRenderer) Checks(w io.Writer, checks []StageCheck) error {
	for _, c := range checks {
		if _, err := fmt.Fprintf(w, "%s: %d rules\n", styles.Render("Day", c.Name), c.Rules); err != nil {
			return err
		}
		for _, pair := range c.Overlaps {
			warning := fmt.Sprintf("%s: rules %s and %s overlap", c.Name, pair[0], pair[1])
			if _, err := fmt.Fprintln(w, styles.Render("Warning", warning)); err != nil {
				return err
			}
		}
	}
	if overlapCount(checks) == 0 {
		_, err := fmt.Fprintln(w, styles.Render("Success", "No overlapping rules."))
		return err
	}
	return nil
}

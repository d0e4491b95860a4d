package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/husi/advent-of-tdd/pkg/almanac"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
	"github.com/pterm/pterm"
)

// TableRenderer draws pterm tables
type TableRenderer struct{}

func writeTable(w io.Writer, data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func (r *TableRenderer) Results(w io.Writer, results []puzzle.Result) error {
	data := pterm.TableData{{"Day", "Title", "Part", "Answer", "Time"}}
	for _, res := range results {
		answer := fmt.Sprint(res.Answer)
		if res.Err != nil {
			answer = "error: " + res.Err.Error()
		}
		data = append(data, []string{
			fmt.Sprintf("%02d", res.Day),
			res.Title,
			fmt.Sprint(int(res.Part)),
			answer,
			roundDuration(res.Duration).String(),
		})
	}
	return writeTable(w, data)
}

func (r *TableRenderer) Days(w io.Writer, days []DayInfo) error {
	data := pterm.TableData{{"Day", "Title", "Input"}}
	for _, d := range days {
		input := d.Input
		if !d.HasInput {
			input = "(missing) " + input
		}
		data = append(data, []string{fmt.Sprintf("%02d", d.Day), d.Title, input})
	}
	return writeTable(w, data)
}

func (r *TableRenderer) Trace(w io.Writer, steps []almanac.Step) error {
	data := pterm.TableData{{"Category", "Value"}}
	for _, s := range steps {
		data = append(data, []string{s.Category, fmt.Sprint(s.Value)})
	}
	return writeTable(w, data)
}

func (r *TableRenderer) Value(w io.Writer, label string, value int64) error {
	return writeTable(w, pterm.TableData{{label}, {fmt.Sprint(value)}})
}

func (r *TableRenderer) Checks(w io.Writer, checks []StageCheck) error {
	data := pterm.TableData{{"Stage", "Rules", "Overlaps"}}
	for _, c := range checks {
		overlaps := make([]string, 0, len(c.Overlaps))
		for _, pair := range c.Overlaps {
			overlaps = append(overlaps, fmt.Sprintf("%s/%s", pair[0], pair[1]))
		}
		data = append(data, []string{c.Name, fmt.Sprint(c.Rules), strings.Join(overlaps, " ")})
	}
	return writeTable(w, data)
}

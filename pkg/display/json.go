package display

import (
	"encoding/json"
	"io"

	"github.com/husi/advent-of-tdd/pkg/almanac"
	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
)

// JSONRenderer provides JSON output for machine consumption
type JSONRenderer struct{}

func encode(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (r *JSONRenderer) Results(w io.Writer, results []puzzle.Result) error {
	views := make([]resultView, 0, len(results))
	for _, res := range results {
		views = append(views, viewOf(res))
	}
	return encode(w, views)
}

func (r *JSONRenderer) Days(w io.Writer, days []DayInfo) error {
	if days == nil {
		days = []DayInfo{}
	}
	return encode(w, days)
}

type stepView struct {
	Category string `json:"category"`
	Value    int64  `json:"value"`
}

func (r *JSONRenderer) Trace(w io.Writer, steps []almanac.Step) error {
	views := make([]stepView, 0, len(steps))
	for _, s := range steps {
		views = append(views, stepView{Category: s.Category, Value: s.Value})
	}
	return encode(w, views)
}

func (r *JSONRenderer) Value(w io.Writer, label string, value int64) error {
	return encode(w, map[string]int64{label: value})
}

type checkView struct {
	Stage    string      `json:"stage"`
	Rules    int         `json:"rules"`
	Overlaps [][2]string `json:"overlaps"`
}

func (r *JSONRenderer) Checks(w io.Writer, checks []StageCheck) error {
	views := make([]checkView, 0, len(checks))
	for _, c := range checks {
		v := checkView{Stage: c.Name, Rules: c.Rules, Overlaps: [][2]string{}}
		for _, pair := range c.Overlaps {
			v.Overlaps = append(v.Overlaps, [2]string{pair[0].String(), pair[1].String()})
		}
		views = append(views, v)
	}
	return encode(w, views)
}

// RenderError writes err as a JSON object with its code
func RenderError(w io.Writer, err error) error {
	return encode(w, map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	})
}

package almanac

import (
	"strconv"
	"strings"

	"github.com/husi/advent-of-tdd/pkg/errors"
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = " map:"
)

// Almanac is a parsed puzzle input: the seed values and the stages that map
// them to locations
type Almanac struct {
	Seeds    []int64
	Pipeline Pipeline
}

// Parse reads an almanac from trimmed input lines:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Stages are kept in the order they appear.
func Parse(lines []string) (*Almanac, error) {
	idx := skipBlank(lines, 0)
	if idx == len(lines) {
		return nil, errors.New(errors.ErrParse, "almanac is empty")
	}

	seeds, err := ParseSeeds(lines[idx])
	if err != nil {
		return nil, withLine(err, idx+1)
	}

	var stages []Stage
	for idx = skipBlank(lines, idx+1); idx < len(lines); idx = skipBlank(lines, idx) {
		header := idx
		idx++
		for idx < len(lines) && strings.TrimSpace(lines[idx]) != "" {
			idx++
		}

		stage, err := ParseStage(lines[header], lines[header+1:idx])
		if err != nil {
			return nil, withLine(err, header+1)
		}
		stages = append(stages, stage)
	}

	if len(stages) == 0 {
		return nil, errors.New(errors.ErrParse, "almanac has no maps")
	}

	return &Almanac{Seeds: seeds, Pipeline: NewPipeline(stages...)}, nil
}

// ParseSeeds reads the "seeds: n n n" line
func ParseSeeds(line string) ([]int64, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), seedsPrefix)
	if !ok {
		return nil, errors.Newf(errors.ErrParse, "expected %q, got %q", seedsPrefix, line)
	}

	seeds, err := parseNumbers(rest)
	if err != nil {
		return nil, err
	}
	if len(seeds) == 0 {
		return nil, errors.New(errors.ErrParse, "no seeds listed")
	}
	return seeds, nil
}

// ParseStage reads a "<source>-to-<target> map:" header and its rule lines
func ParseStage(header string, lines []string) (Stage, error) {
	name, ok := strings.CutSuffix(strings.TrimSpace(header), headerSuffix)
	if !ok || name == "" {
		return Stage{}, errors.Newf(errors.ErrParse, "expected a map header, got %q", header)
	}
	if len(lines) == 0 {
		return Stage{}, errors.Newf(errors.ErrParse, "map %q has no rules", name)
	}

	rules := make([]Rule, 0, len(lines))
	for i, line := range lines {
		rule, err := ParseRule(line)
		if err != nil {
			// the header is line 0 of the block
			return Stage{}, withLine(err, i+1)
		}
		rules = append(rules, rule)
	}
	return NewStage(name, rules...), nil
}

// ParseRule reads a "target source length" triple
func ParseRule(line string) (Rule, error) {
	values, err := parseNumbers(line)
	if err != nil {
		return Rule{}, err
	}
	if len(values) != 3 {
		return Rule{}, errors.Newf(errors.ErrParse, "expected 3 numbers in rule %q, got %d", line, len(values))
	}
	if values[2] == 0 {
		return Rule{}, errors.Newf(errors.ErrParse, "rule %q has zero length", line)
	}
	return NewRule(values[0], values[1], values[2]), nil
}

func parseNumbers(field string) ([]int64, error) {
	parts := strings.Fields(field)
	values := make([]int64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil || v < 0 {
			return nil, errors.Newf(errors.ErrParse, "%q is not a non-negative integer", part)
		}
		values = append(values, v)
	}
	return values, nil
}

func skipBlank(lines []string, idx int) int {
	for idx < len(lines) && strings.TrimSpace(lines[idx]) == "" {
		idx++
	}
	return idx
}

// withLine adds offset to the "line" detail of err. Offsets accumulate on the
// way up so Parse reports 1-based line numbers of the whole input.
func withLine(err error, offset int) error {
	details := errors.GetErrorDetails(err)
	if details == nil {
		return err
	}
	line, _ := details["line"].(int)
	details["line"] = line + offset
	return err
}

package almanac

import (
	"sort"
	"strings"
)

// Stage is a complete piecewise function over the integers: its rules'
// domains plus the identity everywhere else.
//
// The rules must have disjoint domains. This is not checked.
type Stage struct {
	Name   string
	Source string
	Target string
	rules  []Rule
}

// NewStage builds a stage named like "seed-to-soil". The rules are copied and
// sorted by domain start.
func NewStage(name string, rules ...Rule) Stage {
	sorted := make([]Rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DomainStart < sorted[j].DomainStart
	})

	source, target, _ := strings.Cut(name, "-to-")
	return Stage{
		Name:   name,
		Source: source,
		Target: target,
		rules:  sorted,
	}
}

// Rules returns a copy of the sorted rules
func (s Stage) Rules() []Rule {
	rules := make([]Rule, len(s.rules))
	copy(rules, s.rules)
	return rules
}

// firstCandidate returns the index of the first rule whose domain ends past n.
// Every rule before it lies entirely below n.
func (s Stage) firstCandidate(n int64) int {
	return sort.Search(len(s.rules), func(i int) bool {
		return s.rules[i].DomainEnd() > n
	})
}

// MapPoint applies the rule covering n, or returns n unchanged
func (s Stage) MapPoint(n int64) int64 {
	for _, rule := range s.rules[s.firstCandidate(n):] {
		if mapped, ok := rule.MapPoint(n); ok {
			return mapped
		}
		if rule.DomainStart > n {
			break
		}
	}
	return n
}

// MapRange partitions r along the rule domains and maps every piece. The
// result lengths add up to r.Length and no piece is empty.
func (s Stage) MapRange(r Range) []Range {
	if r.IsEmpty() {
		return nil
	}

	out := make([]Range, 0, 3)
	rest := r
	for _, rule := range s.rules[s.firstCandidate(r.Start):] {
		var resolved []Range
		resolved, rest = rule.MapRange(rest)
		out = append(out, resolved...)
		if rest.IsEmpty() {
			return out
		}
	}

	// Past the last domain everything is identity
	return append(out, rest)
}

// Overlaps returns every pair of neighbouring rules whose domains overlap.
// A well formed stage returns nothing.
func (s Stage) Overlaps() [][2]Rule {
	var overlaps [][2]Rule
	for i := 1; i < len(s.rules); i++ {
		if s.rules[i-1].DomainEnd() > s.rules[i].DomainStart {
			overlaps = append(overlaps, [2]Rule{s.rules[i-1], s.rules[i]})
		}
	}
	return overlaps
}

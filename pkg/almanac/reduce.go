package almanac

import (
	"github.com/husi/advent-of-tdd/pkg/errors"
)

// MinStart returns the smallest start over ranges. Empty ranges carry no
// value and are ignored. When nothing is left an ErrNoData error is
// returned, never a zero.
func MinStart(ranges []Range) (int64, error) {
	var (
		lowest int64
		found  bool
	)
	for _, r := range ranges {
		if r.IsEmpty() {
			continue
		}
		if !found || r.Start < lowest {
			lowest = r.Start
			found = true
		}
	}
	if !found {
		return 0, errors.New(errors.ErrNoData, "no ranges to take a minimum from")
	}
	return lowest, nil
}

// LowestRange maps seed ranges through the pipeline and returns the lowest
// value reached
func LowestRange(p Pipeline, seeds []Range) (int64, error) {
	return MinStart(p.MapRanges(seeds))
}

// LowestPoint maps single seeds through the pipeline and returns the lowest
// value reached
func LowestPoint(p Pipeline, seeds []int64) (int64, error) {
	if len(seeds) == 0 {
		return 0, errors.New(errors.ErrNoData, "no seeds to map")
	}

	lowest := p.MapPoint(seeds[0])
	for _, seed := range seeds[1:] {
		if mapped := p.MapPoint(seed); mapped < lowest {
			lowest = mapped
		}
	}
	return lowest, nil
}

// PointRanges turns every point into a range of length one
func PointRanges(points []int64) []Range {
	ranges := make([]Range, len(points))
	for i, p := range points {
		ranges[i] = NewRange(p, 1)
	}
	return ranges
}

// PairRanges reads values as consecutive (start, length) pairs
func PairRanges(values []int64) ([]Range, error) {
	if len(values)%2 != 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "expected start/length pairs, got %d values", len(values)).
			WithDetail("count", len(values))
	}

	ranges := make([]Range, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		ranges = append(ranges, NewRange(values[i], values[i+1]))
	}
	return ranges, nil
}

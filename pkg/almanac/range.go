package almanac

import "fmt"

// Range is the half-open interval [Start, Start+Length).
type Range struct {
	Start  int64
	Length int64
}

// NewRange creates a Range from its start and length
func NewRange(start, length int64) Range {
	return Range{Start: start, Length: length}
}

// span builds the Range [from, to). An inverted or empty span is empty.
func span(from, to int64) Range {
	if to <= from {
		return Range{Start: from}
	}
	return Range{Start: from, Length: to - from}
}

// End returns the first value past the range
func (r Range) End() int64 {
	return r.Start + r.Length
}

// IsEmpty reports whether the range covers no value
func (r Range) IsEmpty() bool {
	return r.Length <= 0
}

// Contains reports whether n lies inside the range
func (r Range) Contains(n int64) bool {
	return n >= r.Start && n < r.End()
}

// Shift moves the range by offset, keeping its length
func (r Range) Shift(offset int64) Range {
	return Range{Start: r.Start + offset, Length: r.Length}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End())
}

// TotalLength sums the lengths of ranges
func TotalLength(ranges []Range) int64 {
	var total int64
	for _, r := range ranges {
		total += r.Length
	}
	return total
}

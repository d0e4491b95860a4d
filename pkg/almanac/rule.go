package almanac

// Rule maps its domain [DomainStart, DomainStart+DomainLength) by adding
// Offset to every point.
type Rule struct {
	DomainStart  int64
	DomainLength int64
	Offset       int64
}

// NewRule builds a Rule from an almanac triple: the first value of the
// target interval, the first value of the source interval and the length
// they share.
func NewRule(target, source, length int64) Rule {
	return Rule{
		DomainStart:  source,
		DomainLength: length,
		Offset:       target - source,
	}
}

// Domain returns the interval the rule claims
func (r Rule) Domain() Range {
	return Range{Start: r.DomainStart, Length: r.DomainLength}
}

// DomainEnd returns the first value past the domain
func (r Rule) DomainEnd() int64 {
	return r.DomainStart + r.DomainLength
}

// MapPoint returns n+Offset when n lies in the domain. The second result is
// false when the rule does not cover n.
func (r Rule) MapPoint(n int64) (int64, bool) {
	if !r.Domain().Contains(n) {
		return 0, false
	}
	return n + r.Offset, true
}

// relation is the position of a range relative to a rule domain
type relation int

const (
	relBefore        relation = iota // range ends at or before the domain start
	relAfter                         // range starts at or after the domain end
	relOverlapsStart                 // range starts before the domain and ends inside it
	relContains                      // range sticks out on both sides
	relEqual                         // range and domain coincide
	relOverlapsEnd                   // range starts inside the domain and ends past it
	relWithin                        // range lies inside the domain, touching at most one edge
)

var relationNames = [...]string{
	relBefore:        "before",
	relAfter:         "after",
	relOverlapsStart: "overlaps-start",
	relContains:      "contains",
	relEqual:         "equal",
	relOverlapsEnd:   "overlaps-end",
	relWithin:        "within",
}

func (rel relation) String() string {
	if rel < 0 || int(rel) >= len(relationNames) {
		return "unknown"
	}
	return relationNames[rel]
}

// classify places the non-empty range [rs, re) against the domain [ds, de).
// The checks are ordered so that every branch only needs the conditions not
// already ruled out above it.
func classify(rs, re, ds, de int64) relation {
	switch {
	case re <= ds:
		return relBefore
	case rs >= de:
		return relAfter
	case rs == ds && re == de:
		return relEqual
	case rs < ds && re > de:
		return relContains
	case rs < ds:
		// ds < re <= de
		return relOverlapsStart
	case re > de:
		// ds <= rs < de
		return relOverlapsEnd
	default:
		return relWithin
	}
}

// MapRange splits in against the rule domain.
//
// resolved holds the pieces that are final for the stage being applied:
// pieces shifted by this rule, and pieces lying before the domain. Rules are
// sorted by domain start, so no later rule of the same stage can claim a
// value below this domain. remainder is the part of in past the domain end
// that later rules still have to look at; it is empty when nothing is left.
func (r Rule) MapRange(in Range) (resolved []Range, remainder Range) {
	if in.IsEmpty() {
		return nil, Range{}
	}

	rs, re := in.Start, in.End()
	ds, de := r.DomainStart, r.DomainEnd()

	switch classify(rs, re, ds, de) {
	case relBefore:
		return []Range{in}, Range{}
	case relAfter:
		return nil, in
	case relOverlapsStart:
		return []Range{span(rs, ds), span(ds, re).Shift(r.Offset)}, Range{}
	case relContains:
		return []Range{span(rs, ds), span(ds, de).Shift(r.Offset)}, span(de, re)
	case relOverlapsEnd:
		return []Range{span(rs, de).Shift(r.Offset)}, span(de, re)
	default:
		// equal and within map the whole range
		return []Range{in.Shift(r.Offset)}, Range{}
	}
}

// Package almanac maps integer intervals through an ordered pipeline of
// piecewise-offset stages.
//
// A Rule claims a half-open domain interval and shifts every point in it by
// a fixed offset. A Stage is a set of Rules with mutually disjoint domains,
// sorted by domain start, and behaves as the identity wherever no Rule
// matches. A Pipeline applies Stages left to right.
//
// Ranges are pushed through a Stage by splitting them at every domain
// boundary they straddle:
//
//	range      [-------------------------)
//	rule A          [=====)
//	rule B                    [=====)
//	output     [---)[AAAAA)[-)[BBBBB)[----)
//
// The pieces that come out of a Stage always add up to the length of the
// Range that went in, and no piece is ever empty.
//
// Stages do not validate that their domains are disjoint. Overlapping
// domains are a caller error and produce unspecified splits; Stage.Overlaps
// is available for diagnostics.
package almanac

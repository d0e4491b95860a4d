// Package day07 ranks Camel Cards hands.
package day07

import (
	"slices"
	"strconv"
	"strings"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
)

func init() {
	puzzle.MustRegister(Solver{})
}

// Kind is the strength class of a hand, weakest first
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

var kindNames = [...]string{"high card", "one pair", "two pair", "three of a kind", "full house", "four of a kind", "five of a kind"}

func (k Kind) String() string {
	if k < HighCard || k > FiveOfAKind {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// joker is the value J takes when jokers are wild
const joker = 0

// Hand is five card values plus the bid placed on it
type Hand struct {
	Cards [5]int
	Bid   int64
	Kind  Kind
}

// ParseHand parses "32T3K 765". With jokers set J is wild and ranks lowest.
func ParseHand(line string, jokers bool) (Hand, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 || len(fields[0]) != 5 {
		return Hand{}, errors.Newf(errors.ErrParse, "expected \"<5 cards> <bid>\", got %q", line)
	}

	var h Hand
	for i, c := range fields[0] {
		v, err := cardValue(c, jokers)
		if err != nil {
			return Hand{}, err
		}
		h.Cards[i] = v
	}
	bid, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Hand{}, errors.Newf(errors.ErrParse, "invalid bid %q", fields[1])
	}
	h.Bid = bid
	h.Kind = Classify(h.Cards)
	return h, nil
}

func cardValue(c rune, jokers bool) (int, error) {
	switch {
	case c >= '2' && c <= '9':
		return int(c - '0'), nil
	case c == 'T':
		return 10, nil
	case c == 'J':
		if jokers {
			return joker, nil
		}
		return 11, nil
	case c == 'Q':
		return 12, nil
	case c == 'K':
		return 13, nil
	case c == 'A':
		return 14, nil
	}
	return 0, errors.Newf(errors.ErrParse, "invalid card %q", c)
}

// Classify returns the kind of a hand. Jokers join the largest group.
func Classify(cards [5]int) Kind {
	counts := make(map[int]int, 5)
	jokers := 0
	for _, c := range cards {
		if c == joker {
			jokers++
			continue
		}
		counts[c]++
	}

	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	slices.SortFunc(groups, func(a, b int) int { return b - a })
	if len(groups) == 0 {
		return FiveOfAKind
	}
	groups[0] += jokers

	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && groups[1] == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && groups[1] == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}
	return HighCard
}

// Compare orders hands by kind, then card by card from the left
func Compare(a, b Hand) int {
	if a.Kind != b.Kind {
		return int(a.Kind) - int(b.Kind)
	}
	return slices.Compare(a.Cards[:], b.Cards[:])
}

// Winnings sorts hands by strength and sums bid times rank
func Winnings(hands []Hand) int64 {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, Compare)

	var total int64
	for i, h := range sorted {
		total += int64(i+1) * h.Bid
	}
	return total
}

// Solver for day 7
type Solver struct{}

func (Solver) Day() int      { return 7 }
func (Solver) Title() string { return "Camel Cards" }

func (Solver) Solve(part puzzle.Part, in puzzle.Input) (int64, error) {
	jokers := part == puzzle.PartTwo

	var hands []Hand
	for i, line := range in.Lines {
		if line == "" {
			continue
		}
		h, err := ParseHand(line, jokers)
		if err != nil {
			return 0, errors.Wrapf(err, errors.ErrParse, "line %d", i+1)
		}
		hands = append(hands, h)
	}
	return Winnings(hands), nil
}

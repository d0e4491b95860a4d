// Package day02 checks cube game records against a bag's contents.
package day02

import (
	"strconv"
	"strings"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
)

func init() {
	puzzle.MustRegister(Solver{})
}

// Hand is one handful of cubes revealed during a game
type Hand struct {
	Red, Green, Blue int64
}

// Fits reports whether a bag holding limit could have produced h
func (h Hand) Fits(limit Hand) bool {
	return h.Red <= limit.Red && h.Green <= limit.Green && h.Blue <= limit.Blue
}

// Power multiplies the three counts
func (h Hand) Power() int64 {
	return h.Red * h.Green * h.Blue
}

// Game is a recorded game
type Game struct {
	ID    int64
	Hands []Hand
}

// Fits reports whether every hand of the game fits limit
func (g Game) Fits(limit Hand) bool {
	for _, h := range g.Hands {
		if !h.Fits(limit) {
			return false
		}
	}
	return true
}

// Minimal is the smallest bag that could have produced the game
func (g Game) Minimal() Hand {
	var m Hand
	for _, h := range g.Hands {
		m.Red = max(m.Red, h.Red)
		m.Green = max(m.Green, h.Green)
		m.Blue = max(m.Blue, h.Blue)
	}
	return m
}

// ParseHand parses "3 blue, 4 red". Unknown colours are ignored.
func ParseHand(s string) (Hand, error) {
	var h Hand
	for _, cubes := range strings.Split(s, ",") {
		fields := strings.Fields(cubes)
		if len(fields) < 2 {
			continue
		}
		n, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return Hand{}, errors.Newf(errors.ErrParse, "invalid cube count %q", fields[0])
		}
		switch fields[1] {
		case "red":
			h.Red = n
		case "green":
			h.Green = n
		case "blue":
			h.Blue = n
		}
	}
	return h, nil
}

// ParseGame parses "Game 2: 1 blue, 2 green; 3 green"
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, errors.Newf(errors.ErrParse, "missing ':' in %q", line)
	}
	idText, found := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !found {
		return Game{}, errors.Newf(errors.ErrParse, "missing game header in %q", line)
	}
	id, err := strconv.ParseInt(strings.TrimSpace(idText), 10, 64)
	if err != nil {
		return Game{}, errors.Newf(errors.ErrParse, "invalid game id %q", idText)
	}

	game := Game{ID: id}
	for _, part := range strings.Split(body, ";") {
		h, err := ParseHand(part)
		if err != nil {
			return Game{}, err
		}
		game.Hands = append(game.Hands, h)
	}
	return game, nil
}

// Solver for day 2
type Solver struct{}

func (Solver) Day() int      { return 2 }
func (Solver) Title() string { return "Cube Conundrum" }

func (Solver) Solve(part puzzle.Part, in puzzle.Input) (int64, error) {
	limit := Hand{
		Red:   in.Params.Int("red", 12),
		Green: in.Params.Int("green", 13),
		Blue:  in.Params.Int("blue", 14),
	}

	var total int64
	for i, line := range in.Lines {
		if line == "" {
			continue
		}
		game, err := ParseGame(line)
		if err != nil {
			return 0, errors.Wrapf(err, errors.ErrParse, "line %d", i+1)
		}
		switch part {
		case puzzle.PartOne:
			if game.Fits(limit) {
				total += game.ID
			}
		default:
			total += game.Minimal().Power()
		}
	}
	return total, nil
}

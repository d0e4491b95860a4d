// Package day08 walks the desert network.
package day08

import (
	"sort"
	"strings"

	"github.com/husi/advent-of-tdd/pkg/errors"
	"github.com/husi/advent-of-tdd/pkg/input"
	"github.com/husi/advent-of-tdd/pkg/puzzle"
)

func init() {
	puzzle.MustRegister(Solver{})
}

// Network is a left/right instruction string and a node table
type Network struct {
	Instructions string
	Nodes        map[string][2]string
}

// Parse reads the instruction line and "AAA = (BBB, CCC)" node lines
func Parse(lines []string) (*Network, error) {
	blocks := input.Blocks(lines)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, errors.New(errors.ErrParse, "expected an instruction line followed by a blank line and nodes")
	}

	n := &Network{Instructions: blocks[0][0], Nodes: make(map[string][2]string, len(blocks[1]))}
	if strings.Trim(n.Instructions, "LR") != "" {
		return nil, errors.Newf(errors.ErrParse, "instructions may only contain L and R: %q", n.Instructions)
	}

	for _, line := range blocks[1] {
		name, rest, ok := strings.Cut(line, "=")
		if !ok {
			return nil, errors.Newf(errors.ErrParse, "missing '=' in %q", line)
		}
		rest = strings.Trim(strings.TrimSpace(rest), "()")
		left, right, ok := strings.Cut(rest, ",")
		if !ok {
			return nil, errors.Newf(errors.ErrParse, "missing ',' in %q", line)
		}
		n.Nodes[strings.TrimSpace(name)] = [2]string{strings.TrimSpace(left), strings.TrimSpace(right)}
	}
	return n, nil
}

// Steps follows the instructions from start until done reports true.
// A walk longer than the node count times the instruction length is a cycle
// that never finishes.
func (n *Network) Steps(start string, done func(string) bool) (int64, error) {
	limit := int64(len(n.Nodes)+1) * int64(len(n.Instructions))
	node := start
	var steps int64
	for !done(node) {
		next, ok := n.Nodes[node]
		if !ok {
			return 0, errors.Newf(errors.ErrUnsolvable, "node %s is not defined", node).
				WithDetail("node", node)
		}
		if n.Instructions[steps%int64(len(n.Instructions))] == 'L' {
			node = next[0]
		} else {
			node = next[1]
		}
		steps++
		if steps > limit {
			return 0, errors.Newf(errors.ErrUnsolvable, "no exit reachable from %s", start).
				WithDetail("start", start)
		}
	}
	return steps, nil
}

// GhostSteps is the number of steps until every node ending in A
// simultaneously stands on a node ending in Z. Each ghost runs a cycle whose
// length equals its first arrival, so the answer is the LCM of those.
func (n *Network) GhostSteps() (int64, error) {
	var starts []string
	for name := range n.Nodes {
		if strings.HasSuffix(name, "A") {
			starts = append(starts, name)
		}
	}
	if len(starts) == 0 {
		return 0, errors.New(errors.ErrUnsolvable, "no start nodes ending in A")
	}
	sort.Strings(starts)

	result := int64(1)
	for _, s := range starts {
		steps, err := n.Steps(s, func(node string) bool { return strings.HasSuffix(node, "Z") })
		if err != nil {
			return 0, err
		}
		result = lcm(result, steps)
	}
	return result, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}

// Solver for day 8
type Solver struct{}

func (Solver) Day() int      { return 8 }
func (Solver) Title() string { return "Haunted Wasteland" }

func (Solver) Solve(part puzzle.Part, in puzzle.Input) (int64, error) {
	n, err := Parse(in.Lines)
	if err != nil {
		return 0, err
	}
	if part == puzzle.PartTwo {
		return n.GhostSteps()
	}
	return n.Steps("AAA", func(node string) bool { return node == "ZZZ" })
}

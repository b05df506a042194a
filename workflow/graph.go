package workflow

import (
	"fmt"
	"strings"
)

// Visitation states for the reference walk.
const (
	white = iota // not visited
	gray         // on the current path
	black        // finished
)

// Validate checks that entry exists, that every destination names a terminal
// or a defined workflow, and that no chain of references loops back on itself.
//
// Every workflow is checked, including those entry cannot reach, so that a
// later Build from another entry sees the same verdict.
//
// Errors: ErrUndefinedWorkflow (missing entry or destination), ErrCycle (the
// message names the loop, e.g. "in -> a -> in").
func (s *System) Validate(entry string) error {
	_, err := s.postOrder(entry)

	return err
}

// postOrder validates s and returns the workflows reachable from entry,
// every workflow listed after all workflows it references.
func (s *System) postOrder(entry string) ([]string, error) {
	// 1) Entry and dangling references.
	if _, ok := s.Workflows[entry]; !ok {
		return nil, fmt.Errorf("%w: entry %q", ErrUndefinedWorkflow, entry)
	}
	for _, name := range s.Order {
		for _, dest := range s.Workflows[name].destinations() {
			if isTerminal(dest) {
				continue
			}
			if _, ok := s.Workflows[dest]; !ok {
				return nil, fmt.Errorf("%w: %q referenced from %q", ErrUndefinedWorkflow, dest, name)
			}
		}
	}

	// 2) Three-color DFS over all workflows, entry first.
	v := &visitor{
		sys:   s,
		state: make(map[string]int, len(s.Workflows)),
		path:  make([]string, 0, len(s.Workflows)),
	}
	if err := v.visit(entry); err != nil {
		return nil, err
	}
	reachable := append([]string(nil), v.order...)
	for _, name := range s.Order {
		if v.state[name] == white {
			if err := v.visit(name); err != nil {
				return nil, err
			}
		}
	}

	return reachable, nil
}

// visitor carries the DFS state shared by recursive visits.
type visitor struct {
	sys   *System
	state map[string]int
	path  []string // current DFS stack, for cycle reporting
	order []string // finished workflows, post-order
}

// visit marks name gray, explores its destinations and records it on finish.
// A gray destination closes a cycle.
func (v *visitor) visit(name string) error {
	v.state[name] = gray
	v.path = append(v.path, name)

	for _, dest := range v.sys.Workflows[name].destinations() {
		if isTerminal(dest) {
			continue
		}
		switch v.state[dest] {
		case white:
			if err := v.visit(dest); err != nil {
				return err
			}
		case gray:
			return fmt.Errorf("%w: %s", ErrCycle, v.cycleFrom(dest))
		}
	}

	v.path = v.path[:len(v.path)-1]
	v.state[name] = black
	v.order = append(v.order, name)

	return nil
}

// cycleFrom renders the loop from dest on the current path back to dest.
func (v *visitor) cycleFrom(dest string) string {
	start := 0
	for i, n := range v.path {
		if n == dest {
			start = i

			break
		}
	}
	loop := append(append([]string(nil), v.path[start:]...), dest)

	return strings.Join(loop, " -> ")
}

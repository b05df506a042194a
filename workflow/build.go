package workflow

import (
	"fmt"

	"github.com/Marlinski/advent-of-code-2023/partition"
)

// Build validates s and converts the workflows reachable from entry into a
// partition decision tree rooted at entry.
//
// A workflow "w{p1:d1,p2:d2,def}" becomes
//
//	Branch(p1, node(d1), Branch(p2, node(d2), node(def)))
//
// where node(A) and node(R) are leaves and node(name) is the tree of that
// workflow. Each workflow is converted once and shared by every rule that
// sends parts to it, so the result is a DAG with one node per rule.
func (s *System) Build(entry string) (partition.Node, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil system", ErrUndefinedWorkflow)
	}
	order, err := s.postOrder(entry)
	if err != nil {
		return nil, err
	}

	built := make(map[string]partition.Node, len(order))
	target := func(dest string) partition.Node {
		switch dest {
		case Accept:
			return partition.AcceptLeaf()
		case Reject:
			return partition.RejectLeaf()
		default:
			return built[dest]
		}
	}

	// Post-order: every destination is built before the workflow that uses it.
	for _, name := range order {
		w := s.Workflows[name]
		node := target(w.Default)
		for i := len(w.Rules) - 1; i >= 0; i-- {
			node = partition.NewBranch(w.Rules[i].Pred, target(w.Rules[i].Dest), node)
		}
		built[name] = node
	}

	return built[entry], nil
}

// CountAccepted builds the tree from entry and counts the accepted points of
// the partition space.
func (s *System) CountAccepted(entry string, opts ...partition.Option) (uint64, error) {
	root, err := s.Build(entry)
	if err != nil {
		return 0, err
	}

	return partition.CountAccepted(root, opts...)
}

// SumAccepted builds the tree from entry and sums the ratings of the parsed
// parts that end up accepted.
func (s *System) SumAccepted(entry string) (int64, error) {
	root, err := s.Build(entry)
	if err != nil {
		return 0, err
	}

	return partition.SumAccepted(root, s.Parts)
}

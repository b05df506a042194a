package partition

import "fmt"

// Classify follows the tree for one concrete part and returns the verdict of
// the leaf it reaches. Every dimension the part meets on its way must be
// rated (ErrMissingRating otherwise). The walk is bounded by DefaultMaxDepth
// branches (ErrDepthExceeded).
func Classify(root Node, part Part) (Verdict, error) {
	n := root
	for steps := 0; ; steps++ {
		if steps > DefaultMaxDepth {
			return Reject, fmt.Errorf("%w: limit %d", ErrDepthExceeded, DefaultMaxDepth)
		}
		switch v := n.(type) {
		case Leaf:
			return v.Verdict, nil
		case *Leaf:
			if v == nil {
				return Reject, ErrNilNode
			}

			return v.Verdict, nil
		case *Branch:
			if v == nil {
				return Reject, ErrNilNode
			}
			rating, ok := part[v.Pred.Dim]
			if !ok {
				return Reject, fmt.Errorf("%w: %q", ErrMissingRating, v.Pred.Dim)
			}
			if v.Pred.Holds(rating) {
				n = v.Then
			} else {
				n = v.Else
			}
		default:
			return Reject, ErrNilNode
		}
	}
}

// SumAccepted classifies every part and returns the sum of all ratings of the
// accepted ones.
func SumAccepted(root Node, parts []Part) (int64, error) {
	var total int64
	for i, p := range parts {
		verdict, err := Classify(root, p)
		if err != nil {
			return 0, fmt.Errorf("part %d: %w", i, err)
		}
		if verdict != Accept {
			continue
		}
		for _, rating := range p {
			total += rating
		}
	}

	return total, nil
}

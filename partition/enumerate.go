package partition

import (
	"fmt"
	"log/slog"
	"math/bits"
)

// EnumerateConstraintSets walks the tree depth-first and returns the
// constraint set of every path that ends in an Accept leaf, in then-before-else
// order. The then-branch of a node sees its predicate, the else-branch sees the
// predicate's negation, so two returned sets always disagree on at least one
// predicate and describe disjoint regions.
//
// Errors: ErrNilNode for a nil node, ErrUnknownDimension for a predicate
// outside the configured space, ErrDepthExceeded for paths longer than MaxDepth,
// ErrBadMaxDepth for a non-positive MaxDepth.
//
// Complexity: O(P·D) time and memory, P = number of paths, D = path length.
func EnumerateConstraintSets(root Node, opts ...Option) ([]ConstraintSet, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxDepth <= 0 {
		return nil, ErrBadMaxDepth
	}

	w := &walker{options: cfg}
	if err := w.walk(root); err != nil {
		return nil, err
	}

	cfg.Logger.Debug("partition: enumerated accepting paths",
		slog.Int("leaves", w.leaves),
		slog.Int("accepted", len(w.sets)),
		slog.Int("max_depth_seen", w.deepest),
	)

	return w.sets, nil
}

// EnumerateAcceptedRegions returns one hyper-rectangle per accepting path,
// each obtained by folding that path's constraint set into the full box.
// Regions may be empty (over-constrained path); they are still returned and
// have volume 0.
func EnumerateAcceptedRegions(root Node, opts ...Option) ([]HyperRectangle, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	sets, err := EnumerateConstraintSets(root, opts...)
	if err != nil {
		return nil, err
	}
	regions := make([]HyperRectangle, 0, len(sets))
	for _, cs := range sets {
		hr, err := cs.Fold(cfg.Space)
		if err != nil {
			return nil, err
		}
		regions = append(regions, hr)
	}

	return regions, nil
}

// Volume returns the number of integer points in hr: the product of its
// interval lengths, or 0 if any interval is empty or inverted. A rectangle
// without dimensions has volume 0.
// Returns ErrOverflow if the product does not fit in uint64.
func (hr HyperRectangle) Volume() (uint64, error) {
	if len(hr) == 0 || hr.Empty() {
		return 0, nil
	}
	vol := uint64(1)
	for _, iv := range hr {
		hi, lo := bits.Mul64(vol, iv.Len())
		if hi != 0 {
			return 0, ErrOverflow
		}
		vol = lo
	}

	return vol, nil
}

// TotalCombinations sums the volumes of regions. Regions from distinct accepting
// paths are disjoint, so the sum counts every accepted point exactly once.
// Degenerate regions contribute 0. Returns ErrOverflow past uint64.
func TotalCombinations(regions []HyperRectangle) (uint64, error) {
	var total uint64
	for i, hr := range regions {
		vol, err := hr.Volume()
		if err != nil {
			return 0, fmt.Errorf("region %d: %w", i, err)
		}
		var carry uint64
		total, carry = bits.Add64(total, vol, 0)
		if carry != 0 {
			return 0, ErrOverflow
		}
	}

	return total, nil
}

// CountAccepted enumerates the accepted regions of root and returns their total volume.
func CountAccepted(root Node, opts ...Option) (uint64, error) {
	regions, err := EnumerateAcceptedRegions(root, opts...)
	if err != nil {
		return 0, err
	}

	return TotalCombinations(regions)
}

// walker holds the mutable state of one depth-first enumeration.
type walker struct {
	options Options
	path    ConstraintSet   // predicates on the current path
	sets    []ConstraintSet // accepted paths collected so far
	leaves  int             // leaves reached, accepted or not
	deepest int             // longest path seen
}

// walk visits n with w.path holding the predicates above it.
func (w *walker) walk(n Node) error {
	if len(w.path) > w.options.MaxDepth {
		return fmt.Errorf("%w: limit %d", ErrDepthExceeded, w.options.MaxDepth)
	}
	w.deepest = max(w.deepest, len(w.path))

	switch v := n.(type) {
	case *Leaf:
		if v == nil {
			return ErrNilNode
		}

		return w.walk(*v)
	case Leaf:
		w.leaves++
		if v.Verdict == Accept {
			w.sets = append(w.sets, append(ConstraintSet(nil), w.path...))
		}

		return nil
	case *Branch:
		if v == nil {
			return ErrNilNode
		}
		if !w.options.Space.Has(v.Pred.Dim) {
			return fmt.Errorf("%w: %q in %v", ErrUnknownDimension, v.Pred.Dim, v.Pred)
		}
		// 1) Then-branch: the predicate holds.
		w.path = append(w.path, v.Pred)
		if err := w.walk(v.Then); err != nil {
			return err
		}
		// 2) Else-branch: its complement holds.
		w.path[len(w.path)-1] = v.Pred.Negated()
		if err := w.walk(v.Else); err != nil {
			return err
		}
		// 3) Backtrack.
		w.path = w.path[:len(w.path)-1]

		return nil
	default:
		return ErrNilNode
	}
}

// Package partition defines core types and configuration options for the
// interval-constraint partition engine: range predicates over named integer
// dimensions, decision trees built from them, and the axis-aligned boxes
// (hyper-rectangles) that the accepting paths of a tree describe.
//
// Interval convention: every interval is inclusive-lower, exclusive-upper,
// written [Lo, Hi). An interval with Lo ≥ Hi is empty and has length 0.
package partition

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// Sentinel errors returned by the partition engine.
var (
	// ErrNilNode indicates a nil node inside a decision tree.
	ErrNilNode = errors.New("partition: nil node in decision tree")

	// ErrDepthExceeded indicates a path deeper than MaxDepth, which usually
	// means the tree builder let a cyclic reference through.
	ErrDepthExceeded = errors.New("partition: decision tree exceeds maximum depth")

	// ErrUnknownDimension indicates a predicate over a dimension not in the Space.
	ErrUnknownDimension = errors.New("partition: unknown dimension")

	// ErrMissingRating indicates a part with no value for a tested dimension.
	ErrMissingRating = errors.New("partition: part has no rating for dimension")

	// ErrOverflow indicates a volume or total that does not fit in uint64.
	ErrOverflow = errors.New("partition: combination count overflows uint64")

	// ErrBadMaxDepth indicates that MaxDepth was set to zero or a negative value.
	ErrBadMaxDepth = errors.New("partition: MaxDepth must be positive")
)

// Dimension names one integer axis, e.g. "x".
type Dimension string

// Interval is the half-open integer range [Lo, Hi).
type Interval struct {
	Lo, Hi int64
}

// Empty reports whether the interval contains no integer.
func (iv Interval) Empty() bool { return iv.Lo >= iv.Hi }

// Len returns the number of integers in the interval, 0 when empty.
func (iv Interval) Len() uint64 {
	if iv.Empty() {
		return 0
	}

	return uint64(iv.Hi) - uint64(iv.Lo)
}

// Contains reports whether v lies in [Lo, Hi).
func (iv Interval) Contains(v int64) bool { return v >= iv.Lo && v < iv.Hi }

// Intersect returns the common part of iv and o (possibly empty).
func (iv Interval) Intersect(o Interval) Interval {
	return Interval{Lo: max(iv.Lo, o.Lo), Hi: min(iv.Hi, o.Hi)}
}

// Overlaps reports whether iv and o share at least one integer.
func (iv Interval) Overlaps(o Interval) bool { return !iv.Intersect(o).Empty() }

// String renders the interval as "[Lo,Hi)".
func (iv Interval) String() string { return fmt.Sprintf("[%d,%d)", iv.Lo, iv.Hi) }

// Space is the set of dimensions a tree ranges over and their common full range.
type Space struct {
	Dims []Dimension
	Full Interval
}

// XMAS returns the part-rating space: x, m, a, s each over [1, 4001).
func XMAS() Space {
	return Space{
		Dims: []Dimension{"x", "m", "a", "s"},
		Full: Interval{Lo: 1, Hi: 4001},
	}
}

// Has reports whether d is one of the space's dimensions.
func (s Space) Has(d Dimension) bool {
	for _, x := range s.Dims {
		if x == d {
			return true
		}
	}

	return false
}

// Box returns the unconstrained hyper-rectangle of the space.
func (s Space) Box() HyperRectangle {
	hr := make(HyperRectangle, len(s.Dims))
	for _, d := range s.Dims {
		hr[d] = s.Full
	}

	return hr
}

// Comparison is the operator of a range predicate.
type Comparison uint8

const (
	// LessThan tests value < literal.
	LessThan Comparison = iota
	// GreaterThan tests value > literal.
	GreaterThan
)

// String returns "<" or ">".
func (c Comparison) String() string {
	if c == GreaterThan {
		return ">"
	}

	return "<"
}

// Predicate is a single-sided range test on one dimension, or its complement
// when Negate is set (used on the else-branch of a decision node).
type Predicate struct {
	Dim     Dimension
	Op      Comparison
	Literal int64
	Negate  bool
}

// Negated returns the logical complement of p.
func (p Predicate) Negated() Predicate {
	p.Negate = !p.Negate

	return p
}

// Holds evaluates p against a concrete value.
func (p Predicate) Holds(v int64) bool {
	var ok bool
	if p.Op == GreaterThan {
		ok = v > p.Literal
	} else {
		ok = v < p.Literal
	}

	return ok != p.Negate
}

// Narrow tightens iv by p. Bounds only ever move inwards:
//
//	x > L      lower = max(lower, L+1)
//	!(x > L)   upper = min(upper, L+1)
//	x < L      upper = min(upper, L)
//	!(x < L)   lower = max(lower, L)
func (p Predicate) Narrow(iv Interval) Interval {
	switch {
	case p.Op == GreaterThan && !p.Negate:
		iv.Lo = max(iv.Lo, succ(p.Literal))
	case p.Op == GreaterThan && p.Negate:
		iv.Hi = min(iv.Hi, succ(p.Literal))
	case p.Op == LessThan && !p.Negate:
		iv.Hi = min(iv.Hi, p.Literal)
	default:
		iv.Lo = max(iv.Lo, p.Literal)
	}

	return iv
}

// String renders p as "x>5" or "!(x>5)".
func (p Predicate) String() string {
	s := fmt.Sprintf("%s%v%d", p.Dim, p.Op, p.Literal)
	if p.Negate {
		return "!(" + s + ")"
	}

	return s
}

// succ returns v+1, saturating at math.MaxInt64.
func succ(v int64) int64 {
	if v == math.MaxInt64 {
		return v
	}

	return v + 1
}

// Verdict is the terminal outcome of a decision path.
type Verdict uint8

const (
	// Reject discards the path.
	Reject Verdict = iota
	// Accept keeps the path.
	Accept
)

// String returns "A" or "R".
func (v Verdict) String() string {
	if v == Accept {
		return "A"
	}

	return "R"
}

// Node is a decision-tree node: either *Branch or Leaf.
type Node interface {
	node()
}

// Branch tests Pred; Then is followed when it holds, Else otherwise.
type Branch struct {
	Pred Predicate
	Then Node
	Else Node
}

// Leaf ends a path with a verdict.
type Leaf struct {
	Verdict Verdict
}

func (*Branch) node() {}
func (Leaf) node()    {}

// NewBranch returns a branch node testing p.
func NewBranch(p Predicate, then, els Node) *Branch {
	return &Branch{Pred: p, Then: then, Else: els}
}

// AcceptLeaf returns a leaf that accepts.
func AcceptLeaf() Leaf { return Leaf{Verdict: Accept} }

// RejectLeaf returns a leaf that rejects.
func RejectLeaf() Leaf { return Leaf{Verdict: Reject} }

// ConstraintSet is the ordered list of predicates met along one root-to-leaf path.
type ConstraintSet []Predicate

// Fold narrows the space's full box by every predicate in order.
// Returns ErrUnknownDimension if a predicate names a dimension outside space.
// An over-constrained set yields a box with an empty interval, not an error.
func (cs ConstraintSet) Fold(space Space) (HyperRectangle, error) {
	hr := space.Box()
	for _, p := range cs {
		iv, ok := hr[p.Dim]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, p.Dim)
		}
		hr[p.Dim] = p.Narrow(iv)
	}

	return hr, nil
}

// HyperRectangle maps each dimension to its interval.
type HyperRectangle map[Dimension]Interval

// Empty reports whether any dimension's interval is empty.
func (hr HyperRectangle) Empty() bool {
	for _, iv := range hr {
		if iv.Empty() {
			return true
		}
	}

	return false
}

// Contains reports whether every rated dimension of part falls inside hr.
// A dimension of hr missing from part counts as not contained.
func (hr HyperRectangle) Contains(part Part) bool {
	for d, iv := range hr {
		v, ok := part[d]
		if !ok || !iv.Contains(v) {
			return false
		}
	}

	return true
}

// Overlaps reports whether hr and o share at least one point. Dimensions
// present in only one of them are unconstrained in the other.
func (hr HyperRectangle) Overlaps(o HyperRectangle) bool {
	if hr.Empty() || o.Empty() {
		return false
	}
	for d, iv := range hr {
		if other, ok := o[d]; ok && !iv.Overlaps(other) {
			return false
		}
	}

	return true
}

// Part is a concrete point: one rating per dimension.
type Part map[Dimension]int64

// Options configures enumeration.
//
// Space    – dimensions and full range. Default XMAS().
// MaxDepth – longest admissible root-to-leaf path, in branches. Default DefaultMaxDepth.
// Logger   – debug logger. Default discards everything.
type Options struct {
	Space    Space
	MaxDepth int
	Logger   *slog.Logger
}

// DefaultMaxDepth bounds path length when no WithMaxDepth option is given.
const DefaultMaxDepth = 4096

// Option represents a functional option for configuring enumeration.
type Option func(*Options)

// WithSpace sets the dimensions and full range.
func WithSpace(s Space) Option {
	return func(o *Options) {
		o.Space = s
	}
}

// WithMaxDepth limits root-to-leaf paths to limit branches.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithLogger installs a structured logger. Passing nil has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns XMAS space, DefaultMaxDepth and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Space:    XMAS(),
		MaxDepth: DefaultMaxDepth,
		Logger:   slog.New(slog.DiscardHandler),
	}
}

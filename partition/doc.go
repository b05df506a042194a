// Package partition counts the integer points a decision tree of range tests
// accepts, without testing the points one by one.
//
// What:
//
//   - A Space names the dimensions (e.g. x, m, a, s) and their full range [1, 4001).
//   - A Branch tests one Predicate such as "a<2006"; its Then child applies when the
//     test holds and its Else child when it does not. A Leaf accepts or rejects.
//   - EnumerateConstraintSets collects the predicates met along every accepting path,
//     negating a predicate on the else side.
//   - EnumerateAcceptedRegions folds each set into a HyperRectangle by narrowing the
//     full box one predicate at a time. Bounds only ever tighten.
//   - TotalCombinations / CountAccepted sum the rectangle volumes.
//   - Classify / SumAccepted run concrete parts through the same tree.
//
// Why the sum is exact:
//
//   - Two accepting paths split at some branch, one side carrying p and the other
//     its negation, so their rectangles are disjoint and no point is counted twice.
//   - An over-constrained path (say x>100 then x<50) folds to an empty interval and
//     contributes 0.
//
// Interval convention: [Lo, Hi), inclusive lower and exclusive upper, applied
// everywhere. Mixing conventions silently produces off-by-one volumes.
//
// Complexity:
//
//   - Enumeration: O(P·D) for P root-to-leaf paths of length at most D.
//   - Volume: O(dims) per rectangle; totals use uint64 with overflow detection.
//
// Errors:
//
//   - ErrNilNode, ErrDepthExceeded: malformed trees (a cycle shows up as ErrDepthExceeded).
//   - ErrUnknownDimension: predicate outside the Space.
//   - ErrMissingRating: part lacking a tested dimension.
//   - ErrOverflow: count larger than uint64.
//   - ErrBadMaxDepth: non-positive depth limit.
package partition

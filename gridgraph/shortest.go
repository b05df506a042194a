package gridgraph

import (
	"container/heap"
	"fmt"
	"math"
)

// ShortestPath returns the minimum total entered-cell cost of any
// 4-directional path from src to dst, with no restriction on straight runs.
// The cost of src itself is not charged; ShortestPath(c, c) is 0.
//
// Behavior:
//  1. Validate both endpoints (ErrCellOutOfBounds).
//  2. Dijkstra over cell indices with a lazy-deletion min-heap.
//  3. Stop when dst is popped; ErrNoPath if the heap drains first.
//
// Complexity: O(W·H · log(W·H)) time, O(W·H) memory.
func (gg *GridGraph) ShortestPath(src, dst Cell) (int64, error) {
	if !gg.InBounds(src) {
		return 0, fmt.Errorf("%w: source %v", ErrCellOutOfBounds, src)
	}
	if !gg.InBounds(dst) {
		return 0, fmt.Errorf("%w: destination %v", ErrCellOutOfBounds, dst)
	}

	n := gg.Width * gg.Height
	dist := make([]int64, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = math.MaxInt64
	}
	target := gg.index(dst)
	dist[gg.index(src)] = 0

	pq := cellPQ{{idx: gg.index(src), dist: 0}}
	for pq.Len() > 0 {
		it := heap.Pop(&pq).(cellItem)
		if done[it.idx] {
			continue
		}
		done[it.idx] = true
		if it.idx == target {
			return it.dist, nil
		}
		for _, v := range gg.Neighbors(gg.Coordinate(it.idx)) {
			vi := gg.index(v)
			nd := it.dist + int64(gg.Cost(v))
			if nd < dist[vi] {
				dist[vi] = nd
				heap.Push(&pq, cellItem{idx: vi, dist: nd})
			}
		}
	}

	return 0, ErrNoPath
}

// cellItem is a heap entry: a row-major cell index and its tentative distance.
type cellItem struct {
	idx  int
	dist int64
}

// cellPQ is a min-heap of cellItem ordered by dist.
type cellPQ []cellItem

func (pq cellPQ) Len() int            { return len(pq) }
func (pq cellPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq cellPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(cellItem)) }
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

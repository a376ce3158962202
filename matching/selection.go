package matching

import "container/heap"

// selectRejected implements spec §4.1: given a program and a candidate
// pool of student ids, return the subset of the pool that is rejected —
// everyone not among the program's top-Capacity by priority. A student
// absent from the program's preference list is always rejected, even if
// the pool is smaller than Capacity (§4.1: "students not on the
// program's list may never be retained").
//
// Complexity: O(|pool|·log Capacity) using a bounded max-heap that keeps
// only the Capacity best-ranked candidates seen so far, mirroring the
// container/heap bounded-priority-queue idiom lvlath/dijkstra uses for its
// min-heap (here inverted: we evict the worst of the kept set when a
// better candidate arrives). No side effects: the program, pool, and
// matching are all read-only.
func selectRejected(p *Program, pool []int) []int {
	kept := make(rankHeap, 0, p.Capacity)
	rejected := make([]int, 0, len(pool))

	for _, sid := range pool {
		r := p.rankOf(sid)
		if r == unranked {
			rejected = append(rejected, sid)
			continue
		}
		item := rankedStudent{id: sid, rank: r}

		switch {
		case len(kept) < p.Capacity:
			heap.Push(&kept, item)
		case item.rank < kept[0].rank:
			// item outranks the current worst-kept candidate: evict it
			// and reject it instead.
			worst := kept[0]
			rejected = append(rejected, worst.id)
			kept[0] = item
			heap.Fix(&kept, 0)
		default:
			rejected = append(rejected, sid)
		}
	}

	return rejected
}

// rankedStudent pairs a student id with its priority rank at a given
// program (smaller rank == more preferred).
type rankedStudent struct {
	id   int
	rank int
}

// rankHeap is a max-heap on rank: Pop/heap[0] always exposes the
// worst-ranked (largest rank) of the currently kept candidates, so
// selectRejected can cheaply evict it when a better one arrives.
type rankHeap []rankedStudent

func (h rankHeap) Len() int            { return len(h) }
func (h rankHeap) Less(i, j int) bool  { return h[i].rank > h[j].rank }
func (h rankHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *rankHeap) Push(x interface{}) { *h = append(*h, x.(rankedStudent)) }
func (h *rankHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

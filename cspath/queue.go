// SPDX-License-Identifier: MIT

package cspath

// pairItem is a frontier entry of the PairLabel search: arriving at node
// from predecessor with the given cost and time.
type pairItem struct {
	cost int64 // priority key
	node int   // current node
	from int   // predecessor node
	time int64 // accumulated time when pushed
	seq  int   // insertion order; keeps equal-cost pops deterministic
}

// pairPQ is a min-heap of *pairItem ordered by cost ascending, then by
// insertion order. Stale entries are skipped by the runner ("lazy deletion").
type pairPQ []*pairItem

// Len returns the number of items in the heap.
func (pq pairPQ) Len() int { return len(pq) }

// Less orders by cost, then by insertion sequence.
func (pq pairPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq pairPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x (a *pairItem) to the heap. Called by heap.Push.
func (pq *pairPQ) Push(x interface{}) { *pq = append(*pq, x.(*pairItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *pairPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// labelPQ is a min-heap of label indices for the Exact search, ordered by
// (cost, time, index). The index tie-break makes pops reproducible.
type labelPQ struct {
	idx    []int
	labels *[]label
}

func (pq labelPQ) Len() int { return len(pq.idx) }

func (pq labelPQ) Less(i, j int) bool {
	a, b := &(*pq.labels)[pq.idx[i]], &(*pq.labels)[pq.idx[j]]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.time != b.time {
		return a.time < b.time
	}

	return pq.idx[i] < pq.idx[j]
}

func (pq labelPQ) Swap(i, j int) { pq.idx[i], pq.idx[j] = pq.idx[j], pq.idx[i] }

func (pq *labelPQ) Push(x interface{}) { pq.idx = append(pq.idx, x.(int)) }

func (pq *labelPQ) Pop() interface{} {
	n := len(pq.idx)
	v := pq.idx[n-1]
	pq.idx = pq.idx[:n-1]

	return v
}

// SPDX-License-Identifier: MIT

// Package cspath - PairLabel search.
//
// The search keeps a best-known (cost, time) for every (predecessor, node)
// pair and expands entries in ascending cost with a lazy-deletion heap.
//
// Notes on implementation choices:
//
//   - Expansion reads the table's current (cost, time) for the popped pair,
//     not the values stored in the heap entry, so a time tightened after the
//     push is still used.
//   - A cost improvement is recorded (and pushed) only when the new time is
//     strictly below TimeLimit.
//   - An equal-cost arrival with a strictly lower time updates the time in
//     place; no new heap entry is pushed.
//   - The destination answer is the best entry over every predecessor column,
//     chosen per Options.TieBreak.
package cspath

import "container/heap"

// pairRunner holds the mutable state for a single PairLabel execution.
type pairRunner struct {
	g     *denseGraph // flattened input; read-only
	opts  Options     // validated configuration
	best  []label     // best[from*n+node] = best-known (cost, time) for that pair
	pq    pairPQ      // min-heap of frontier entries
	seq   int         // next insertion sequence number
	stats Stats       // work counters
}

// label is a (cost, time) pair; Exact additionally links labels by parent.
type label struct {
	cost   int64
	time   int64
	node   int
	parent int  // index of the previous label, -1 for the source (Exact)
	dead   bool // dominated after insertion (Exact)
}

// newPairRunner allocates the n×n table and an empty heap.
func newPairRunner(g *denseGraph, opts Options) *pairRunner {
	return &pairRunner{
		g:    g,
		opts: opts,
		best: make([]label, g.n*g.n),
		pq:   make(pairPQ, 0, g.n*g.n),
	}
}

// run executes init, the main loop, and the destination scan.
func (r *pairRunner) run() (Result, error) {
	r.init()
	if err := r.process(); err != nil {
		return Result{}, err
	}

	return r.result(), nil
}

// init sets every pair to (Infinity, Infinity) except (source, source) = (0, 0)
// and seeds the heap with the source.
func (r *pairRunner) init() {
	for k := range r.best {
		r.best[k] = label{cost: Infinity, time: Infinity}
	}
	r.best[source*r.g.n+source] = label{cost: 0, time: 0}

	heap.Init(&r.pq)
	r.push(0, source, source, 0)
}

// push appends a frontier entry.
func (r *pairRunner) push(cost int64, node, from int, time int64) {
	heap.Push(&r.pq, &pairItem{cost: cost, node: node, from: from, time: time, seq: r.seq})
	r.seq++
	r.stats.Pushes++
}

// process pops entries until the heap is empty, skipping stale ones.
func (r *pairRunner) process() error {
	n := r.g.n
	var (
		item *pairItem
		cur  label
	)
	for r.pq.Len() > 0 {
		if err := interrupted(r.opts); err != nil {
			return err
		}

		// 1) Pop the cheapest entry.
		item = heap.Pop(&r.pq).(*pairItem)
		r.stats.Pops++

		// 2) A cheaper arrival for the same pair was recorded after this push.
		cur = r.best[item.from*n+item.node]
		if item.cost > cur.cost {
			r.stats.StaleSkips++
			continue
		}

		// 3) Relax every other node.
		r.relax(item.node, cur)
	}

	return nil
}

// relax tries every edge u→v (v ≠ u) starting from the pair label cur.
func (r *pairRunner) relax(u int, cur label) {
	n := r.g.n
	limit := r.opts.TimeLimit
	row := u * n
	var (
		v    int
		c, t int64
		rec  *label
	)
	for v = 0; v < n; v++ {
		if v == u || r.g.missing[row+v] {
			continue
		}
		r.stats.Relaxations++

		c = addSat(cur.cost, r.g.cost[row+v])
		t = addSat(cur.time, r.g.time[row+v])
		rec = &r.best[row+v] // pair (u, v)

		switch {
		case c < rec.cost && t < limit:
			rec.cost, rec.time = c, t
			r.push(c, v, u, t)
		case c == rec.cost && c != Infinity && t < rec.time:
			rec.time = t
			r.stats.TimeTightenings++
		}
	}
}

// result scans column n-1 of the table across every predecessor.
func (r *pairRunner) result() Result {
	n := r.g.n
	dest := n - 1
	best := r.best[dest] // predecessor 0
	var (
		p   int
		cur label
	)
	for p = 1; p < n; p++ {
		cur = r.best[p*n+dest]
		if cur.cost < best.cost {
			best = cur
			continue
		}
		if r.opts.TieBreak == TieBreakMinTime && cur.cost == best.cost && cur.time < best.time {
			best = cur
		}
	}
	if best.cost == Infinity {
		return infeasible(r.stats)
	}

	return Result{Cost: best.cost, Time: best.time, Feasible: true, Stats: r.stats}
}

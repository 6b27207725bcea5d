// SPDX-License-Identifier: MIT

// Package cspath - Exact search.
//
// Resource-constrained label setting: every node keeps a front of
// non-dominated (cost, time) labels. A label is dominated when another label
// at the same node has cost ≤ and time ≤. Labels are popped in (cost, time)
// order, so the first destination label popped is the optimum, and ties on
// cost resolve to the smaller time.
//
// With non-negative weights dominance also guarantees termination: a cycle
// can only produce labels dominated by the ones that entered it. Labels that
// cannot reach the destination in time (see timeToDest) are never created.
package cspath

import "container/heap"

// exactRunner holds the mutable state for a single Exact execution.
type exactRunner struct {
	g      *denseGraph
	opts   Options
	labels []label  // arena; parent links index into it
	fronts [][]int  // fronts[v] = indices of live labels at node v
	pq     *labelPQ // heap of label indices
	bound  []int64  // minimum remaining time to the destination
	stats  Stats
}

func newExactRunner(g *denseGraph, opts Options) *exactRunner {
	r := &exactRunner{
		g:      g,
		opts:   opts,
		labels: make([]label, 0, g.n*g.n),
		fronts: make([][]int, g.n),
		bound:  timeToDest(g),
	}
	r.pq = &labelPQ{labels: &r.labels}

	return r
}

// run seeds the source label and pops until the destination is settled.
func (r *exactRunner) run() (Result, error) {
	dest := r.g.n - 1
	heap.Init(r.pq)
	r.add(label{cost: 0, time: 0, node: source, parent: -1})

	var (
		idx int
		cur label
	)
	for r.pq.Len() > 0 {
		if err := interrupted(r.opts); err != nil {
			return Result{}, err
		}
		idx = heap.Pop(r.pq).(int)
		r.stats.Pops++

		cur = r.labels[idx]
		if cur.dead {
			r.stats.StaleSkips++
			continue
		}
		if cur.node == dest {
			res := Result{Cost: cur.cost, Time: cur.time, Feasible: true, Stats: r.stats}
			if r.opts.ReturnPath {
				res.Path = r.path(idx)
			}

			return res, nil
		}
		r.expand(idx, cur)
	}

	return infeasible(r.stats), nil
}

// expand extends label idx along every present edge u→v, v ≠ u.
func (r *exactRunner) expand(idx int, cur label) {
	n := r.g.n
	u := cur.node
	row := u * n
	var (
		v    int
		c, t int64
	)
	for v = 0; v < n; v++ {
		if v == u || r.g.missing[row+v] {
			continue
		}
		r.stats.Relaxations++

		t = addSat(cur.time, r.g.time[row+v])
		if t >= r.opts.TimeLimit {
			continue
		}
		if addSat(t, r.bound[v]) >= r.opts.TimeLimit {
			r.stats.BoundPrunes++
			continue
		}
		c = addSat(cur.cost, r.g.cost[row+v])
		if c == Infinity || r.dominated(v, c, t) {
			continue
		}
		r.add(label{cost: c, time: t, node: v, parent: idx})
	}
}

// dominated reports whether some live label at v is no worse in both resources.
func (r *exactRunner) dominated(v int, c, t int64) bool {
	var l *label
	for _, k := range r.fronts[v] {
		l = &r.labels[k]
		if l.cost <= c && l.time <= t {
			return true
		}
	}

	return false
}

// add stores a new label, evicts the labels it dominates from its node's
// front (marking them dead for lazy deletion), and pushes it.
func (r *exactRunner) add(l label) {
	idx := len(r.labels)
	r.labels = append(r.labels, l)

	front := r.fronts[l.node][:0]
	for _, k := range r.fronts[l.node] {
		if l.cost <= r.labels[k].cost && l.time <= r.labels[k].time {
			r.labels[k].dead = true
			continue
		}
		front = append(front, k)
	}
	r.fronts[l.node] = append(front, idx)

	heap.Push(r.pq, idx)
	r.stats.Pushes++
}

// path walks parent links back to the source.
func (r *exactRunner) path(idx int) []int {
	var rev []int
	for k := idx; k >= 0; k = r.labels[k].parent {
		rev = append(rev, r.labels[k].node)
	}
	out := make([]int, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}

	return out
}

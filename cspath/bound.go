// SPDX-License-Identifier: MIT

package cspath

// timeToDest returns, for every node v, the minimum total time of any walk
// v→…→n-1 over present edges, or Infinity when n-1 is unreachable from v.
//
// Any extension of a label at v must spend at least this much more time, so
// Exact discards labels with time + bound ≥ TimeLimit without losing optimal
// answers.
//
// Complexity: O(n²) with linear-scan selection on the complete graph.
func timeToDest(g *denseGraph) []int64 {
	n := g.n
	dist := make([]int64, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = Infinity
	}
	dist[n-1] = 0

	var (
		i, u, v int
		d       int64
	)
	for i = 0; i < n; i++ {
		// 1) Select the closest unsettled node.
		u = -1
		for v = 0; v < n; v++ {
			if !done[v] && dist[v] != Infinity && (u < 0 || dist[v] < dist[u]) {
				u = v
			}
		}
		if u < 0 {
			break // the rest cannot reach the destination
		}
		done[u] = true

		// 2) Relax reversed edges v→u.
		for v = 0; v < n; v++ {
			if done[v] || g.missing[v*n+u] {
				continue
			}
			d = addSat(dist[u], g.time[v*n+u])
			if d < dist[v] {
				dist[v] = d
			}
		}
	}

	return dist
}

package cspath_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cspath/matrix"
)

// mustDense builds a matrix from literal rows or fails the test.
func mustDense(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// sampleTime and sampleCost are the three-node instance whose answer is
// "4 2": 0→1→2 costs 2+2 and takes 1+1.
func sampleTime(t testing.TB) *matrix.Dense {
	return mustDense(t, [][]int64{{0, 1, 5}, {1, 0, 1}, {5, 1, 0}})
}

func sampleCost(t testing.TB) *matrix.Dense {
	return mustDense(t, [][]int64{{0, 2, 10}, {2, 0, 2}, {10, 2, 0}})
}

// randomInstance returns n×n cost/time matrices with costs in [0,maxCost]
// and times in [1,maxTime]. Times are at least 1 so brute force terminates.
func randomInstance(t testing.TB, r *rand.Rand, n int, maxCost, maxTime int64) (cost, tm *matrix.Dense) {
	t.Helper()
	c := make([][]int64, n)
	d := make([][]int64, n)
	for i := 0; i < n; i++ {
		c[i] = make([]int64, n)
		d[i] = make([]int64, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			c[i][j] = r.Int63n(maxCost + 1)
			d[i][j] = 1 + r.Int63n(maxTime)
		}
	}

	return mustDense(t, c), mustDense(t, d)
}

// bruteForce enumerates every walk from 0 whose prefix times stay below
// limit and returns the best (cost, time) reaching n-1, minimum cost first.
// Every time entry off the diagonal must be ≥ 1.
func bruteForce(t testing.TB, cost, tm *matrix.Dense, limit int64) (bestCost, bestTime int64, ok bool) {
	t.Helper()
	n := cost.Rows()
	dest := n - 1

	var walk func(u int, c, d int64)
	walk = func(u int, c, d int64) {
		if u == dest {
			if !ok || c < bestCost || (c == bestCost && d < bestTime) {
				bestCost, bestTime, ok = c, d, true
			}
		}
		for v := 0; v < n; v++ {
			if v == u {
				continue
			}
			ec, err := cost.At(u, v)
			require.NoError(t, err)
			et, err := tm.At(u, v)
			require.NoError(t, err)
			if d+et >= limit {
				continue
			}
			walk(v, c+ec, d+et)
		}
	}
	walk(0, 0, 0)

	return bestCost, bestTime, ok
}

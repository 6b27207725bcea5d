// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/cspath/cspath"
	"github.com/katalvlaran/cspath/internal/logging"
	"github.com/katalvlaran/cspath/matrix"
)

type solveRequest struct {
	Time             [][]int64 `json:"time" binding:"required"`
	Cost             [][]int64 `json:"cost" binding:"required"`
	TimeLimit        *int64    `json:"time_limit" binding:"required"`
	Strategy         string    `json:"strategy" binding:"omitempty,oneof=pair-label exact"`
	TieBreak         string    `json:"tie_break" binding:"omitempty,oneof=min-time first-seen"`
	InfEdgeThreshold int64     `json:"inf_edge_threshold" binding:"gte=0"`
	ReturnPath       bool      `json:"return_path"`
}

type statsResponse struct {
	Pushes          int `json:"pushes"`
	Pops            int `json:"pops"`
	StaleSkips      int `json:"stale_skips"`
	Relaxations     int `json:"relaxations"`
	TimeTightenings int `json:"time_tightenings"`
	BoundPrunes     int `json:"bound_prunes"`
}

type solveResponse struct {
	Feasible bool          `json:"feasible"`
	Cost     *int64        `json:"cost,omitempty"`
	Time     *int64        `json:"time,omitempty"`
	Path     []int         `json:"path,omitempty"`
	Stats    statsResponse `json:"stats"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSolve(c *gin.Context) {
	log := requestLog(c)

	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if n := max(order(req.Time), order(req.Cost)); n > s.cfg.MaxNodes {
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "graph exceeds server.max_nodes"})
		return
	}

	tm, err := matrix.FromRows(req.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "time: " + err.Error()})
		return
	}
	cost, err := matrix.FromRows(req.Cost)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "cost: " + err.Error()})
		return
	}

	sc := s.solver
	if req.Strategy != "" {
		sc.Strategy = req.Strategy
	}
	if req.TieBreak != "" {
		sc.TieBreak = req.TieBreak
	}
	if req.InfEdgeThreshold > 0 {
		sc.InfEdgeThreshold = req.InfEdgeThreshold
	}
	opts, err := sc.Options()
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.SolveTimeout)
	defer cancel()
	opts = append(opts, cspath.WithTimeLimit(*req.TimeLimit), cspath.WithContext(ctx))
	if req.ReturnPath {
		opts = append(opts, cspath.WithReturnPath())
	}

	start := time.Now()
	res, err := cspath.Solve(cost, tm, opts...)
	strategy, _ := cspath.ParseStrategy(sc.Strategy)
	s.rec.Observe(strategy, res, err, time.Since(start))

	switch {
	case err == nil, errors.Is(err, cspath.ErrInfeasible):
		c.JSON(http.StatusOK, toResponse(res))
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		log.Warn(ctx, "solve interrupted", logging.Err(err), logging.Int("nodes", tm.Rows()))
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
}

// order is the larger of the row count and the widest row, so oversized
// bodies are refused before any matrix is allocated.
func order(rows [][]int64) int {
	n := len(rows)
	for _, r := range rows {
		n = max(n, len(r))
	}

	return n
}

func toResponse(res cspath.Result) solveResponse {
	out := solveResponse{
		Feasible: res.Feasible,
		Path:     res.Path,
		Stats: statsResponse{
			Pushes:          res.Stats.Pushes,
			Pops:            res.Stats.Pops,
			StaleSkips:      res.Stats.StaleSkips,
			Relaxations:     res.Stats.Relaxations,
			TimeTightenings: res.Stats.TimeTightenings,
			BoundPrunes:     res.Stats.BoundPrunes,
		},
	}
	if res.Feasible {
		out.Cost, out.Time = &res.Cost, &res.Time
	}

	return out
}

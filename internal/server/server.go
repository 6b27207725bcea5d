// SPDX-License-Identifier: MIT

// Package server exposes the solver over HTTP with gin.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cspath/internal/config"
	"github.com/katalvlaran/cspath/internal/logging"
	"github.com/katalvlaran/cspath/internal/metrics"
)

// Server owns the gin engine and its dependencies.
type Server struct {
	cfg    config.ServerConfig
	solver config.SolverConfig
	log    logging.Logger
	rec    *metrics.Recorder
	engine *gin.Engine
}

// New builds a Server. A nil logger is replaced with logging.Noop.
func New(cfg config.Config, log logging.Logger, rec *metrics.Recorder) *Server {
	if log == nil {
		log = logging.Noop()
	}
	s := &Server{
		cfg:    cfg.Server,
		solver: cfg.Solver,
		log:    log,
		rec:    rec,
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.routes()

	return s
}

func (s *Server) routes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(s.rec.Handler()))
	s.engine.POST("/v1/solve", s.handleSolve)
}

// Handler returns the HTTP handler, e.g. for httptest.
func (s *Server) Handler() http.Handler { return s.engine }

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// within ShutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info(gctx, "listening", logging.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: serve: %w", err)
		}

		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.log.Info(shutdownCtx, "shutting down")

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

const loggerKey = "logger"

// requestLogger tags each request with a run_id and logs its outcome.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		ctx, log := logging.WithRunLogger(c.Request.Context(), s.log)
		c.Request = c.Request.WithContext(ctx)
		c.Set(loggerKey, log)
		c.Header("X-Run-ID", logging.RunIDFromContext(ctx))

		c.Next()

		log.Info(ctx, "request",
			logging.String("method", c.Request.Method),
			logging.String("path", c.FullPath()),
			logging.Int("status", c.Writer.Status()),
			logging.Duration("duration", time.Since(start)),
		)
	}
}

func requestLog(c *gin.Context) logging.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if log, ok := v.(logging.Logger); ok {
			return log
		}
	}

	return logging.Noop()
}

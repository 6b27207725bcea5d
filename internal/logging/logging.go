// SPDX-License-Identifier: MIT

// Package logging is the structured logger of the cspath command and HTTP
// server. Solver answers own stdout, so log lines go to stderr unless a
// Config says otherwise; a run_id ties every line of one `cspath solve` run
// or one HTTP request together. The solver, instance and matrix packages
// never log.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field is one key/value on a log line.
type Field = slog.Attr

// Field constructors used across the command and server.
func String(key, value string) Field                 { return slog.String(key, value) }
func Int(key string, value int) Field                { return slog.Int(key, value) }
func Int64(key string, value int64) Field            { return slog.Int64(key, value) }
func Bool(key string, value bool) Field              { return slog.Bool(key, value) }
func Duration(key string, value time.Duration) Field { return slog.Duration(key, value) }

// Err records err under the "error" key.
func Err(err error) Field { return slog.Any("error", err) }

// Logger is what commands and handlers receive. Every method takes the
// request or run context so handlers can read values from it.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Config mirrors the log section of the cspath config file.
type Config struct {
	Level     string // debug, info, warn, error
	Format    string // text (default) or json
	AddSource bool
	Output    io.Writer // nil means os.Stderr; stdout is reserved for answers
}

// New builds a Logger over a slog text or JSON handler.
func New(cfg Config) Logger {
	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	ho := &slog.HandlerOptions{Level: ParseLevel(cfg.Level), AddSource: cfg.AddSource}

	var h slog.Handler = slog.NewTextHandler(w, ho)
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(w, ho)
	}

	return &handlerLogger{l: slog.New(h)}
}

// Noop discards everything.
func Noop() Logger { return discard{} }

type handlerLogger struct {
	l *slog.Logger
}

func (h *handlerLogger) log(ctx context.Context, lvl slog.Level, msg string, fields []Field) {
	h.l.LogAttrs(ctx, lvl, msg, fields...)
}

func (h *handlerLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	h.log(ctx, slog.LevelDebug, msg, fields)
}

func (h *handlerLogger) Info(ctx context.Context, msg string, fields ...Field) {
	h.log(ctx, slog.LevelInfo, msg, fields)
}

func (h *handlerLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	h.log(ctx, slog.LevelWarn, msg, fields)
}

func (h *handlerLogger) Error(ctx context.Context, msg string, fields ...Field) {
	h.log(ctx, slog.LevelError, msg, fields)
}

func (h *handlerLogger) With(fields ...Field) Logger {
	args := make([]any, len(fields))
	for i, f := range fields {
		args[i] = f
	}

	return &handlerLogger{l: h.l.With(args...)}
}

type discard struct{}

func (discard) Debug(context.Context, string, ...Field) {}
func (discard) Info(context.Context, string, ...Field)  {}
func (discard) Warn(context.Context, string, ...Field)  {}
func (discard) Error(context.Context, string, ...Field) {}
func (discard) With(...Field) Logger                    { return discard{} }

// ParseLevel maps a --log-level value to a slog level. Matching ignores case
// and anything unrecognised logs at info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return slog.LevelInfo
}

type runIDKey struct{}

// EnsureRunID returns ctx carrying a run_id, minting a UUID only when ctx
// has none, so nested calls within one solve run or request share it.
func EnsureRunID(ctx context.Context) (context.Context, string) {
	if ctx == nil {
		ctx = context.Background()
	}
	if id := RunIDFromContext(ctx); id != "" {
		return ctx, id
	}
	id := uuid.NewString()

	return context.WithValue(ctx, runIDKey{}, id), id
}

// RunIDFromContext returns the run_id set by EnsureRunID, or "".
func RunIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)

	return id
}

// WithRunLogger is what each command and request starts with: a context with
// a run_id and a logger that stamps it on every line. A nil base yields Noop.
func WithRunLogger(ctx context.Context, base Logger) (context.Context, Logger) {
	if base == nil {
		base = Noop()
	}
	ctx, id := EnsureRunID(ctx)

	return ctx, base.With(String("run_id", id))
}

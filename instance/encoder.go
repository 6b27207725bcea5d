// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/katalvlaran/cspath/cspath"
)

// DefaultSentinel is printed for both fields of an infeasible answer under
// InfeasibleSentinel. It is the 32-bit "infinity" historical judges expect.
const DefaultSentinel int64 = math.MaxInt32

// ErrUnknownPolicy indicates an unsupported InfeasiblePolicy spelling.
var ErrUnknownPolicy = errors.New("instance: unknown infeasible policy")

// InfeasiblePolicy decides what Encode does with an infeasible Result.
type InfeasiblePolicy int

const (
	// InfeasibleSentinel prints "<sentinel> <sentinel>".
	InfeasibleSentinel InfeasiblePolicy = iota

	// InfeasibleError writes nothing and returns cspath.ErrInfeasible.
	InfeasibleError
)

// String returns the configuration spelling of the policy.
func (p InfeasiblePolicy) String() string {
	switch p {
	case InfeasibleSentinel:
		return "sentinel"
	case InfeasibleError:
		return "error"
	default:
		return fmt.Sprintf("InfeasiblePolicy(%d)", int(p))
	}
}

// ParseInfeasiblePolicy maps "sentinel" and "error" to policies.
func ParseInfeasiblePolicy(s string) (InfeasiblePolicy, error) {
	switch s {
	case "sentinel", "":
		return InfeasibleSentinel, nil
	case "error":
		return InfeasibleError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Encoder writes one "<cost> <time>\n" line per Result. Output is buffered;
// call Flush when done.
type Encoder struct {
	w        *bufio.Writer
	policy   InfeasiblePolicy
	sentinel int64
	buf      []byte
}

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithInfeasiblePolicy selects sentinel output or an error.
func WithInfeasiblePolicy(p InfeasiblePolicy) EncoderOption {
	return func(e *Encoder) {
		e.policy = p
	}
}

// WithSentinel overrides DefaultSentinel.
func WithSentinel(v int64) EncoderOption {
	return func(e *Encoder) {
		e.sentinel = v
	}
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer, opts ...EncoderOption) *Encoder {
	e := &Encoder{
		w:        bufio.NewWriter(w),
		policy:   InfeasibleSentinel,
		sentinel: DefaultSentinel,
		buf:      make([]byte, 0, 48),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Encode writes the answer line for res.
func (e *Encoder) Encode(res cspath.Result) error {
	cost, tm := res.Cost, res.Time
	if !res.Feasible {
		if e.policy == InfeasibleError {
			return cspath.ErrInfeasible
		}
		cost, tm = e.sentinel, e.sentinel
	}

	e.buf = strconv.AppendInt(e.buf[:0], cost, 10)
	e.buf = append(e.buf, ' ')
	e.buf = strconv.AppendInt(e.buf, tm, 10)
	e.buf = append(e.buf, '\n')
	_, err := e.w.Write(e.buf)

	return err
}

// Flush writes any buffered output.
func (e *Encoder) Flush() error { return e.w.Flush() }

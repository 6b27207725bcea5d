// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/cspath/matrix"
)

// Sentinel errors returned by the Decoder.
var (
	// ErrSyntax indicates a token that is not a base-10 integer.
	ErrSyntax = errors.New("instance: malformed integer token")

	// ErrTruncated indicates that the stream ended in the middle of a record.
	ErrTruncated = errors.New("instance: unexpected end of input inside a record")

	// ErrBadHeader indicates a negative node count, or zero nodes with a
	// non-zero time limit.
	ErrBadHeader = errors.New("instance: invalid record header")

	// ErrTooLarge indicates a node count above the decoder's MaxNodes.
	ErrTooLarge = errors.New("instance: graph exceeds the configured node limit")

	// ErrMissingSentinel indicates a clean end of input without the "0 0"
	// terminator while the decoder runs in strict mode.
	ErrMissingSentinel = errors.New("instance: input ended without the 0 0 terminator")
)

// DefaultMaxNodes bounds n so that a corrupt header cannot request an
// unbounded allocation (two n×n int64 matrices).
const DefaultMaxNodes = 2048

// Instance is one decoded query.
type Instance struct {
	Index     int           // zero-based position in the stream
	TimeLimit int64         // strict bound on accumulated time
	Time      *matrix.Dense // TimeMatrix, read first
	Cost      *matrix.Dense // CostMatrix, read second
}

// Nodes returns the order of the instance's matrices.
func (in *Instance) Nodes() int { return in.Time.Rows() }

// Decoder reads whitespace-delimited records:
//
//	n limit
//	n×n time entries (row-major)
//	n×n cost entries (row-major)
//
// until a "0 0" header.
type Decoder struct {
	sc       *bufio.Scanner
	strict   bool
	maxNodes int
	index    int  // index of the next record
	token    int  // tokens consumed so far, for error positions
	done     bool // terminator seen or stream exhausted
}

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithStrictSentinel makes a missing "0 0" terminator an error
// (ErrMissingSentinel) instead of a normal end of stream.
func WithStrictSentinel() DecoderOption {
	return func(d *Decoder) {
		d.strict = true
	}
}

// WithMaxNodes overrides DefaultMaxNodes. Values ≤ 0 are ignored.
func WithMaxNodes(n int) DecoderOption {
	return func(d *Decoder) {
		if n > 0 {
			d.maxNodes = n
		}
	}
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	d := &Decoder{sc: sc, maxNodes: DefaultMaxNodes}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Next decodes the next record. It returns io.EOF after the terminator (or
// at a clean end of input in lenient mode). Any other error is final: the
// stream position is unknown afterwards and callers should stop.
func (d *Decoder) Next() (*Instance, error) {
	if d.done {
		return nil, io.EOF
	}

	// 1) Header. A clean EOF here is a record boundary.
	n, err := d.next()
	if errors.Is(err, io.EOF) {
		d.done = true
		if d.strict {
			return nil, ErrMissingSentinel
		}

		return nil, io.EOF
	}
	if err != nil {
		return nil, err
	}
	limit, err := d.nextInRecord()
	if err != nil {
		return nil, err
	}

	// 2) Terminator and header checks.
	if n == 0 && limit == 0 {
		d.done = true

		return nil, io.EOF
	}
	if n <= 0 {
		return nil, fmt.Errorf("record %d: nodes=%d limit=%d: %w", d.index, n, limit, ErrBadHeader)
	}
	if n > int64(d.maxNodes) {
		return nil, fmt.Errorf("record %d: nodes=%d > %d: %w", d.index, n, d.maxNodes, ErrTooLarge)
	}

	// 3) Matrices: time first, then cost.
	in := &Instance{Index: d.index, TimeLimit: limit}
	if in.Time, err = d.readSquare(int(n)); err != nil {
		return nil, err
	}
	if in.Cost, err = d.readSquare(int(n)); err != nil {
		return nil, err
	}
	d.index++

	return in, nil
}

// readSquare fills an n×n matrix in row-major order.
func (d *Decoder) readSquare(n int) (*matrix.Dense, error) {
	m, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    int64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = d.nextInRecord(); err != nil {
				return nil, err
			}
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// nextInRecord is next with io.EOF promoted to ErrTruncated.
func (d *Decoder) nextInRecord() (int64, error) {
	v, err := d.next()
	if errors.Is(err, io.EOF) {
		d.done = true

		return 0, fmt.Errorf("record %d, token %d: %w", d.index, d.token, ErrTruncated)
	}

	return v, err
}

// next scans and parses one token.
func (d *Decoder) next() (int64, error) {
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			d.done = true

			return 0, fmt.Errorf("instance: read: %w", err)
		}

		return 0, io.EOF
	}
	d.token++
	tok := d.sc.Text()
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		d.done = true

		return 0, fmt.Errorf("record %d, token %d %q: %w", d.index, d.token, tok, ErrSyntax)
	}

	return v, nil
}

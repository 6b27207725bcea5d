// SPDX-License-Identifier: MIT

package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/cspath/matrix"
)

// Writer emits records in the format the Decoder reads: header, TimeMatrix
// rows, CostMatrix rows. Close appends the "0 0" terminator.
type Writer struct {
	w   *bufio.Writer
	buf []byte
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w), buf: make([]byte, 0, 256)}
}

// Write emits one record.
func (w *Writer) Write(in *Instance) error {
	if in == nil || in.Time == nil || in.Cost == nil {
		return fmt.Errorf("instance: write: %w", ErrBadHeader)
	}
	n := in.Time.Rows()
	if in.Cost.Rows() != n {
		return fmt.Errorf("instance: write: time has %d rows, cost %d: %w", n, in.Cost.Rows(), ErrBadHeader)
	}

	w.buf = strconv.AppendInt(w.buf[:0], int64(n), 10)
	w.buf = append(w.buf, ' ')
	w.buf = strconv.AppendInt(w.buf, in.TimeLimit, 10)
	w.buf = append(w.buf, '\n')
	if _, err := w.w.Write(w.buf); err != nil {
		return err
	}

	for _, m := range []*matrix.Dense{in.Time, in.Cost} {
		for i := 0; i < n; i++ {
			row, err := m.Row(i)
			if err != nil {
				return err
			}
			w.buf = w.buf[:0]
			for j, v := range row {
				if j > 0 {
					w.buf = append(w.buf, ' ')
				}
				w.buf = strconv.AppendInt(w.buf, v, 10)
			}
			w.buf = append(w.buf, '\n')
			if _, err := w.w.Write(w.buf); err != nil {
				return err
			}
		}
	}

	return nil
}

// Close writes the terminator and flushes. It does not close the
// underlying writer.
func (w *Writer) Close() error {
	if _, err := w.w.WriteString("0 0\n"); err != nil {
		return err
	}

	return w.w.Flush()
}

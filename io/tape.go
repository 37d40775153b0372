package io

import (
	"fmt"
	"io"
)

// Tape records every displayed output, optionally echoing each one to
// an io.Writer as a "PC Dec Hex" line.
type Tape struct {
	Output   io.Writer // If set, receives a line per output.
	Capacity int       // If non-zero, the maximum number of records.
	Record   []Output  // Outputs recorded since the last rewind.
}

var _ Display = (*Tape)(nil)

// Rewind discards all recorded outputs.
func (tc *Tape) Rewind() {
	if len(tc.Record) > 0 {
		tc.Record = tc.Record[:0]
	}
}

// Show records an output.
func (tc *Tape) Show(out Output) (err error) {
	if tc.Capacity != 0 && len(tc.Record) >= tc.Capacity {
		err = ErrTapeFull
		return
	}

	tc.Record = append(tc.Record, out)

	if tc.Output != nil {
		_, err = fmt.Fprintf(tc.Output, "%d %d %v\n", out.Pc, out.Value, out.Hex())
	}

	return
}

// Values returns the recorded register A values, in order.
func (tc *Tape) Values() (values []uint64) {
	for _, out := range tc.Record {
		values = append(values, out.Value)
	}
	return
}

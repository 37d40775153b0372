// Package io provides sinks for the output of the SAP OUT instruction.
package io

import (
	"fmt"
)

// Output is a single value displayed by an OUT instruction.
type Output struct {
	Pc    int    // Address of the OUT instruction.
	Value uint64 // Value of register A.
}

// Hex returns the value as 0x prefixed hex, at least two hexits wide.
func (out Output) Hex() string {
	return fmt.Sprintf("0x%02x", out.Value)
}

// Display receives the output of OUT instructions.
type Display interface {
	// Show displays a single output value.
	Show(out Output) error
}

// Displays shows each output on every display in turn.
type Displays []Display

var _ Display = Displays(nil)

// Show displays an output, stopping at the first error.
func (ds Displays) Show(out Output) (err error) {
	for _, d := range ds {
		err = d.Show(out)
		if err != nil {
			return
		}
	}
	return
}

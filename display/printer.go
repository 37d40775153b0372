package display

import (
	"io"

	"github.com/ezrec/sapsim/cpu"
	sapio "github.com/ezrec/sapsim/io"
)

// Printer writes machine state tables to a writer.
// It is also an OUT display, printing a table per output value.
type Printer struct {
	Renderer
	Writer io.Writer
}

var _ sapio.Display = (*Printer)(nil)

// NewPrinter returns a printer with the outline style.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		Renderer: Renderer{Style: STYLE_OUTLINE},
		Writer:   w,
	}
}

// Show prints an OUT value.
func (p *Printer) Show(out sapio.Output) error {
	return p.Render(p.Writer, OutputTable(out))
}

// Memory prints the memory table.
func (p *Printer) Memory(state cpu.State) error {
	return p.Render(p.Writer, MemoryTable(state))
}

// Info prints the register table.
func (p *Printer) Info(state cpu.State, prior *cpu.State) error {
	return p.Render(p.Writer, InfoTable(state, prior))
}

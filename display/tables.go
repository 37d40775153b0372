package display

import (
	"fmt"
	"strconv"

	"github.com/ezrec/sapsim/cpu"
	"github.com/ezrec/sapsim/io"
)

// Hex formats a value as 0x prefixed hex, at least two hexits wide.
func Hex(value uint64) string {
	return fmt.Sprintf("0x%02x", value)
}

func flag(value bool) string {
	if value {
		return "1"
	}
	return "0"
}

// MemoryTable lists mapped memory in address order, marking the PC row.
// Every byte is shown as an instruction, since code and data look the same.
func MemoryTable(state cpu.State) (table *Table) {
	table = &Table{
		Header:    []string{"PC", "Addr", "Instruction", "Dec", "Hex"},
		Highlight: map[int]bool{},
	}

	for addr, value := range state.Memory.All() {
		marker := ""
		if addr == state.Pc {
			marker = ">"
			table.Highlight[len(table.Rows)] = true
		}
		table.Rows = append(table.Rows, []string{
			marker,
			strconv.Itoa(addr),
			cpu.CodeOf(value).String(),
			strconv.FormatUint(value, 10),
			Hex(value),
		})
	}

	return
}

// InfoTable lists the registers and flags.
// When prior is not nil, rows that differ from it are highlighted.
func InfoTable(state cpu.State, prior *cpu.State) (table *Table) {
	table = &Table{
		Highlight: map[int]bool{},
	}

	rows := []struct {
		name    string
		value   string
		changed bool
	}{
		{"PC", strconv.Itoa(state.Pc), prior != nil && prior.Pc != state.Pc},
		{"Reg A", strconv.FormatUint(state.A, 10), prior != nil && prior.A != state.A},
		{"Reg B", strconv.FormatUint(state.B, 10), prior != nil && prior.B != state.B},
		{"FlagC", flag(state.Carry), prior != nil && prior.Carry != state.Carry},
		{"FlagZ", flag(state.Zero), prior != nil && prior.Zero != state.Zero},
	}

	for n, row := range rows {
		table.Rows = append(table.Rows, []string{row.name, row.value})
		if row.changed {
			table.Highlight[n] = true
		}
	}

	return
}

// OutputTable shows a single OUT value.
func OutputTable(out io.Output) (table *Table) {
	table = &Table{
		Header: []string{"PC", "Dec", "Hex"},
		Rows: [][]string{
			{strconv.Itoa(out.Pc), strconv.FormatUint(out.Value, 10), out.Hex()},
		},
	}
	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"log"
	"strings"

	"github.com/ezrec/sapsim/io"
)

// Word width limits, in bits.
const (
	DEFAULT_WIDTH = 8
	MIN_WIDTH     = 2
	MAX_WIDTH     = 32
)

// Patch is an external overwrite of a memory address.
type Patch struct {
	Address int
	Value   int64
}

// State is a snapshot of the machine.
type State struct {
	Memory    Memory
	Pc        int
	A         uint64
	B         uint64
	Carry     bool
	Zero      bool
	Executing bool
	Width     int
}

// Cpu is the simulation context for a SAP machine.
type Cpu struct {
	Verbose bool       // Set to enable verbose logging.
	Display io.Display // Receives the output of OUT instructions.

	Memory    Memory // Sparse program and data memory.
	Pc        int    // Program counter. Not masked to the address space.
	A         uint64 // Register A.
	B         uint64 // Register B.
	Carry     bool   // Carry flag, set by ADD and SUB.
	Zero      bool   // Zero flag, set by ADD and SUB.
	Executing bool   // Cleared by HLT.

	width int
}

// NewCpu creates a reset CPU with the default word width.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{width: DEFAULT_WIDTH}
	cpu.Reset()

	return
}

// Reset clears memory, registers and flags, and resumes execution.
// The word width is unchanged.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset, %d bit registers", cpu.Width())
	}

	cpu.Memory = Memory{}
	cpu.Pc = 0
	cpu.A = 0
	cpu.B = 0
	cpu.Carry = false
	cpu.Zero = false
	cpu.Executing = true
}

// Width returns the number of bits in the registers.
func (cpu *Cpu) Width() int {
	if cpu.width == 0 {
		return DEFAULT_WIDTH
	}
	return cpu.width
}

// SetWidth sets the number of bits in the registers, and resets the CPU.
func (cpu *Cpu) SetWidth(width int) (err error) {
	if width < MIN_WIDTH || width > MAX_WIDTH {
		err = ErrWidth
		return
	}

	cpu.width = width
	cpu.Reset()

	return
}

// Max returns the largest unsigned value a register can hold.
func (cpu *Cpu) Max() uint64 {
	return (uint64(1) << cpu.Width()) - 1
}

// fits validates a candidate register value.
func (cpu *Cpu) fits(name string, value int64) (err error) {
	switch {
	case value < 0:
		err = &ErrRegister{Register: name, Value: value, Width: cpu.Width(), Err: ErrRegisterNegative}
	case uint64(value) > cpu.Max():
		err = &ErrRegister{Register: name, Value: value, Width: cpu.Width(), Err: ErrRegisterOverflow}
	}
	return
}

// SetA assigns register A, if the value fits in the word width.
func (cpu *Cpu) SetA(value int64) (err error) {
	err = cpu.fits("A", value)
	if err != nil {
		return
	}
	cpu.A = uint64(value)
	return
}

// SetB assigns register B, if the value fits in the word width.
func (cpu *Cpu) SetB(value int64) (err error) {
	err = cpu.fits("B", value)
	if err != nil {
		return
	}
	cpu.B = uint64(value)
	return
}

// Load resets the CPU and installs a program image.
// Addresses must be in 0 to 15, with at most 16 mapped.
func (cpu *Cpu) Load(image map[int]uint8) (err error) {
	if len(image) > MEMORY_SLOTS {
		err = ErrTooManyAddresses
		return
	}

	for addr := range image {
		if addr < 0 || addr > MAX_ADDRESS {
			err = &ErrAddress{Address: addr, Err: ErrAddressRange}
			return
		}
	}

	cpu.Reset()
	for addr, value := range image {
		cpu.Memory.Store(addr, uint64(value))
	}

	if cpu.Verbose {
		log.Printf("cpu: loaded %d addresses", len(cpu.Memory))
	}

	return
}

// Patch overwrites memory before execution.
// All patches are validated before any is applied. Patching an unmapped
// address maps it, and reports a WarnPatchUnmapped warning.
func (cpu *Cpu) Patch(patches ...Patch) (warnings []error, err error) {
	for _, patch := range patches {
		if patch.Address < 0 || patch.Address > MAX_ADDRESS {
			err = &ErrPatch{Patch: patch, Err: ErrAddressRange}
			return
		}
		if patch.Value < 0 || uint64(patch.Value) > cpu.Max() {
			err = &ErrPatch{Patch: patch, Err: ErrValueRange}
			return
		}
	}

	for _, patch := range patches {
		if !cpu.Memory.Mapped(patch.Address) {
			warnings = append(warnings, WarnPatchUnmapped(patch.Address))
		}
		cpu.Memory.Store(patch.Address, uint64(patch.Value))
	}

	return
}

// State returns a snapshot of the CPU, with a private copy of memory.
func (cpu *Cpu) State() State {
	return State{
		Memory:    cpu.Memory.Clone(),
		Pc:        cpu.Pc,
		A:         cpu.A,
		B:         cpu.B,
		Carry:     cpu.Carry,
		Zero:      cpu.Zero,
		Executing: cpu.Executing,
		Width:     cpu.Width(),
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	var lines []string

	digits := (cpu.Width() + 3) / 4
	lines = append(lines, fmt.Sprintf("%5s: %d", "pc", cpu.Pc))
	lines = append(lines, fmt.Sprintf("%5s: 0x%0*x (%d)", "a", digits, cpu.A, cpu.A))
	lines = append(lines, fmt.Sprintf("%5s: 0x%0*x (%d)", "b", digits, cpu.B, cpu.B))
	lines = append(lines, fmt.Sprintf("%5s: %v", "carry", cpu.Carry))
	lines = append(lines, fmt.Sprintf("%5s: %v", "zero", cpu.Zero))
	lines = append(lines, fmt.Sprintf("%5s: %v", "exec", cpu.Executing))
	for addr, value := range cpu.Memory.All() {
		lines = append(lines, fmt.Sprintf("%5d: 0x%02x %v", addr, value, CodeOf(value)))
	}

	text = strings.Join(lines, "\n") + "\n"

	return
}

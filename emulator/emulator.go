// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"log"

	"github.com/ezrec/sapsim/cpu"
)

// Step describes an instruction about to be executed.
type Step struct {
	Pc   int      // Address of the instruction.
	Code cpu.Code // Instruction byte.
}

// Mnemonic returns the decoded mnemonic.
func (step Step) Mnemonic() string {
	return step.Code.Opcode().String()
}

// Arg returns the decoded operand.
func (step Step) Arg() int {
	return step.Code.Arg()
}

// Options are applied when booting a program.
type Options struct {
	Width   int         // Register width in bits. Zero selects the default.
	Patches []cpu.Patch // Memory overwrites applied after the program loads.
}

// Emulator is the fetch-decode-execute engine around a SAP CPU.
type Emulator struct {
	Verbose  bool       // If set, enables verbose logging.
	*cpu.Cpu            // Reference to the CPU simulation.
	Trace    func(Step) // If set, called before each instruction executes.

	fault error // Fatal instruction error; the run cannot resume.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(),
	}

	return
}

// Reset the CPU state, keeping the word width.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.fault = nil
}

// Boot configures the word width, loads a program image, and applies
// the patches. Patching unmapped addresses is reported in warnings.
func (emu *Emulator) Boot(image map[int]uint8, opts Options) (warnings []error, err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.fault = nil

	width := opts.Width
	if width == 0 {
		width = cpu.DEFAULT_WIDTH
	}

	err = emu.Cpu.SetWidth(width)
	if err != nil {
		return
	}

	err = emu.Cpu.Load(image)
	if err != nil {
		return
	}

	warnings, err = emu.Cpu.Patch(opts.Patches...)
	if err != nil {
		return
	}

	if emu.Verbose {
		for _, warning := range warnings {
			log.Printf("emulator: %v", warning)
		}
	}

	return
}

// Code returns the instruction under the PC, and false if the PC is at a hole.
func (emu *Emulator) Code() (code cpu.Code, ok bool) {
	value, ok := emu.Cpu.Memory.Load(emu.Cpu.Pc)
	if ok {
		code = cpu.CodeOf(value)
	}
	return
}

// Tick performs a single step of the emulator.
//
// A halted emulator does nothing. A PC past the highest mapped address halts
// with ErrDroppedOffBottom. A PC at an unmapped address is advanced by one.
// Otherwise the instruction under the PC is executed.
func (emu *Emulator) Tick() (done bool, err error) {
	c := emu.Cpu
	c.Verbose = emu.Verbose

	if !c.Executing {
		done = true
		return
	}

	if emu.fault != nil {
		err = emu.fault
		return
	}

	pc := c.Pc

	max, ok := c.Memory.Max()
	if ok && pc > max {
		c.Executing = false
		done = true
		err = &ErrRuntime{Pc: pc, State: c.State(), Err: cpu.ErrDroppedOffBottom}
		return
	}

	code, ok := emu.Code()
	if !ok {
		c.Pc++
		return
	}

	if emu.Trace != nil {
		emu.Trace(Step{Pc: pc, Code: code})
	}

	err = c.Execute(code)
	if err != nil {
		err = &ErrRuntime{Pc: pc, Code: code, Fetched: true, State: c.State(), Err: err}
		emu.fault = err
		return
	}

	done = !c.Executing

	return
}

// Run ticks until the program halts, a step fails, or the context is done.
// There is no instruction limit: a program that never halts runs until
// the context is cancelled.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	for {
		err = ctx.Err()
		if err != nil {
			return
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}

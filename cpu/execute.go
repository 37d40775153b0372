package cpu

import (
	"errors"
	"log"

	"github.com/ezrec/sapsim/io"
)

// Execute executes a single decoded instruction, updating the PC.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(code), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%02d: %v", cpu.Pc, code)
	}

	op, arg := code.Decode()
	switch op {
	case OP_NOP:
		cpu.Pc++
	case OP_LDA:
		err = cpu.lda(arg)
	case OP_ADD:
		var value int64
		value, err = cpu.fetch(arg)
		if err != nil {
			return
		}
		err = cpu.add(value)
	case OP_SUB:
		var value int64
		value, err = cpu.fetch(arg)
		if err != nil {
			return
		}
		err = cpu.sub(value)
	case OP_STA:
		cpu.Memory.Store(arg, cpu.A)
		cpu.Pc++
	case OP_LDI:
		err = cpu.SetA(int64(arg))
		if err != nil {
			return
		}
		cpu.Pc++
	case OP_JMP:
		err = cpu.jump(arg)
	case OP_JC:
		if cpu.Carry {
			err = cpu.jump(arg)
		} else {
			cpu.Pc++
		}
	case OP_JZ:
		if cpu.Zero {
			err = cpu.jump(arg)
		} else {
			cpu.Pc++
		}
	case OP_OUT:
		err = cpu.out()
	case OP_HLT:
		cpu.Executing = false
	default:
		err = ErrOpcodeInvalid
	}

	return
}

// fetch reads a memory operand.
func (cpu *Cpu) fetch(addr int) (value int64, err error) {
	mem, ok := cpu.Memory.Load(addr)
	if !ok {
		err = &ErrAddress{Address: addr, Err: ErrLoadUnmapped}
		return
	}
	value = int64(mem)
	return
}

// lda sets A = Mem(addr).
func (cpu *Cpu) lda(addr int) (err error) {
	value, err := cpu.fetch(addr)
	if err != nil {
		return
	}

	err = cpu.SetA(value)
	if err != nil {
		return
	}

	cpu.Pc++
	return
}

// add sets B = value, then A = A + B, wrapping at the word width.
// Carry is set on wrap, and Zero reflects the result.
func (cpu *Cpu) add(value int64) (err error) {
	err = cpu.SetB(value)
	if err != nil {
		return
	}

	sum := int64(cpu.A) + int64(cpu.B)
	if sum > int64(cpu.Max()) {
		cpu.Carry = true
		sum -= int64(1) << cpu.Width()
	} else {
		cpu.Carry = false
	}

	err = cpu.SetA(sum)
	if err != nil {
		return
	}
	cpu.Zero = cpu.A == 0

	cpu.Pc++
	return
}

// sub sets B = value, then A = A - B as A + ~B + 1.
// Carry is the unsigned comparison A >= B on the operands, not the adder carry.
func (cpu *Cpu) sub(value int64) (err error) {
	err = cpu.SetB(value)
	if err != nil {
		return
	}

	a := int64(cpu.A)
	b := int64(cpu.B)

	err = cpu.add(b ^ int64(cpu.Max()))
	if err != nil {
		return
	}
	err = cpu.add(1)
	if err != nil {
		return
	}

	cpu.B = uint64(b)
	cpu.Carry = a >= b

	// Two adds each advanced the PC.
	cpu.Pc--

	return
}

// jump sets the PC.
func (cpu *Cpu) jump(addr int) (err error) {
	if addr < 0 {
		err = &ErrAddress{Address: addr, Err: ErrJumpNegative}
		return
	}

	cpu.Pc = addr
	return
}

// out sends A to the display.
func (cpu *Cpu) out() (err error) {
	if cpu.Display != nil {
		err = cpu.Display.Show(io.Output{Pc: cpu.Pc, Value: cpu.A})
		if err != nil {
			return
		}
	}

	cpu.Pc++
	return
}

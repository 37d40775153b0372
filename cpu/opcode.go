package cpu

import (
	"fmt"
	"strings"
)

// Opcode is the upper hexit of an instruction byte.
type Opcode int

const (
	OP_NOP = Opcode(0x0) // No operation.
	OP_LDA = Opcode(0x1) // A = Mem(arg)
	OP_ADD = Opcode(0x2) // A = A + Mem(arg)
	OP_SUB = Opcode(0x3) // A = A - Mem(arg)
	OP_STA = Opcode(0x4) // Mem(arg) = A
	OP_LDI = Opcode(0x5) // A = arg
	OP_JMP = Opcode(0x6) // PC = arg
	OP_JC  = Opcode(0x7) // PC = arg if carry
	OP_JZ  = Opcode(0x8) // PC = arg if zero
	OP_OUT = Opcode(0xe) // Display A
	OP_HLT = Opcode(0xf) // Halt
)

var opcodeMnemonic = map[Opcode]string{
	OP_NOP: "NOP",
	OP_LDA: "LDA",
	OP_ADD: "ADD",
	OP_SUB: "SUB",
	OP_STA: "STA",
	OP_LDI: "LDI",
	OP_JMP: "JMP",
	OP_JC:  "JC",
	OP_JZ:  "JZ",
	OP_OUT: "OUT",
	OP_HLT: "HLT",
}

var mnemonicOpcode = func() map[string]Opcode {
	m := make(map[string]Opcode, len(opcodeMnemonic))
	for op, name := range opcodeMnemonic {
		m[name] = op
	}
	return m
}()

// Valid returns true if the opcode is one of the defined instructions.
// Opcodes 0x9 through 0xd are reserved.
func (op Opcode) Valid() bool {
	_, ok := opcodeMnemonic[op]
	return ok
}

// NeedsArg returns true if the operand of the opcode is meaningful.
func (op Opcode) NeedsArg() bool {
	switch op {
	case OP_NOP, OP_OUT, OP_HLT:
		return false
	}
	return op.Valid()
}

func (op Opcode) String() string {
	name, ok := opcodeMnemonic[op]
	if !ok {
		return fmt.Sprintf("0x%x", int(op))
	}
	return name
}

// LookupMnemonic returns the opcode of a mnemonic, ignoring case.
func LookupMnemonic(name string) (op Opcode, ok bool) {
	op, ok = mnemonicOpcode[strings.ToUpper(strings.TrimSpace(name))]
	return
}

// Code is a single memory byte, viewed as an instruction.
type Code uint8

// MakeCode encodes an opcode and operand into a byte.
func MakeCode(op Opcode, arg int) Code {
	return Code((uint8(op)&0xf)<<4 | uint8(arg)&0xf)
}

// CodeOf returns the instruction view of a memory value.
// Bits above the low byte are ignored.
func CodeOf(value uint64) Code {
	return Code(value & 0xff)
}

// Opcode returns the upper hexit.
func (code Code) Opcode() Opcode {
	return Opcode((code >> 4) & 0xf)
}

// Arg returns the lower hexit.
func (code Code) Arg() int {
	return int(code & 0xf)
}

// Decode returns the opcode and operand.
func (code Code) Decode() (op Opcode, arg int) {
	return code.Opcode(), code.Arg()
}

// Valid returns true if the byte decodes to a defined instruction.
func (code Code) Valid() bool {
	return code.Opcode().Valid()
}

// String returns the assembly language representation of this instruction,
// or "Invalid Opcode" for data bytes that are not instructions.
func (code Code) String() string {
	op, arg := code.Decode()
	if !op.Valid() {
		return "Invalid Opcode"
	}
	return fmt.Sprintf("%v %d", op, arg)
}

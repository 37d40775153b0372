// Package cpu implements the machine state and instruction set of the SAP
// (Simple-As-Possible) computer.
//
// The machine has a sparse memory of at most 16 mapped addresses, a program
// counter (PC), two unsigned registers (A and B) of configurable word width,
// a carry flag, a zero flag, and an executing flag cleared by HLT.
//
// Every memory byte is either data or an instruction, depending only on
// whether the PC happens to fetch it. An instruction byte holds a 4-bit opcode
// in the upper hexit and a 4-bit operand in the lower hexit.
package cpu

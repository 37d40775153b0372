package program

import (
	"strings"

	"github.com/ezrec/sapsim/cpu"
)

// Assemble converts a single instruction, such as "LDA 14", into its byte.
// NOP, OUT and HLT may omit the argument.
func Assemble(text string) (code cpu.Code, err error) {
	defer func() {
		if err != nil {
			err = &ErrInstruction{Text: text, Err: err}
		}
	}()

	words := strings.Fields(text)
	if len(words) == 0 || len(words) > 2 {
		err = ErrInstructionInvalid
		return
	}

	op, ok := cpu.LookupMnemonic(words[0])
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	if len(words) == 1 {
		if op.NeedsArg() {
			err = ErrInstructionRequiresArg
			return
		}
		code = cpu.MakeCode(op, 0)
		return
	}

	arg, err := valueOf(words[1])
	if err != nil || arg < 0 || arg > 0xf {
		err = ErrInstructionInvalid
		return
	}

	code = cpu.MakeCode(op, int(arg))

	return
}

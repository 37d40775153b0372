package cpu

import (
	"errors"

	"github.com/ezrec/sapsim/translate"
)

var f = translate.From

var (
	// Register range errors
	ErrRegisterNegative = errors.New(f("register value negative"))
	ErrRegisterOverflow = errors.New(f("register value does not fit in width"))

	// Addressing errors
	ErrLoadUnmapped = errors.New(f("load from unmapped address"))
	ErrJumpNegative = errors.New(f("jump to negative address"))

	// Instruction decode errors
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))

	// Termination errors
	ErrDroppedOffBottom = errors.New(f("PC is greater than max address in memory; the program does not always HLT"))

	// Load and patch errors
	ErrWidth            = errors.New(f("word width must be between 2 and 32"))
	ErrTooManyAddresses = errors.New(f("more than 16 mapped addresses"))
	ErrAddressRange     = errors.New(f("address outside 0 to 15"))
	ErrValueRange       = errors.New(f("value negative or overflows registers"))
)

// ErrRegister reports a value that cannot be held by a register.
type ErrRegister struct {
	Register string // Register name, "A" or "B".
	Value    int64  // Offending value.
	Width    int    // Word width in effect.
	Err      error  // ErrRegisterNegative or ErrRegisterOverflow.
}

func (err *ErrRegister) Error() string {
	if errors.Is(err.Err, ErrRegisterNegative) {
		return f("negative value %d in unsigned register %v", err.Value, err.Register)
	}
	return f("value %d in register %v can't be stored in %d bits", err.Value, err.Register, err.Width)
}

func (err *ErrRegister) Unwrap() error {
	return err.Err
}

// ErrAddress reports an addressing failure at a specific address.
type ErrAddress struct {
	Address int
	Err     error
}

func (err *ErrAddress) Error() string {
	return f("address %d: %v", err.Address, err.Err)
}

func (err *ErrAddress) Unwrap() error {
	return err.Err
}

// ErrOpcode identifies the instruction that failed.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x %v", uint8(eo), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrPatch reports a rejected memory patch.
type ErrPatch struct {
	Patch Patch
	Err   error
}

func (err *ErrPatch) Error() string {
	return f("change %d:%d %v", err.Patch.Address, err.Patch.Value, err.Err)
}

func (err *ErrPatch) Unwrap() error {
	return err.Err
}

// WarnPatchUnmapped is a non-fatal warning that a patch mapped a new address.
type WarnPatchUnmapped int

func (w WarnPatchUnmapped) Error() string {
	return f("address %d was not mapped; the change maps it", int(w))
}

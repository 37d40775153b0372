package emulator

import (
	"github.com/ezrec/sapsim/cpu"
	"github.com/ezrec/sapsim/translate"
)

var f = translate.From

// ErrRuntime is a fatal simulation error, with the machine state at the
// time of the failure.
type ErrRuntime struct {
	Pc      int       // PC of the failing step.
	Code    cpu.Code  // Instruction under the PC, if Fetched.
	Fetched bool      // Set if the failure happened executing Code.
	State   cpu.State // Snapshot taken after the failure.
	Err     error
}

func (err *ErrRuntime) Error() string {
	if err.Fetched {
		return f("%v at address %d: %v", err.Code, err.Pc, err.Err)
	}
	return f("address %d: %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

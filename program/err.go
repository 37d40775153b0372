package program

import (
	"errors"

	"github.com/ezrec/sapsim/translate"
)

var f = translate.From

var (
	// File errors
	ErrNotCSV = errors.New(f("file extension must be .csv"))
	ErrHeader = errors.New(f("header must name Address, First Hexit and Second Hexit columns"))

	// Row errors
	ErrNoAddress           = errors.New(f("row has no address"))
	ErrAddressInvalid      = errors.New(f("address must be a base-10 integer or base-16 hex string"))
	ErrAddressNegative     = errors.New(f("address is negative"))
	ErrAddressDuplicate    = errors.New(f("address duplicated"))
	ErrNoFirstHexit        = errors.New(f("second hexit without first hexit"))
	ErrNoSecondHexit       = errors.New(f("first hexit without second hexit"))
	ErrFirstHexitNegative  = errors.New(f("first hexit must be positive"))
	ErrFirstHexitRange     = errors.New(f("first hexit must be less than 16"))
	ErrFirstHexitInvalid   = errors.New(f("first hexit must be a mnemonic, or a hexit 0 to f"))
	ErrSecondHexitNegative = errors.New(f("second hexit must be positive"))
	ErrSecondHexitRange    = errors.New(f("second hexit must be less than 16"))
	ErrSecondHexitInvalid  = errors.New(f("second hexit must be a hexit 0 to f, or a base-10 integer 0 to 15"))
	ErrTooManyAddresses    = errors.New(f("a SAP program can have at most 16 mapped addresses"))

	// Instruction errors
	ErrInstructionRequiresArg = errors.New(f("only NOP, OUT and HLT may omit the argument"))
	ErrInstructionInvalid     = errors.New(f("instruction must be <Mnemonic> <Arg>, with Arg less than 16"))

	// Patch errors
	ErrPatchSyntax = errors.New(f("change must be <addr>:<value>,<addr>:<value>,..."))
)

// ErrSyntax reports the program row that failed to parse.
type ErrSyntax struct {
	Row     int // Data row, starting at 1.
	Address int // Address of the row, or -1 if unknown.
	Err     error
}

func (err *ErrSyntax) Error() string {
	if err.Address < 0 {
		return f("row %d: %v", err.Row, err.Err)
	}
	return f("row %d address %d: %v", err.Row, err.Address, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrInstruction reports an instruction that failed to assemble.
type ErrInstruction struct {
	Text string
	Err  error
}

func (err *ErrInstruction) Error() string {
	return f("'%v' %v", err.Text, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}

// ErrPatch reports a change entry that failed to parse.
type ErrPatch struct {
	Text string
	Err  error
}

func (err *ErrPatch) Error() string {
	return f("change '%v' %v", err.Text, err.Err)
}

func (err *ErrPatch) Unwrap() error {
	return err.Err
}

// ErrParseNumber is a word that is not a number.
type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrParseExpression is a $(...) expression that does not evaluate to an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

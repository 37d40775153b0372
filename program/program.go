// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package program reads SAP programs from their tabular CSV form.
//
// A program has a header row naming the Address, First Hexit, Second Hexit
// and Comments columns, followed by one row per mapped address. The first
// hexit is a mnemonic or a hexit, the second hexit is the operand. Skipped
// addresses are left unmapped, and a row with both hexits blank holds NOP 0.
package program

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/ezrec/sapsim/cpu"
)

// Column names, with the names used by older templates.
var (
	columnAddress = []string{"Address"}
	columnFirst   = []string{"First Hexit", "Mnemonic"}
	columnSecond  = []string{"Second Hexit", "Arg"}
	columnComment = []string{"Comments", "Comment"}
)

// Row is a single mapped address of a program.
type Row struct {
	Row     int      // Data row, starting at 1.
	Address int      // Memory address.
	Code    cpu.Code // Memory byte.
	Comment string   // Free text.
}

// Program is a parsed SAP program.
type Program struct {
	Rows []Row
}

// Image returns the address to byte map to load into a CPU.
func (prog *Program) Image() (image map[int]uint8) {
	image = make(map[int]uint8, len(prog.Rows))
	for _, row := range prog.Rows {
		image[row.Address] = uint8(row.Code)
	}
	return
}

// Codes iterates over the addresses and bytes in row order.
func (prog *Program) Codes() iter.Seq2[int, cpu.Code] {
	return func(yield func(addr int, code cpu.Code) bool) {
		for _, row := range prog.Rows {
			if !yield(row.Address, row.Code) {
				return
			}
		}
	}
}

// Comment returns the comment for an address, if any.
func (prog *Program) Comment(addr int) string {
	for _, row := range prog.Rows {
		if row.Address == addr {
			return row.Comment
		}
	}
	return ""
}

// columns locates the named columns in a header row.
type columns struct {
	address, first, second, comment int
}

func findColumn(header []string, names []string) int {
	for n, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		for _, want := range names {
			if strings.EqualFold(name, want) {
				return n
			}
		}
	}
	return -1
}

func (col columns) cell(record []string, index int) string {
	if index < 0 || index >= len(record) {
		return ""
	}
	return record[index]
}

// Parse reads a CSV program.
func Parse(r io.Reader) (prog *Program, err error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	prog = &Program{}

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		err = nil
		return
	}
	if err != nil {
		return
	}

	col := columns{
		address: findColumn(header, columnAddress),
		first:   findColumn(header, columnFirst),
		second:  findColumn(header, columnSecond),
		comment: findColumn(header, columnComment),
	}
	if col.address < 0 || col.first < 0 || col.second < 0 {
		err = ErrHeader
		return
	}

	mapped := map[int]bool{}
	for row := 1; ; row++ {
		var record []string
		record, err = reader.Read()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			err = &ErrSyntax{Row: row, Address: -1, Err: err}
			return
		}

		var entry Row
		entry, err = parseRow(row, col, record)
		if err != nil {
			return
		}

		if mapped[entry.Address] {
			err = &ErrSyntax{Row: row, Address: entry.Address, Err: ErrAddressDuplicate}
			return
		}
		mapped[entry.Address] = true

		prog.Rows = append(prog.Rows, entry)
	}

	if len(prog.Rows) > cpu.MEMORY_SLOTS {
		err = fmt.Errorf("%w: %d", ErrTooManyAddresses, len(prog.Rows))
		return
	}

	return
}

// parseRow decodes a single data row.
func parseRow(row int, col columns, record []string) (entry Row, err error) {
	entry.Row = row
	entry.Comment = col.cell(record, col.comment)

	addr := col.cell(record, col.address)
	if addr == "" {
		err = &ErrSyntax{Row: row, Address: -1, Err: ErrNoAddress}
		return
	}

	entry.Address, err = parseAddress(addr)
	if err != nil {
		err = &ErrSyntax{Row: row, Address: -1, Err: err}
		return
	}

	first := col.cell(record, col.first)
	second := col.cell(record, col.second)

	var op, arg int
	switch {
	case first == "" && second == "":
		// Mapped, but blank.
	case second == "":
		err = ErrNoSecondHexit
	case first == "":
		err = ErrNoFirstHexit
	default:
		op, err = parseFirstHexit(first)
		if err == nil {
			arg, err = parseSecondHexit(second)
		}
	}
	if err != nil {
		err = &ErrSyntax{Row: row, Address: entry.Address, Err: err}
		return
	}

	entry.Code = cpu.MakeCode(cpu.Opcode(op), arg)

	return
}

// parseAddress accepts a base-10 integer, or else a base-16 integer.
func parseAddress(word string) (addr int, err error) {
	word = strings.TrimSpace(word)

	value, err := strconv.ParseInt(word, 10, 64)
	if err != nil {
		hex := strings.TrimPrefix(strings.TrimPrefix(word, "0x"), "0X")
		value, err = strconv.ParseInt(hex, 16, 64)
		if err != nil {
			err = ErrAddressInvalid
			return
		}
	}

	if value < 0 {
		err = ErrAddressNegative
		return
	}

	addr = int(value)

	return
}

// hexit checks the range of a numeric hexit.
func hexit(value int64, negative, tooLarge error) (out int, err error) {
	switch {
	case value < 0:
		err = negative
	case value > 0xf:
		err = tooLarge
	default:
		out = int(value)
	}
	return
}

// parseFirstHexit accepts a base-10 integer, an expression, a single hex
// digit, or a mnemonic.
func parseFirstHexit(word string) (op int, err error) {
	value, err := valueOf(word)
	if err == nil {
		return hexit(value, ErrFirstHexitNegative, ErrFirstHexitRange)
	}
	if _, ok := expression(word); ok {
		return
	}

	word = strings.ToUpper(strings.TrimSpace(word))
	if len(word) == 1 {
		var digit uint64
		digit, err = strconv.ParseUint(word, 16, 4)
		if err != nil {
			err = ErrFirstHexitInvalid
			return
		}
		op = int(digit)
		return
	}

	code, ok := cpu.LookupMnemonic(word)
	if !ok {
		err = ErrFirstHexitInvalid
		return
	}

	op = int(code)
	err = nil

	return
}

// parseSecondHexit accepts a base-10 integer, an expression, or a single
// hex digit.
func parseSecondHexit(word string) (arg int, err error) {
	value, err := valueOf(word)
	if err == nil {
		return hexit(value, ErrSecondHexitNegative, ErrSecondHexitRange)
	}
	if _, ok := expression(word); ok {
		return
	}

	word = strings.TrimSpace(word)
	if len(word) != 1 {
		err = ErrSecondHexitInvalid
		return
	}

	digit, err := strconv.ParseUint(word, 16, 4)
	if err != nil {
		err = ErrSecondHexitInvalid
		return
	}

	arg = int(digit)

	return
}

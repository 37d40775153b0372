package program

import (
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/sapsim/cpu"
)

// Predefined names available to $(...) expressions.
var sysEquate = func() starlark.StringDict {
	dict := starlark.StringDict{
		"MAX_ADDRESS":  starlark.MakeInt(cpu.MAX_ADDRESS),
		"MEMORY_SLOTS": starlark.MakeInt(cpu.MEMORY_SLOTS),
	}
	for op := range cpu.Opcode(16) {
		if op.Valid() {
			dict[op.String()] = starlark.MakeInt(int(op))
		}
	}
	dict.Freeze()
	return dict
}()

// expression returns the body of a $(...) word.
func expression(word string) (expr string, ok bool) {
	word = strings.TrimSpace(word)
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		expr = word[2 : len(word)-1]
		ok = true
	}
	return
}

// Eval evaluates an integer expression.
// Opcode mnemonics are predefined to their opcode values.
func Eval(expr string) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, sysEquate)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}

	num, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	value, ok = num.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// valueOf returns the value of a base-10 integer, or of a $(...) expression.
func valueOf(word string) (value int64, err error) {
	expr, ok := expression(word)
	if ok {
		return Eval(expr)
	}

	value, err = strconv.ParseInt(strings.TrimSpace(word), 10, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

package program

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/sapsim/cpu"
)

const header = "Address,First Hexit,Second Hexit,Comments\n"

func TestParse(t *testing.T) {
	assert := assert.New(t)

	text := header + `0,LDA,14,load x
1,sub,d,
2,8,6,
3,5,0,
4,4,15,
5,f,0,
13,0,3,three
14,,,
15,$(HLT),$(2*4),
`

	prog, err := Parse(strings.NewReader(text))
	require.NoError(t, err)

	assert.Equal(map[int]uint8{
		0:  0x1e,
		1:  0x3d,
		2:  0x86,
		3:  0x50,
		4:  0x4f,
		5:  0xf0,
		13: 0x03,
		14: 0x00,
		15: 0xf8,
	}, prog.Image())

	assert.Equal("load x", prog.Comment(0))
	assert.Equal("three", prog.Comment(13))
	assert.Equal("", prog.Comment(7))
	assert.Equal(1, prog.Rows[0].Row)
	assert.Equal(9, prog.Rows[8].Row)

	var addrs []int
	for addr := range prog.Codes() {
		addrs = append(addrs, addr)
	}
	assert.Equal([]int{0, 1, 2, 3, 4, 5, 13, 14, 15}, addrs)
}

func TestParse_Header(t *testing.T) {
	assert := assert.New(t)

	prog, err := Parse(strings.NewReader("Address,Mnemonic,Arg\n0x0a,OUT,0\n"))
	assert.NoError(err)
	assert.Equal(map[int]uint8{10: 0xe0}, prog.Image())

	prog, err = Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Empty(prog.Rows)

	_, err = Parse(strings.NewReader("Addr,Op\n0,1\n"))
	assert.ErrorIs(err, ErrHeader)
}

func TestParse_Invalid(t *testing.T) {
	table := [](struct {
		row     string
		address int
		err     error
	}){
		{",LDA,1", -1, ErrNoAddress},
		{"xyz,LDA,1", -1, ErrAddressInvalid},
		{"-3,LDA,1", -1, ErrAddressNegative},
		{"1,LDA,", 1, ErrNoSecondHexit},
		{"1,,1", 1, ErrNoFirstHexit},
		{"1,-1,1", 1, ErrFirstHexitNegative},
		{"1,16,1", 1, ErrFirstHexitRange},
		{"1,LOAD,1", 1, ErrFirstHexitInvalid},
		{"1,g,1", 1, ErrFirstHexitInvalid},
		{"1,LDA,-1", 1, ErrSecondHexitNegative},
		{"1,LDA,16", 1, ErrSecondHexitRange},
		{"1,LDA,ab", 1, ErrSecondHexitInvalid},
		{"1,LDA,$(1+)", 1, ErrParseExpression("1+")},
	}

	for _, entry := range table {
		_, err := Parse(strings.NewReader(header + entry.row + "\n"))
		assert.ErrorIs(t, err, entry.err, entry.row)

		var syntax *ErrSyntax
		if assert.ErrorAs(t, err, &syntax, entry.row) {
			assert.Equal(t, 1, syntax.Row, entry.row)
			assert.Equal(t, entry.address, syntax.Address, entry.row)
		}
	}
}

func TestParse_Duplicate(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse(strings.NewReader(header + "1,LDA,1\n2,NOP,0\n0x1,HLT,0\n"))
	assert.ErrorIs(err, ErrAddressDuplicate)

	var syntax *ErrSyntax
	assert.ErrorAs(err, &syntax)
	assert.Equal(3, syntax.Row)
	assert.Equal(1, syntax.Address)
}

func TestParse_TooMany(t *testing.T) {
	assert := assert.New(t)

	var text strings.Builder
	text.WriteString(header)
	for addr := range 17 {
		fmt.Fprintf(&text, "%d,NOP,0\n", addr)
	}

	_, err := Parse(strings.NewReader(text.String()))
	assert.ErrorIs(err, ErrTooManyAddresses)
}

func TestParseFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	_, err := ParseFile(filepath.Join(dir, "prog.txt"))
	assert.ErrorIs(err, ErrNotCSV)

	_, err = ParseFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(err, os.ErrNotExist)

	path := filepath.Join(dir, "prog.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+"0,HLT,0\n"), 0o644))

	prog, err := ParseFile(path)
	assert.NoError(err)
	assert.Equal(map[int]uint8{0: 0xf0}, prog.Image())

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte(header+"0,HLT,\n"), 0o644))

	_, err = ParseFile(bad)
	assert.ErrorIs(err, ErrNoSecondHexit)
	assert.Contains(err.Error(), bad)
}

func TestTemplate(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	require.NoError(t, WriteTemplate(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(17, len(lines))
	assert.Equal("Address,First Hexit,Second Hexit,Comments", lines[0])
	assert.Equal("15,,,", lines[16])

	prog, err := Parse(&buf)
	assert.NoError(err)
	assert.Equal(cpu.MEMORY_SLOTS, len(prog.Rows))
	for addr, code := range prog.Codes() {
		assert.Equal(cpu.Code(0), code, addr)
	}

	path := filepath.Join(t.TempDir(), "template.csv")
	assert.NoError(WriteTemplateFile(path))
	assert.Error(WriteTemplateFile(path))

	prog, err = ParseFile(path)
	assert.NoError(err)
	assert.Equal(cpu.MEMORY_SLOTS, len(prog.Rows))
}

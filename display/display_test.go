package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mgutz/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/sapsim/cpu"
	"github.com/ezrec/sapsim/io"
)

func TestParseStyle(t *testing.T) {
	assert := assert.New(t)

	style, err := ParseStyle(" Plain")
	assert.NoError(err)
	assert.Equal(STYLE_PLAIN, style)

	style, err = ParseStyle("outline")
	assert.NoError(err)
	assert.Equal(STYLE_OUTLINE, style)

	_, err = ParseStyle("grid")
	assert.ErrorIs(err, ErrStyle)
}

func TestRender(t *testing.T) {
	table := OutputTable(io.Output{Pc: 3, Value: 30})

	tests := [](struct {
		style  Style
		expect []string
	}){
		{STYLE_OUTLINE, []string{
			"┌────┬─────┬──────┐",
			"│ PC │ Dec │ Hex  │",
			"├────┼─────┼──────┤",
			"│  3 │  30 │ 0x1e │",
			"└────┴─────┴──────┘",
		}},
		{STYLE_PLAIN, []string{
			"PC  Dec  Hex",
			"--  ---  ----",
			" 3   30  0x1e",
		}},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		r := &Renderer{Style: test.style}
		assert.NoError(t, r.Render(&buf, table))
		assert.Equal(t, strings.Join(test.expect, "\n")+"\n", buf.String(), test.style)
	}
}

func TestRender_Color(t *testing.T) {
	assert := assert.New(t)

	table := &Table{
		Rows:      [][]string{{"a", "1"}, {"b", "2"}},
		Highlight: map[int]bool{1: true},
	}

	var buf bytes.Buffer
	r := &Renderer{Style: STYLE_PLAIN, Color: true}
	assert.NoError(r.Render(&buf, table))
	assert.Equal("a  1\n"+colorHighlight+"b  2"+ansi.Reset+"\n", buf.String())

	buf.Reset()
	r.Color = false
	assert.NoError(r.Render(&buf, table))
	assert.Equal("a  1\nb  2\n", buf.String())
}

func TestMemoryTable(t *testing.T) {
	assert := assert.New(t)

	state := cpu.State{
		Memory: cpu.Memory{1: 0x9f, 0: 0x1e, 15: 0x103},
		Pc:     1,
	}

	table := MemoryTable(state)
	assert.Equal([]string{"PC", "Addr", "Instruction", "Dec", "Hex"}, table.Header)
	assert.Equal([][]string{
		{"", "0", "LDA 14", "30", "0x1e"},
		{">", "1", "Invalid Opcode", "159", "0x9f"},
		{"", "15", "NOP 3", "259", "0x103"},
	}, table.Rows)
	assert.Equal(map[int]bool{1: true}, table.Highlight)

	state.Pc = 16
	table = MemoryTable(state)
	assert.Empty(table.Highlight)
}

func TestInfoTable(t *testing.T) {
	assert := assert.New(t)

	prior := cpu.State{Pc: 2, A: 5, B: 1}
	state := cpu.State{Pc: 3, A: 5, B: 7, Carry: true}

	table := InfoTable(state, nil)
	assert.Nil(table.Header)
	assert.Equal([][]string{
		{"PC", "3"},
		{"Reg A", "5"},
		{"Reg B", "7"},
		{"FlagC", "1"},
		{"FlagZ", "0"},
	}, table.Rows)
	assert.Empty(table.Highlight)

	table = InfoTable(state, &prior)
	assert.Equal(map[int]bool{0: true, 2: true, 3: true}, table.Highlight)
}

func TestPrinter(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.Style = STYLE_PLAIN

	assert.NoError(p.Show(io.Output{Pc: 4, Value: 0xff}))
	assert.Equal("PC  Dec  Hex\n--  ---  ----\n 4  255  0xff\n", buf.String())

	buf.Reset()
	state := cpu.State{Memory: cpu.Memory{0: 0xf0}}
	assert.NoError(p.Memory(state))
	assert.Contains(buf.String(), "0  HLT 0"+strings.Repeat(" ", 8)+"240  0xf0")

	buf.Reset()
	assert.NoError(p.Info(state, nil))
	assert.Equal("PC     0\nReg A  0\nReg B  0\nFlagC  0\nFlagZ  0\n", buf.String())
}

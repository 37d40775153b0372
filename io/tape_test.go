package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutput_Hex(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0x00", Output{}.Hex())
	assert.Equal("0x0a", Output{Value: 10}.Hex())
	assert.Equal("0xff", Output{Value: 255}.Hex())
	assert.Equal("0x3ff", Output{Value: 1023}.Hex())
}

func TestTape_Show(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	assert.NoError(tape.Show(Output{Pc: 3, Value: 7}))
	assert.NoError(tape.Show(Output{Pc: 5, Value: 255}))

	assert.Equal([]Output{{Pc: 3, Value: 7}, {Pc: 5, Value: 255}}, tape.Record)
	assert.Equal([]uint64{7, 255}, tape.Values())
}

func TestTape_Output(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	tape := &Tape{Output: buf}

	assert.NoError(tape.Show(Output{Pc: 2, Value: 12}))
	assert.Equal("2 12 0x0c\n", buf.String())
}

func TestTape_Capacity(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Capacity: 2}
	assert.NoError(tape.Show(Output{Value: 1}))
	assert.NoError(tape.Show(Output{Value: 2}))
	assert.ErrorIs(tape.Show(Output{Value: 3}), ErrTapeFull)
	assert.Len(tape.Record, 2)
}

func TestTape_Rewind(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	tape.Rewind()
	assert.Empty(tape.Record)

	assert.NoError(tape.Show(Output{Value: 1}))
	tape.Rewind()
	assert.Empty(tape.Record)
	assert.Nil(tape.Values())
}

func TestDisplays(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	first := &Tape{}
	second := &Tape{Output: &buf}

	ds := Displays{first, second}
	assert.NoError(ds.Show(Output{Pc: 1, Value: 2}))
	assert.Equal([]uint64{2}, first.Values())
	assert.Equal([]uint64{2}, second.Values())
	assert.Equal("1 2 0x02\n", buf.String())

	full := &Tape{Capacity: 1}
	ds = Displays{full, second}
	assert.NoError(ds.Show(Output{Pc: 1, Value: 3}))
	assert.ErrorIs(ds.Show(Output{Pc: 1, Value: 4}), ErrTapeFull)
	assert.Equal([]uint64{2, 3}, second.Values())
}

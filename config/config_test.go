package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/sapsim/cpu"
	"github.com/ezrec/sapsim/display"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.Equal(8, cfg.Bits)
	assert.Equal("outline", cfg.Style)
	assert.False(cfg.Color)
	assert.False(cfg.Speed)
	assert.NoError(cfg.Validate())
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Decode("bits = 4\ncolor = true\n")
	assert.NoError(err)
	assert.Equal(Config{Bits: 4, Style: "outline", Color: true}, cfg)

	cfg, err = Decode("")
	assert.NoError(err)
	assert.Equal(Default(), cfg)

	_, err = Decode("bits = 1\n")
	assert.ErrorIs(err, cpu.ErrWidth)

	_, err = Decode("bits = 33\n")
	assert.ErrorIs(err, cpu.ErrWidth)

	_, err = Decode("style = 'fancy'\n")
	assert.ErrorIs(err, display.ErrStyle)

	_, err = Decode("bitz = 8\n")
	assert.ErrorIs(err, ErrUnknownKey)
	assert.Contains(err.Error(), "bitz")

	_, err = Decode("bits = \n")
	assert.Error(err)
}

func TestReadFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, FILE)
	require.NoError(t, os.WriteFile(path, []byte("style = 'plain'\nspeed = true\n"), 0o644))

	cfg, err := ReadFile(path)
	assert.NoError(err)
	assert.Equal(Config{Bits: 8, Style: "plain", Speed: true}, cfg)

	_, err = ReadFile(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(err, os.ErrNotExist)
}

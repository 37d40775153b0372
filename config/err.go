package config

import (
	"errors"

	"github.com/ezrec/sapsim/translate"
)

var f = translate.From

var (
	ErrUnknownKey = errors.New(f("unknown configuration key"))
)

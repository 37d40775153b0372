package display

import (
	"errors"

	"github.com/ezrec/sapsim/translate"
)

var f = translate.From

var (
	ErrStyle = errors.New(f("table style must be 'plain' or 'outline'"))
)

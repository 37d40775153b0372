package io

import (
	"errors"

	"github.com/ezrec/sapsim/translate"
)

var f = translate.From

var (
	// Display errors
	ErrTapeFull = errors.New(f("tape full"))
)

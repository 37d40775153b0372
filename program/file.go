package program

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ParseFile reads a CSV program from a file.
func ParseFile(path string) (prog *Program, err error) {
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		err = errors.Wrapf(ErrNotCSV, "%s", path)
		return
	}

	fd, err := os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "opening program %s", path)
		return
	}
	defer fd.Close()

	prog, err = Parse(fd)
	if err != nil {
		err = errors.Wrapf(err, "%s", path)
		return
	}

	return
}

// WriteTemplateFile writes an empty program to a new file.
func WriteTemplateFile(path string) (err error) {
	fd, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		err = errors.Wrapf(err, "creating template %s", path)
		return
	}

	err = WriteTemplate(fd)
	if err != nil {
		fd.Close()
		err = errors.Wrapf(err, "writing template %s", path)
		return
	}

	err = fd.Close()
	if err != nil {
		err = errors.Wrapf(err, "writing template %s", path)
	}

	return
}

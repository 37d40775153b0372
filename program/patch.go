package program

import (
	"strings"

	"github.com/ezrec/sapsim/cpu"
)

// ParsePatches parses a change list of the form "14:3,15:$(2*4)".
// Addresses and values are base-10 integers or $(...) expressions.
// Range checks are left to cpu.Cpu.Patch.
func ParsePatches(text string) (patches []cpu.Patch, err error) {
	if strings.TrimSpace(text) == "" {
		return
	}

	for entry := range strings.SplitSeq(text, ",") {
		addr, value, ok := strings.Cut(entry, ":")
		if !ok {
			err = &ErrPatch{Text: entry, Err: ErrPatchSyntax}
			return
		}

		var patch cpu.Patch
		var address int64
		address, err = valueOf(addr)
		if err != nil {
			err = &ErrPatch{Text: entry, Err: err}
			return
		}
		patch.Address = int(address)

		patch.Value, err = valueOf(value)
		if err != nil {
			err = &ErrPatch{Text: entry, Err: err}
			return
		}

		patches = append(patches, patch)
	}

	return
}

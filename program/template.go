package program

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ezrec/sapsim/cpu"
)

// WriteTemplate writes a program with every address mapped and blank.
func WriteTemplate(w io.Writer) (err error) {
	writer := csv.NewWriter(w)

	err = writer.Write([]string{columnAddress[0], columnFirst[0], columnSecond[0], columnComment[0]})
	if err != nil {
		return
	}

	for addr := range cpu.MEMORY_SLOTS {
		err = writer.Write([]string{strconv.Itoa(addr), "", "", ""})
		if err != nil {
			return
		}
	}

	writer.Flush()

	return writer.Error()
}

package cpu

import (
	"iter"
	"maps"

	"github.com/ezrec/sapsim/internal"
)

const (
	MAX_ADDRESS  = 15 // Highest address reachable by a 4-bit operand.
	MEMORY_SLOTS = 16 // Maximum number of mapped addresses.
)

// Memory is a sparse map of address to value.
// Unmapped addresses are holes, distinct from addresses holding zero.
type Memory map[int]uint64

// Load returns the value at an address, and false if it is unmapped.
func (mem Memory) Load(addr int) (value uint64, ok bool) {
	value, ok = mem[addr]
	return
}

// Mapped returns true if the address holds a value.
func (mem Memory) Mapped(addr int) bool {
	_, ok := mem[addr]
	return ok
}

// Store sets the value at an address, mapping it if needed.
func (mem Memory) Store(addr int, value uint64) {
	mem[addr] = value
}

// Max returns the highest mapped address, and false if memory is empty.
func (mem Memory) Max() (addr int, ok bool) {
	return internal.MaxKey(mem)
}

// All iterates over the mapped addresses in ascending order.
func (mem Memory) All() iter.Seq2[int, uint64] {
	return internal.SortedSeq2(mem)
}

// Clone returns an independent copy.
func (mem Memory) Clone() Memory {
	if mem == nil {
		return Memory{}
	}
	return maps.Clone(mem)
}

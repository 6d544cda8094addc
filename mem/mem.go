// Package mem implements the flat 64 KiB memory fabric consumed by the
// u6502 execution core.
package mem

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/u6502/cpu"
)

// MEMORY_SIZE is the size of the address space in bytes. Addresses wrap
// modulo this size by construction of the 16-bit address.
const MEMORY_SIZE = 1 << 16

var _mem_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%#x", MEMORY_SIZE),
}

// Memory is a flat byte array addressed by 16-bit address.
type Memory struct {
	Data [MEMORY_SIZE]uint8
}

var _ cpu.Bus = (*Memory)(nil)

// NewMemory creates a zero-initialised memory.
func NewMemory() (mem *Memory) {
	return &Memory{}
}

// Defines for the memory
func (mem *Memory) Defines() iter.Seq2[string, string] {
	return maps.All(_mem_defines)
}

// Reset zeroes the memory contents.
func (mem *Memory) Reset() {
	clear(mem.Data[:])
}

// ReadByte returns the byte at an address.
func (mem *Memory) ReadByte(address uint16) uint8 {
	return mem.Data[address]
}

// ReadWord returns the little-endian 16-bit word at an address. The high
// byte of a word read at 0xffff wraps to 0x0000.
func (mem *Memory) ReadWord(address uint16) uint16 {
	return uint16(mem.Data[address+1])<<8 | uint16(mem.Data[address])
}

// WriteByte stores a byte at an address.
func (mem *Memory) WriteByte(address uint16, value uint8) {
	mem.Data[address] = value
}

package cpu

import (
	"iter"
)

// Opcode represents a line of assembled source with its generated bytes.
type Opcode struct {
	LineNo    int
	Addr      uint16
	Words     []string
	Bytes     []uint8
	LinkLabel string
}

// Program is an assembled image: opcodes in address order.
type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug locates the source opcode covering a memory address.
func (prog *Program) Debug(address uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if address >= op.Addr && uint32(address) < uint32(op.Addr)+uint32(len(op.Bytes)) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(address - op.Addr),
			}
			break
		}
	}

	return
}

// Origin is the load address of the first assembled byte.
func (prog *Program) Origin() (origin uint16) {
	if len(prog.Opcodes) > 0 {
		origin = prog.Opcodes[0].Addr
	}

	return
}

// Bytes iterates the assembled image as (address, value) pairs.
func (prog *Program) Bytes() iter.Seq2[uint16, uint8] {
	return func(yield func(address uint16, value uint8) bool) {
		for _, op := range prog.Opcodes {
			for n, value := range op.Bytes {
				if !yield(op.Addr+uint16(n), value) {
					return
				}
			}
		}
	}
}

// Package cpu implements the execution core of the MOS 6502 microprocessor
// and an assembler for its instruction set.
//
// The core consists of the register file (16-bit program counter, 8-bit
// accumulator, X and Y index registers, stack pointer) and the status flag
// register, attached to a 64 KiB byte-addressable memory through the Bus
// interface. A single Step fetches the opcode at the program counter,
// decodes it through a table that is total over the opcode space, resolves
// the operand address from the instruction's addressing mode, applies the
// instruction semantics, and advances the program counter by the encoded
// width. Opcodes with no registered instruction fail with ErrOpcode and
// leave all state untouched.
//
// The assembler provides standard 6502 syntax for the implemented subset,
// with labels, equates, .org/.byte directives, and compile-time expression
// evaluation.
package cpu

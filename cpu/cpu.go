package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
)

// Bus is the memory surface consumed by the CPU: a 64 KiB byte-addressable
// space with little-endian 16-bit word reads. Addresses wrap modulo 65536
// by construction of the uint16 argument; the high byte of a word read at
// 0xffff wraps to 0x0000.
type Bus interface {
	ReadByte(address uint16) uint8
	ReadWord(address uint16) uint16
	WriteByte(address uint16, value uint8)
}

var _cpu_defines = map[string]string{
	"FLAG_N": fmt.Sprintf("%#x", uint8(FLAG_N)),
	"FLAG_V": fmt.Sprintf("%#x", uint8(FLAG_V)),
	"FLAG_B": fmt.Sprintf("%#x", uint8(FLAG_B)),
	"FLAG_D": fmt.Sprintf("%#x", uint8(FLAG_D)),
	"FLAG_I": fmt.Sprintf("%#x", uint8(FLAG_I)),
	"FLAG_Z": fmt.Sprintf("%#x", uint8(FLAG_Z)),
	"FLAG_C": fmt.Sprintf("%#x", uint8(FLAG_C)),
}

// Cpu is the 6502 execution core: the register file and status flags,
// attached to a memory bus. A Cpu is owned by a single goroutine; callers
// embedding it in a multi-threaded host must serialize all stepping.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Bus Bus // Attached memory.

	PC uint16 // Program counter.
	A  uint8  // Accumulator.
	X  uint8  // X index register.
	Y  uint8  // Y index register.
	SP uint8  // Stack pointer.
	SR Flags  // Status register.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU attached to a memory bus.
func NewCpu(bus Bus) (cpu *Cpu) {
	cpu = &Cpu{
		Bus: bus,
	}

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the register file. Memory is the bus owner's concern.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.PC = 0
	cpu.A = 0
	cpu.X = 0
	cpu.Y = 0
	cpu.SP = 0
	cpu.SR = 0
	cpu.Ticks = 0
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{"pc", "a", "x", "y", "sp", "sr"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%04x", cpu.PC)
		case "a":
			strval = fmt.Sprintf("%02x", cpu.A)
		case "x":
			strval = fmt.Sprintf("%02x", cpu.X)
		case "y":
			strval = fmt.Sprintf("%02x", cpu.Y)
		case "sp":
			strval = fmt.Sprintf("%02x", cpu.SP)
		case "sr":
			strval = cpu.SR.String()
		}
		text += fmt.Sprintf("% 3s: %v\n", reg, strval)
	}

	return
}

// Step fetches, decodes and executes the single instruction at the program
// counter, then advances the program counter by the instruction's encoded
// width (modulo 65536). An unimplemented opcode fails with ErrOpcode and
// mutates nothing; the program counter stays on the failed opcode, so the
// caller sees the same error until it intervenes.
func (cpu *Cpu) Step() (err error) {
	opcode := cpu.Bus.ReadByte(cpu.PC)

	ins, err := Decode(opcode)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("%04x: %v", cpu.PC, ins)
	}

	err = cpu.execute(ins)
	if err != nil {
		err = errors.Join(ErrOpcode(ins.Opcode), err)
		return
	}

	cpu.PC += ins.Width()
	cpu.Ticks += 1

	return
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"

	"github.com/ezrec/u6502/cpu"
	"github.com/ezrec/u6502/internal"
	"github.com/ezrec/u6502/mem"
)

// Machine state. CPU + memory + program image.
type Machine struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Mem      *mem.Memory  // Memory fabric.
	Program  *cpu.Program // Reference to the currently loaded program listing.
}

// NewMachine creates a new machine.
func NewMachine() (m *Machine) {
	m = &Machine{
		Mem:     mem.NewMemory(),
		Program: &cpu.Program{},
	}
	m.Cpu = cpu.NewCpu(m.Mem)

	return
}

// Defines returns an iterator over all of the defines
func (m *Machine) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		m.Cpu.Defines(),
		m.Mem.Defines(),
	)
}

// Reset zeroes memory and the register file, loads the program image, and
// points the program counter at its origin.
func (m *Machine) Reset() (err error) {
	m.Cpu.Verbose = false

	m.Mem.Reset()
	m.Cpu.Reset()

	for address, value := range m.Program.Bytes() {
		m.Mem.WriteByte(address, value)
	}
	m.Cpu.PC = m.Program.Origin()

	m.Cpu.Verbose = m.Verbose

	return
}

// LineNo returns the current source line number for the executing opcode.
func (m *Machine) LineNo() int {
	dbg := m.Program.Debug(m.Cpu.PC)
	if dbg.Opcode != nil {
		return dbg.Opcode.LineNo
	}

	return 0
}

// Step performs a single instruction step. done reports that the program
// counter has left the assembled image.
func (m *Machine) Step() (done bool, err error) {
	// Set CPU verbosity
	m.Cpu.Verbose = m.Verbose

	lineno := m.LineNo()
	addr := m.Cpu.PC
	defer func() {
		if err != nil {
			err = &ErrRuntime{Addr: addr, LineNo: lineno, Err: err}
		}
	}()

	if m.Program.Debug(m.Cpu.PC).Opcode == nil {
		done = true
		return
	}

	err = m.Cpu.Step()

	return
}

// Run steps the machine until the program counter leaves the program
// image, an error occurs, or limit instructions have executed (limit <= 0
// runs unbounded).
func (m *Machine) Run(limit int) (err error) {
	for n := 0; limit <= 0 || n < limit; n++ {
		var done bool
		done, err = m.Step()
		if done || err != nil {
			return
		}
	}

	return
}

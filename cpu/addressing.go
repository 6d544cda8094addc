package cpu

// readZeroPageWord reads a little-endian 16-bit pointer from page zero.
// The high byte wraps within the page: a pointer at 0xff takes its high
// byte from 0x00.
func (cpu *Cpu) readZeroPageWord(pointer uint8) uint16 {
	lo := cpu.Bus.ReadByte(uint16(pointer))
	hi := cpu.Bus.ReadByte(uint16(pointer + 1))

	return uint16(hi)<<8 | uint16(lo)
}

// EffectiveAddress computes the operand address for an instruction at the
// current program counter. It is a pure function of (instruction, PC, X, Y,
// memory): no register, flag or memory state is modified. Modes without an
// operand address (implied, accumulator) fail with ErrNoOperand.
func (cpu *Cpu) EffectiveAddress(ins Instruction) (address uint16, err error) {
	switch ins.Mode {
	case MODE_INDEXED_INDIRECT:
		// zero-page pointer plus X, 8-bit wrap, then dereference within
		// page zero
		pointer := cpu.Bus.ReadByte(cpu.PC+1) + cpu.X
		address = cpu.readZeroPageWord(pointer)
	case MODE_INDIRECT_INDEXED:
		// dereference the zero-page pointer, then add Y with a 16-bit add
		// that may cross pages
		pointer := cpu.Bus.ReadByte(cpu.PC + 1)
		address = cpu.readZeroPageWord(pointer) + uint16(cpu.Y)
	case MODE_ZERO_PAGE:
		address = uint16(cpu.Bus.ReadByte(cpu.PC + 1))
	case MODE_ZERO_PAGE_X:
		// 8-bit wrap: the effective address stays within page zero
		address = uint16(cpu.Bus.ReadByte(cpu.PC+1) + cpu.X)
	case MODE_ZERO_PAGE_Y:
		address = uint16(cpu.Bus.ReadByte(cpu.PC+1) + cpu.Y)
	case MODE_IMMEDIATE:
		// the operand is the byte following the opcode
		address = cpu.PC + 1
	case MODE_ABSOLUTE:
		address = cpu.Bus.ReadWord(cpu.PC + 1)
	case MODE_ABSOLUTE_X:
		// 16-bit add, may wrap past 0xffff back to 0
		address = cpu.Bus.ReadWord(cpu.PC+1) + uint16(cpu.X)
	case MODE_ABSOLUTE_Y:
		address = cpu.Bus.ReadWord(cpu.PC+1) + uint16(cpu.Y)
	default:
		err = ErrNoOperand
	}

	return
}

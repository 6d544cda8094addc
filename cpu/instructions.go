package cpu

// fetchOperand reads the instruction's operand byte: the accumulator for
// accumulator mode, a memory read through the resolved effective address
// otherwise.
func (cpu *Cpu) fetchOperand(ins Instruction) (value uint8, err error) {
	if ins.Mode == MODE_ACCUMULATOR {
		value = cpu.A
		return
	}

	address, err := cpu.EffectiveAddress(ins)
	if err != nil {
		return
	}

	value = cpu.Bus.ReadByte(address)
	return
}

// store writes a register to the instruction's effective address. Stores
// touch no flags.
func (cpu *Cpu) store(ins Instruction, value uint8) (err error) {
	address, err := cpu.EffectiveAddress(ins)
	if err != nil {
		return
	}

	cpu.Bus.WriteByte(address, value)
	return
}

// modify applies a read-modify-write operation to the accumulator or to the
// byte at the instruction's effective address, writing the result back to
// the same location.
func (cpu *Cpu) modify(ins Instruction, op func(uint8) uint8) (err error) {
	if ins.Mode == MODE_ACCUMULATOR {
		cpu.A = op(cpu.A)
		return
	}

	address, err := cpu.EffectiveAddress(ins)
	if err != nil {
		return
	}

	cpu.Bus.WriteByte(address, op(cpu.Bus.ReadByte(address)))
	return
}

// load sets a register to a value, recomputing Zero and Negative from the
// value actually loaded, never from the accumulator.
func (cpu *Cpu) load(dst *uint8, value uint8) {
	*dst = value
	cpu.SR.UpdateZero(value)
	cpu.SR.UpdateNegative(value)
}

// stepByOne adjusts a value by ±1 with 8-bit wrap, recomputing Zero and
// Negative from the new value.
func (cpu *Cpu) stepByOne(value uint8, delta uint8) uint8 {
	return cpu.stepFlags(value + delta)
}

// addWithCarry adds the operand and the carry-in to the accumulator.
// Carry-out is bit 8 of the 9-bit sum. Overflow follows the
// two's-complement rule: both operands share a sign that differs from the
// result's.
func (cpu *Cpu) addWithCarry(operand uint8) {
	carry := uint16(0)
	if cpu.SR.Has(FLAG_C) {
		carry = 1
	}

	sum := uint16(cpu.A) + uint16(operand) + carry
	result := uint8(sum)

	cpu.SR.Assign(FLAG_C, sum > 0xff)
	cpu.SR.Assign(FLAG_V, (cpu.A^result)&(operand^result)&0x80 != 0)
	cpu.load(&cpu.A, result)
}

// subtractWithCarry computes A - operand - (1 - carry-in). Carry-out means
// no borrow. As on the hardware, subtraction is addition of the operand's
// complement, which yields the same carry and overflow.
func (cpu *Cpu) subtractWithCarry(operand uint8) {
	cpu.addWithCarry(^operand)
}

// compare subtracts the operand from a register without storing the
// result; carry is set when the register is at least the operand.
func (cpu *Cpu) compare(reg uint8, operand uint8) {
	diff := reg - operand
	cpu.SR.Assign(FLAG_C, reg >= operand)
	cpu.SR.UpdateZero(diff)
	cpu.SR.UpdateNegative(diff)
}

// shiftLeft shifts a value left one bit; bit 7 becomes the carry.
func (cpu *Cpu) shiftLeft(value uint8) uint8 {
	cpu.SR.Assign(FLAG_C, value&0x80 != 0)
	return cpu.stepFlags(value << 1)
}

// shiftRight shifts a value right one bit; bit 0 becomes the carry.
func (cpu *Cpu) shiftRight(value uint8) uint8 {
	cpu.SR.Assign(FLAG_C, value&0x01 != 0)
	return cpu.stepFlags(value >> 1)
}

// rotateLeft rotates a value left through the carry: bit 7 becomes the new
// carry, the old carry becomes bit 0.
func (cpu *Cpu) rotateLeft(value uint8) uint8 {
	carry := uint8(0)
	if cpu.SR.Has(FLAG_C) {
		carry = 1
	}
	cpu.SR.Assign(FLAG_C, value&0x80 != 0)
	return cpu.stepFlags(value<<1 | carry)
}

// rotateRight rotates a value right through the carry: bit 0 becomes the
// new carry, the old carry becomes bit 7.
func (cpu *Cpu) rotateRight(value uint8) uint8 {
	carry := uint8(0)
	if cpu.SR.Has(FLAG_C) {
		carry = 0x80
	}
	cpu.SR.Assign(FLAG_C, value&0x01 != 0)
	return cpu.stepFlags(value>>1 | carry)
}

// stepFlags recomputes Zero and Negative from a shifted or rotated value.
func (cpu *Cpu) stepFlags(value uint8) uint8 {
	cpu.SR.UpdateZero(value)
	cpu.SR.UpdateNegative(value)
	return value
}

// execute applies a decoded instruction's semantics. Each instruction
// touches exactly its documented flag set and nothing else.
func (cpu *Cpu) execute(ins Instruction) (err error) {
	switch ins.Op {
	case OP_NOP:
		// no state change

	case OP_ORA:
		var value uint8
		if value, err = cpu.fetchOperand(ins); err != nil {
			return
		}
		cpu.load(&cpu.A, cpu.A|value)
	case OP_AND:
		var value uint8
		if value, err = cpu.fetchOperand(ins); err != nil {
			return
		}
		cpu.load(&cpu.A, cpu.A&value)
	case OP_EOR:
		var value uint8
		if value, err = cpu.fetchOperand(ins); err != nil {
			return
		}
		cpu.load(&cpu.A, cpu.A^value)

	case OP_ADC:
		var value uint8
		if value, err = cpu.fetchOperand(ins); err != nil {
			return
		}
		cpu.addWithCarry(value)
	case OP_SBC:
		var value uint8
		if value, err = cpu.fetchOperand(ins); err != nil {
			return
		}
		cpu.subtractWithCarry(value)
	case OP_CMP:
		var value uint8
		if value, err = cpu.fetchOperand(ins); err != nil {
			return
		}
		cpu.compare(cpu.A, value)

	case OP_ASL:
		err = cpu.modify(ins, cpu.shiftLeft)
	case OP_LSR:
		err = cpu.modify(ins, cpu.shiftRight)
	case OP_ROL:
		err = cpu.modify(ins, cpu.rotateLeft)
	case OP_ROR:
		err = cpu.modify(ins, cpu.rotateRight)
	case OP_INC:
		err = cpu.modify(ins, func(value uint8) uint8 { return cpu.stepByOne(value, 1) })
	case OP_DEC:
		err = cpu.modify(ins, func(value uint8) uint8 { return cpu.stepByOne(value, 0xff) })

	case OP_LDA:
		var value uint8
		if value, err = cpu.fetchOperand(ins); err != nil {
			return
		}
		cpu.load(&cpu.A, value)
	case OP_LDX:
		var value uint8
		if value, err = cpu.fetchOperand(ins); err != nil {
			return
		}
		cpu.load(&cpu.X, value)
	case OP_LDY:
		var value uint8
		if value, err = cpu.fetchOperand(ins); err != nil {
			return
		}
		cpu.load(&cpu.Y, value)

	case OP_STA:
		err = cpu.store(ins, cpu.A)
	case OP_STX:
		err = cpu.store(ins, cpu.X)
	case OP_STY:
		err = cpu.store(ins, cpu.Y)

	case OP_TAX:
		cpu.load(&cpu.X, cpu.A)
	case OP_TAY:
		cpu.load(&cpu.Y, cpu.A)
	case OP_TXA:
		cpu.load(&cpu.A, cpu.X)
	case OP_TYA:
		cpu.load(&cpu.A, cpu.Y)
	case OP_TSX:
		cpu.load(&cpu.X, cpu.SP)
	case OP_TXS:
		// the only transfer that touches no flags
		cpu.SP = cpu.X

	case OP_INX:
		cpu.X = cpu.stepByOne(cpu.X, 1)
	case OP_INY:
		cpu.Y = cpu.stepByOne(cpu.Y, 1)
	case OP_DEX:
		cpu.X = cpu.stepByOne(cpu.X, 0xff)
	case OP_DEY:
		cpu.Y = cpu.stepByOne(cpu.Y, 0xff)

	case OP_CLC:
		cpu.SR.Clear(FLAG_C)
	case OP_CLD:
		cpu.SR.Clear(FLAG_D)
	case OP_CLI:
		cpu.SR.Clear(FLAG_I)
	case OP_CLV:
		cpu.SR.Clear(FLAG_V)
	case OP_SEC:
		cpu.SR.Set(FLAG_C)
	case OP_SED:
		cpu.SR.Set(FLAG_D)
	case OP_SEI:
		cpu.SR.Set(FLAG_I)

	default:
		err = ErrOpcode(ins.Opcode)
	}

	return
}

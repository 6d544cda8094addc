package cpu

import (
	"fmt"
)

// AddressingMode is the rule for computing an instruction's effective
// operand address. The first eight values match the encoding order of the
// low-nibble opcode groups.
type AddressingMode int

//go:generate go tool stringer -linecomment -type=AddressingMode
const (
	MODE_INDEXED_INDIRECT = AddressingMode(0)  // (zp,x)
	MODE_INDIRECT_INDEXED = AddressingMode(1)  // (zp),y
	MODE_ZERO_PAGE        = AddressingMode(2)  // zp
	MODE_ZERO_PAGE_X      = AddressingMode(3)  // zp,x
	MODE_IMMEDIATE        = AddressingMode(4)  // #imm
	MODE_ABSOLUTE_Y       = AddressingMode(5)  // abs,y
	MODE_ABSOLUTE         = AddressingMode(6)  // abs
	MODE_ABSOLUTE_X       = AddressingMode(7)  // abs,x
	MODE_ZERO_PAGE_Y      = AddressingMode(8)  // zp,y
	MODE_ACCUMULATOR      = AddressingMode(9)  // a
	MODE_IMPLIED          = AddressingMode(10) // implied
)

// Width returns the encoded byte width of an instruction using this mode.
func (mode AddressingMode) Width() uint16 {
	switch mode {
	case MODE_ACCUMULATOR, MODE_IMPLIED:
		return 1
	case MODE_ABSOLUTE, MODE_ABSOLUTE_X, MODE_ABSOLUTE_Y:
		return 3
	default:
		return 2
	}
}

// Mnemonic identifies an instruction's operation.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_NOP = Mnemonic(iota) // nop
	OP_ORA                  // ora
	OP_AND                  // and
	OP_EOR                  // eor
	OP_ADC                  // adc
	OP_SBC                  // sbc
	OP_CMP                  // cmp
	OP_ASL                  // asl
	OP_LSR                  // lsr
	OP_ROL                  // rol
	OP_ROR                  // ror
	OP_INC                  // inc
	OP_DEC                  // dec
	OP_LDA                  // lda
	OP_LDX                  // ldx
	OP_LDY                  // ldy
	OP_STA                  // sta
	OP_STX                  // stx
	OP_STY                  // sty
	OP_TAX                  // tax
	OP_TAY                  // tay
	OP_TXA                  // txa
	OP_TYA                  // tya
	OP_TSX                  // tsx
	OP_TXS                  // txs
	OP_INX                  // inx
	OP_INY                  // iny
	OP_DEX                  // dex
	OP_DEY                  // dey
	OP_CLC                  // clc
	OP_CLD                  // cld
	OP_CLI                  // cli
	OP_CLV                  // clv
	OP_SEC                  // sec
	OP_SED                  // sed
	OP_SEI                  // sei
)

// Instruction is the transient decode result for a single opcode byte.
// No instruction-level state persists between steps.
type Instruction struct {
	Opcode uint8
	Op     Mnemonic
	Mode   AddressingMode
}

// Width returns the instruction's encoded byte width.
func (ins Instruction) Width() uint16 {
	return ins.Mode.Width()
}

func (ins Instruction) String() string {
	if ins.Mode == MODE_IMPLIED {
		return ins.Op.String()
	}
	return fmt.Sprintf("%v %v", ins.Op, ins.Mode)
}

// optable maps every opcode byte to its instruction. A nil entry is an
// unimplemented opcode.
var optable [256]*Instruction

// groupMode derives the addressing mode for the regularly encoded opcode
// families. The low nibble selects a pair of modes and the parity of the
// high nibble selects the pair member:
//
//	0x01       => (zp,x) / (zp),y
//	0x05, 0x06 => zp / zp,x
//	0x09       => #imm / abs,y
//	0x0d, 0x0e => abs / abs,x
func groupMode(opcode uint8) (mode AddressingMode, ok bool) {
	lo := opcode & 0x0f
	hi := opcode >> 4

	switch lo {
	case 0x1, 0x5, 0x6, 0x9, 0xd, 0xe:
		mode = AddressingMode((lo-1)>>1 | (hi & 0x1))
		ok = true
	}

	return
}

// register adds an opcode to the decode table with an explicit addressing
// mode.
func register(opcode uint8, op Mnemonic, mode AddressingMode) {
	if optable[opcode] != nil {
		panic(fmt.Sprintf("opcode 0x%02x registered twice", opcode))
	}
	optable[opcode] = &Instruction{Opcode: opcode, Op: op, Mode: mode}
}

// registerGroup adds an opcode whose addressing mode follows the low-nibble
// group encoding.
func registerGroup(opcode uint8, op Mnemonic) {
	mode, ok := groupMode(opcode)
	if !ok {
		panic(fmt.Sprintf("opcode 0x%02x is not group encoded", opcode))
	}
	register(opcode, op, mode)
}

func init() {
	// Accumulator family: all eight group modes, derived from the low
	// nibble and high-nibble parity.
	accumulator := map[uint8]Mnemonic{
		0x00: OP_ORA, 0x20: OP_AND, 0x40: OP_EOR, 0x60: OP_ADC,
		0x80: OP_STA, 0xa0: OP_LDA, 0xc0: OP_CMP, 0xe0: OP_SBC,
	}
	for base, op := range accumulator {
		for _, lo := range []uint8{0x01, 0x05, 0x09, 0x0d, 0x11, 0x15, 0x19, 0x1d} {
			if base|lo == 0x89 {
				// STA has no immediate form
				continue
			}
			registerGroup(base|lo, op)
		}
	}

	// Read-modify-write column: zp / abs and their X-indexed forms.
	modify := map[uint8]Mnemonic{
		0x00: OP_ASL, 0x20: OP_ROL, 0x40: OP_LSR, 0x60: OP_ROR,
		0xc0: OP_DEC, 0xe0: OP_INC,
	}
	for base, op := range modify {
		for _, lo := range []uint8{0x06, 0x0e, 0x16, 0x1e} {
			registerGroup(base|lo, op)
		}
	}
	register(0x0a, OP_ASL, MODE_ACCUMULATOR)
	register(0x2a, OP_ROL, MODE_ACCUMULATOR)
	register(0x4a, OP_LSR, MODE_ACCUMULATOR)
	register(0x6a, OP_ROR, MODE_ACCUMULATOR)

	// Index register loads and stores. The Y-indexed forms of LDX/STX fall
	// outside the group encoding and carry explicit modes.
	register(0xa2, OP_LDX, MODE_IMMEDIATE)
	registerGroup(0xa6, OP_LDX)
	registerGroup(0xae, OP_LDX)
	register(0xb6, OP_LDX, MODE_ZERO_PAGE_Y)
	register(0xbe, OP_LDX, MODE_ABSOLUTE_Y)

	registerGroup(0x86, OP_STX)
	registerGroup(0x8e, OP_STX)
	register(0x96, OP_STX, MODE_ZERO_PAGE_Y)

	register(0xa0, OP_LDY, MODE_IMMEDIATE)
	register(0xa4, OP_LDY, MODE_ZERO_PAGE)
	register(0xac, OP_LDY, MODE_ABSOLUTE)
	register(0xb4, OP_LDY, MODE_ZERO_PAGE_X)
	register(0xbc, OP_LDY, MODE_ABSOLUTE_X)

	register(0x84, OP_STY, MODE_ZERO_PAGE)
	register(0x8c, OP_STY, MODE_ABSOLUTE)
	register(0x94, OP_STY, MODE_ZERO_PAGE_X)

	// Single-byte implied encodings.
	implied := map[uint8]Mnemonic{
		0xea: OP_NOP,
		0xaa: OP_TAX, 0xa8: OP_TAY, 0x8a: OP_TXA, 0x98: OP_TYA,
		0xba: OP_TSX, 0x9a: OP_TXS,
		0xe8: OP_INX, 0xc8: OP_INY, 0xca: OP_DEX, 0x88: OP_DEY,
		0x18: OP_CLC, 0xd8: OP_CLD, 0x58: OP_CLI, 0xb8: OP_CLV,
		0x38: OP_SEC, 0xf8: OP_SED, 0x78: OP_SEI,
	}
	for opcode, op := range implied {
		register(opcode, op, MODE_IMPLIED)
	}
}

// Decode resolves an opcode byte into its instruction. The decode table is
// total over the opcode space; unregistered opcodes fail with ErrOpcode.
func Decode(opcode uint8) (ins Instruction, err error) {
	entry := optable[opcode]
	if entry == nil {
		err = ErrOpcode(opcode)
		return
	}

	ins = *entry
	return
}

// opcodeFor finds the opcode byte encoding a mnemonic with a given
// addressing mode.
func opcodeFor(op Mnemonic, mode AddressingMode) (opcode uint8, ok bool) {
	for n, entry := range optable {
		if entry != nil && entry.Op == op && entry.Mode == mode {
			return uint8(n), true
		}
	}

	return
}

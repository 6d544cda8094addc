package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	for _, test := range []struct {
		opcode uint8
		op     Mnemonic
		mode   AddressingMode
		width  uint16
	}{
		{0xea, OP_NOP, MODE_IMPLIED, 1},
		{0xa9, OP_LDA, MODE_IMMEDIATE, 2},
		{0xa5, OP_LDA, MODE_ZERO_PAGE, 2},
		{0xb5, OP_LDA, MODE_ZERO_PAGE_X, 2},
		{0xad, OP_LDA, MODE_ABSOLUTE, 3},
		{0xbd, OP_LDA, MODE_ABSOLUTE_X, 3},
		{0xb9, OP_LDA, MODE_ABSOLUTE_Y, 3},
		{0xa1, OP_LDA, MODE_INDEXED_INDIRECT, 2},
		{0xb1, OP_LDA, MODE_INDIRECT_INDEXED, 2},
		{0x69, OP_ADC, MODE_IMMEDIATE, 2},
		{0x75, OP_ADC, MODE_ZERO_PAGE_X, 2},
		{0xe5, OP_SBC, MODE_ZERO_PAGE, 2},
		{0xf1, OP_SBC, MODE_INDIRECT_INDEXED, 2},
		{0xc9, OP_CMP, MODE_IMMEDIATE, 2},
		{0x0a, OP_ASL, MODE_ACCUMULATOR, 1},
		{0x06, OP_ASL, MODE_ZERO_PAGE, 2},
		{0x1e, OP_ASL, MODE_ABSOLUTE_X, 3},
		{0x2a, OP_ROL, MODE_ACCUMULATOR, 1},
		{0x2e, OP_ROL, MODE_ABSOLUTE, 3},
		{0x36, OP_ROL, MODE_ZERO_PAGE_X, 2},
		{0x4a, OP_LSR, MODE_ACCUMULATOR, 1},
		{0x6a, OP_ROR, MODE_ACCUMULATOR, 1},
		{0xe6, OP_INC, MODE_ZERO_PAGE, 2},
		{0xce, OP_DEC, MODE_ABSOLUTE, 3},
		{0x85, OP_STA, MODE_ZERO_PAGE, 2},
		{0x8d, OP_STA, MODE_ABSOLUTE, 3},
		{0x91, OP_STA, MODE_INDIRECT_INDEXED, 2},
		{0xa2, OP_LDX, MODE_IMMEDIATE, 2},
		{0xb6, OP_LDX, MODE_ZERO_PAGE_Y, 2},
		{0xbe, OP_LDX, MODE_ABSOLUTE_Y, 3},
		{0x96, OP_STX, MODE_ZERO_PAGE_Y, 2},
		{0xa0, OP_LDY, MODE_IMMEDIATE, 2},
		{0xbc, OP_LDY, MODE_ABSOLUTE_X, 3},
		{0x94, OP_STY, MODE_ZERO_PAGE_X, 2},
		{0xaa, OP_TAX, MODE_IMPLIED, 1},
		{0x9a, OP_TXS, MODE_IMPLIED, 1},
		{0xe8, OP_INX, MODE_IMPLIED, 1},
		{0x88, OP_DEY, MODE_IMPLIED, 1},
		{0x18, OP_CLC, MODE_IMPLIED, 1},
		{0xb8, OP_CLV, MODE_IMPLIED, 1},
		{0x78, OP_SEI, MODE_IMPLIED, 1},
	} {
		ins, err := Decode(test.opcode)
		if !assert.NoError(err, "opcode %#02x", test.opcode) {
			continue
		}
		assert.Equal(test.opcode, ins.Opcode, "opcode %#02x", test.opcode)
		assert.Equal(test.op, ins.Op, "opcode %#02x", test.opcode)
		assert.Equal(test.mode, ins.Mode, "opcode %#02x", test.opcode)
		assert.Equal(test.width, ins.Width(), "opcode %#02x", test.opcode)
	}
}

func TestDecode_Unimplemented(t *testing.T) {
	assert := assert.New(t)

	for _, opcode := range []uint8{0x00, 0x02, 0x03, 0x04, 0x07, 0x0b, 0x0c, 0x0f, 0x80, 0x89, 0x9e, 0xff} {
		_, err := Decode(opcode)
		assert.ErrorIs(err, ErrOpcode(opcode), "opcode %#02x", opcode)
	}
}

func TestDecode_Total(t *testing.T) {
	assert := assert.New(t)

	implemented := 0
	for n := range 256 {
		opcode := uint8(n)
		ins, err := Decode(opcode)
		if err != nil {
			assert.ErrorIs(err, ErrOpcode(opcode), "opcode %#02x", opcode)
			continue
		}
		implemented += 1

		assert.Equal(opcode, ins.Opcode, "opcode %#02x", opcode)
		assert.GreaterOrEqual(ins.Width(), uint16(1), "opcode %#02x", opcode)
		assert.LessOrEqual(ins.Width(), uint16(3), "opcode %#02x", opcode)

		// Decoding is deterministic.
		again, err := Decode(opcode)
		assert.NoError(err)
		assert.Equal(ins, again, "opcode %#02x", opcode)
	}

	// 8 accumulator ops x 8 modes - STA immediate, 6 modify ops x 4 modes,
	// 4 accumulator-mode shifts, 16 index load/store forms, 18 implied.
	assert.Equal(8*8-1+6*4+4+16+18, implemented)
}

func TestGroupMode(t *testing.T) {
	assert := assert.New(t)

	for _, test := range []struct {
		opcode uint8
		mode   AddressingMode
	}{
		{0x01, MODE_INDEXED_INDIRECT},
		{0x11, MODE_INDIRECT_INDEXED},
		{0x05, MODE_ZERO_PAGE},
		{0x15, MODE_ZERO_PAGE_X},
		{0x06, MODE_ZERO_PAGE},
		{0x16, MODE_ZERO_PAGE_X},
		{0x09, MODE_IMMEDIATE},
		{0x19, MODE_ABSOLUTE_Y},
		{0x0d, MODE_ABSOLUTE},
		{0x1d, MODE_ABSOLUTE_X},
		{0x0e, MODE_ABSOLUTE},
		{0x1e, MODE_ABSOLUTE_X},
		// The high nibble contributes only its parity.
		{0xa1, MODE_INDEXED_INDIRECT},
		{0xf1, MODE_INDIRECT_INDEXED},
		{0xe9, MODE_IMMEDIATE},
		{0xf9, MODE_ABSOLUTE_Y},
	} {
		mode, ok := groupMode(test.opcode)
		assert.True(ok, "opcode %#02x", test.opcode)
		assert.Equal(test.mode, mode, "opcode %#02x", test.opcode)
	}

	for _, lo := range []uint8{0x0, 0x2, 0x3, 0x4, 0x7, 0x8, 0xa, 0xb, 0xc, 0xf} {
		for hi := uint8(0); hi < 16; hi++ {
			_, ok := groupMode(hi<<4 | lo)
			assert.False(ok, "opcode %#02x", hi<<4|lo)
		}
	}
}

func TestInstruction_String(t *testing.T) {
	assert := assert.New(t)

	ins, err := Decode(0xa9)
	assert.NoError(err)
	assert.Equal("lda #imm", ins.String())

	ins, err = Decode(0xe8)
	assert.NoError(err)
	assert.Equal("inx", ins.String())

	ins, err = Decode(0x0a)
	assert.NoError(err)
	assert.Equal("asl a", ins.String())

	ins, err = Decode(0x81)
	assert.NoError(err)
	assert.Equal("sta (zp,x)", ins.String())
}

func TestOpcodeFor(t *testing.T) {
	assert := assert.New(t)

	opcode, ok := opcodeFor(OP_LDA, MODE_IMMEDIATE)
	assert.True(ok)
	assert.Equal(uint8(0xa9), opcode)

	opcode, ok = opcodeFor(OP_STX, MODE_ZERO_PAGE_Y)
	assert.True(ok)
	assert.Equal(uint8(0x96), opcode)

	_, ok = opcodeFor(OP_STA, MODE_IMMEDIATE)
	assert.False(ok)

	_, ok = opcodeFor(OP_INX, MODE_ZERO_PAGE)
	assert.False(ok)
}

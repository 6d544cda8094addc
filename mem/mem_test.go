package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()

	mem.WriteByte(0x1234, 0x56)
	assert.Equal(uint8(0x56), mem.ReadByte(0x1234))
	assert.Equal(uint8(0x00), mem.ReadByte(0x1235))

	mem.Reset()
	assert.Equal(uint8(0x00), mem.ReadByte(0x1234))
}

func TestMemory_ReadWord(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()

	// Words are little-endian.
	mem.WriteByte(0x1000, 0xcd)
	mem.WriteByte(0x1001, 0xab)
	assert.Equal(uint16(0xabcd), mem.ReadWord(0x1000))

	// The high byte of a word read at the top of memory wraps to 0x0000.
	mem.WriteByte(0xffff, 0x34)
	mem.WriteByte(0x0000, 0x12)
	assert.Equal(uint16(0x1234), mem.ReadWord(0xffff))
}

func TestMemory_Defines(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory()

	defines := map[string]string{}
	for attr, val := range mem.Defines() {
		defines[attr] = val
	}

	assert.Equal("0x10000", defines["MEMORY_SIZE"])
}

package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags_SetClearAssign(t *testing.T) {
	assert := assert.New(t)

	sr := Flags(0)
	sr.Set(FLAG_C)
	assert.Equal(Flags(0x01), sr)

	sr.Set(FLAG_N | FLAG_Z)
	assert.Equal(Flags(0x83), sr)

	sr.Clear(FLAG_Z)
	assert.Equal(Flags(0x81), sr)

	sr.Assign(FLAG_V, true)
	assert.Equal(Flags(0xc1), sr)

	sr.Assign(FLAG_V, false)
	assert.Equal(Flags(0x81), sr)

	// Bits outside the mask are never disturbed.
	sr = Flags(0xff)
	sr.Clear(FLAG_V)
	assert.Equal(Flags(0xbf), sr)
	sr.Set(FLAG_V)
	assert.Equal(Flags(0xff), sr)
	sr.Assign(FLAG_D, false)
	assert.Equal(Flags(0xf7), sr)
}

func TestFlags_Has(t *testing.T) {
	assert := assert.New(t)

	sr := FLAG_N | FLAG_C
	assert.True(sr.Has(FLAG_N))
	assert.True(sr.Has(FLAG_C))
	assert.True(sr.Has(FLAG_N | FLAG_C))
	assert.False(sr.Has(FLAG_Z))
	assert.False(sr.Has(FLAG_N | FLAG_Z))
}

func TestFlags_UpdateZero(t *testing.T) {
	assert := assert.New(t)

	for v := range 256 {
		sr := Flags(0)
		sr.UpdateZero(uint8(v))
		assert.Equal(v == 0, sr.Has(FLAG_Z), "value %#02x", v)

		// Re-applying the same value is idempotent.
		sr.UpdateZero(uint8(v))
		assert.Equal(v == 0, sr.Has(FLAG_Z), "value %#02x", v)
	}
}

func TestFlags_UpdateNegative(t *testing.T) {
	assert := assert.New(t)

	for v := range 256 {
		sr := Flags(0)
		sr.UpdateNegative(uint8(v))
		assert.Equal(v&0x80 != 0, sr.Has(FLAG_N), "value %#02x", v)
	}
}

func TestFlags_IgnoredBit(t *testing.T) {
	assert := assert.New(t)

	// Bit 5 round-trips unchanged through every flag operation.
	sr := FLAG_U
	sr.UpdateZero(0)
	sr.UpdateNegative(0x80)
	sr.Assign(FLAG_C, true)
	sr.Clear(FLAG_N | FLAG_Z | FLAG_C)
	assert.True(sr.Has(FLAG_U))
	assert.Equal(FLAG_U, sr)
}

func TestFlags_String(t *testing.T) {
	assert := assert.New(t)

	for _, test := range []struct {
		flags Flags
		text  string
	}{
		{Flags(0x00), "nv-bdizc"},
		{Flags(0xff), "NV-BDIZC"},
		{FLAG_C, "nv-bdizC"},
		{FLAG_N | FLAG_Z, "Nv-bdiZc"},
		{FLAG_U, "nv-bdizc"},
		{FLAG_V | FLAG_D, "nV-bDizc"},
	} {
		assert.Equal(test.text, test.flags.String())
	}
}

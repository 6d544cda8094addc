package cpu

import (
	"strings"
)

// Flags is the 8-bit processor status register. Each bit is independently
// meaningful; bit 5 has no semantic effect but round-trips unchanged.
type Flags uint8

// Status register bit masks.
const (
	FLAG_N = Flags(0x80) // Negative
	FLAG_V = Flags(0x40) // Overflow
	FLAG_U = Flags(0x20) // Ignored (bit 5)
	FLAG_B = Flags(0x10) // Break
	FLAG_D = Flags(0x08) // Decimal
	FLAG_I = Flags(0x04) // Interrupt disable
	FLAG_Z = Flags(0x02) // Zero
	FLAG_C = Flags(0x01) // Carry
)

// Clear clears the masked bits, preserving all bits outside the mask.
func (sr *Flags) Clear(mask Flags) {
	*sr &^= mask
}

// Set sets the masked bits, preserving all bits outside the mask.
func (sr *Flags) Set(mask Flags) {
	*sr |= mask
}

// Assign sets or clears the masked bits according to value.
func (sr *Flags) Assign(mask Flags, value bool) {
	*sr &^= mask
	if value {
		*sr |= mask
	}
}

// Has reports whether all masked bits are set.
func (sr Flags) Has(mask Flags) bool {
	return sr&mask == mask
}

// UpdateZero assigns the Zero flag from a register's new value.
func (sr *Flags) UpdateZero(value uint8) {
	sr.Assign(FLAG_Z, value == 0)
}

// UpdateNegative assigns the Negative flag from bit 7 of a register's new
// value.
func (sr *Flags) UpdateNegative(value uint8) {
	sr.Assign(FLAG_N, value&0x80 != 0)
}

// String renders the flags in the conventional "nv-bdizc" form, upper-case
// for set bits.
func (sr Flags) String() string {
	s := strings.Builder{}

	masks := []Flags{FLAG_N, FLAG_V, FLAG_U, FLAG_B, FLAG_D, FLAG_I, FLAG_Z, FLAG_C}
	names := "nvubdizc"

	for n, mask := range masks {
		if mask == FLAG_U {
			s.WriteRune('-')
			continue
		}
		name := rune(names[n])
		if sr.Has(mask) {
			name += 'A' - 'a'
		}
		s.WriteRune(name)
	}

	return s.String()
}

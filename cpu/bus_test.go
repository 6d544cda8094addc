package cpu

// testBus is a flat 64 KiB memory for exercising the execution core without
// pulling in the memory fabric package.
type testBus struct {
	data [1 << 16]uint8
}

func (bus *testBus) ReadByte(address uint16) uint8 {
	return bus.data[address]
}

func (bus *testBus) ReadWord(address uint16) uint16 {
	return uint16(bus.data[address+1])<<8 | uint16(bus.data[address])
}

func (bus *testBus) WriteByte(address uint16, value uint8) {
	bus.data[address] = value
}

func testCpu() (*Cpu, *testBus) {
	bus := &testBus{}
	return NewCpu(bus), bus
}

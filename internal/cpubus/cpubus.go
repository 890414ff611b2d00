// Package cpubus implements the CPU-side memory map: 2KB internal RAM
// mirrored across $0000-$1FFF, PPU registers mirrored every 8 bytes across
// $2000-$3FFF, and cartridge space at $4020-$FFFF. APU and controller I/O
// are out of scope; the $4000-$401F window reads back zero and ignores
// writes.
package cpubus

// PPU is the register-level interface the CPU bus delegates $2000-$3FFF to.
type PPU interface {
	ReadRegister(addr uint16) uint8
	WriteRegister(addr uint16, v uint8)
}

// Cartridge is the interface the CPU bus delegates $4020-$FFFF to.
type Cartridge interface {
	ReadPRG(addr uint16) (uint8, error)
	WritePRG(addr uint16, v uint8) error
}

// Bus is the CPU's view of NES address space.
type Bus struct {
	ram  [0x0800]uint8
	ppu  PPU
	cart Cartridge
}

// New builds a CPU bus wired to ppu and cart.
func New(ppu PPU, cart Cartridge) *Bus {
	return &Bus{ppu: ppu, cart: cart}
}

// Read returns the byte at addr. Cartridge faults surface as a returned
// error; every other region always succeeds.
func (b *Bus) Read(addr uint16) (uint8, error) {
	switch {
	case addr < 0x2000:
		return b.ram[addr&0x07FF], nil
	case addr < 0x4000:
		return b.ppu.ReadRegister(0x2000 | (addr & 0x0007)), nil
	case addr < 0x4020:
		return 0, nil
	default:
		return b.cart.ReadPRG(addr)
	}
}

// Write stores v at addr. Cartridge faults surface as a returned error.
func (b *Bus) Write(addr uint16, v uint8) error {
	switch {
	case addr < 0x2000:
		b.ram[addr&0x07FF] = v
		return nil
	case addr < 0x4000:
		b.ppu.WriteRegister(0x2000|(addr&0x0007), v)
		return nil
	case addr < 0x4020:
		return nil
	default:
		return b.cart.WritePRG(addr, v)
	}
}

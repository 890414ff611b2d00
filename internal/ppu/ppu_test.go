package ppu

import "testing"

type fakeBus struct {
	mem [0x4000]uint8
}

func (b *fakeBus) Read(addr uint16) (uint8, error)  { return b.mem[addr&0x3FFF], nil }
func (b *fakeBus) Write(addr uint16, v uint8) error { b.mem[addr&0x3FFF] = v; return nil }

func TestLoopy_BitfieldAccessors(t *testing.T) {
	var l loopy
	l.setCoarseX(17)
	l.setCoarseY(23)
	l.setFineY(5)
	l = loopy(uint16(l) | loopyNTXMask | loopyNTYMask)

	if l.coarseX() != 17 || l.coarseY() != 23 || l.fineY() != 5 || l.ntX() != 1 || l.ntY() != 1 {
		t.Fatalf("loopy fields = %+v", l)
	}
}

func TestPPUADDR_DoubleWriteSetsV(t *testing.T) {
	p := New(&fakeBus{})
	p.Reset()
	p.WriteRegister(0x2006, 0x21)
	p.WriteRegister(0x2006, 0x08)
	if p.v != 0x2108 {
		t.Fatalf("v = %04X, want 2108", uint16(p.v))
	}
	if p.w {
		t.Fatal("write latch should reset to false after the second write")
	}
}

func TestPPUDATA_BufferedReadOutsidePalette(t *testing.T) {
	bus := &fakeBus{}
	bus.mem[0x2000] = 0xAB
	bus.mem[0x2001] = 0xCD
	p := New(bus)
	p.Reset()
	p.v = 0x2000

	first := p.ReadRegister(0x2007)
	if first != 0 {
		t.Fatalf("first buffered read = %02X, want 00 (stale buffer)", first)
	}
	second := p.ReadRegister(0x2007)
	if second != 0xAB {
		t.Fatalf("second read = %02X, want AB", second)
	}
}

func TestPPUDATA_PaletteReadIsNotBuffered(t *testing.T) {
	bus := &fakeBus{}
	bus.mem[0x3F05] = 0x16
	p := New(bus)
	p.Reset()
	p.v = 0x3F05

	v := p.ReadRegister(0x2007)
	if v != 0x16 {
		t.Fatalf("palette read = %02X, want 16 (unbuffered)", v)
	}
}

func TestPPUSTATUS_ReadClearsVBlankAndLatch(t *testing.T) {
	p := New(&fakeBus{})
	p.Reset()
	p.status |= statusVBlank
	p.w = true

	v := p.ReadRegister(0x2002)
	if v&statusVBlank == 0 {
		t.Fatal("status read should report the vblank bit that was set")
	}
	if p.status&statusVBlank != 0 {
		t.Fatal("reading PPUSTATUS should clear vblank")
	}
	if p.w {
		t.Fatal("reading PPUSTATUS should reset the write latch")
	}
}

func TestIncrementY_VerticalWrapAtRow29(t *testing.T) {
	p := New(&fakeBus{})
	p.Reset()
	p.v.setFineY(7)
	p.v.setCoarseY(29)
	p.incrementY()
	if p.v.coarseY() != 0 {
		t.Fatalf("coarseY = %d, want 0 after wrap", p.v.coarseY())
	}
	if p.v.ntY() != 1 {
		t.Fatal("incrementY at row 29 should flip nametable Y")
	}
}

func TestIncrementY_AttributeRowsDoNotFlipNametable(t *testing.T) {
	p := New(&fakeBus{})
	p.Reset()
	p.v.setFineY(7)
	p.v.setCoarseY(31)
	p.incrementY()
	if p.v.coarseY() != 0 || p.v.ntY() != 0 {
		t.Fatalf("coarseY=%d ntY=%d, want 0,0 (no flip from row 31)", p.v.coarseY(), p.v.ntY())
	}
}

func TestClock_FrameHasStandardScanlineCount(t *testing.T) {
	p := New(&fakeBus{})
	p.Reset()
	for i := 0; i < ScanlinesPerFrame*CyclesPerScanline; i++ {
		p.Clock()
	}
	if p.scanline != -1 {
		t.Fatalf("scanline after one frame = %d, want back at pre-render (-1)", p.scanline)
	}
}

func TestVBlank_SetAtScanline241Cycle1(t *testing.T) {
	p := New(&fakeBus{})
	p.Reset()
	p.ctrl |= ctrlNMIEnable
	for p.scanline != 241 || p.cycle != 1 {
		p.Clock()
	}
	p.Clock() // land on (241,1) and execute it
	if p.status&statusVBlank == 0 {
		t.Fatal("vblank flag not set at scanline 241 cycle 1")
	}
	if !p.NMIAsserted() {
		t.Fatal("expected NMI assertion with NMI enabled at vblank start")
	}
}

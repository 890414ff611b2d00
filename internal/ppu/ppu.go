// Package ppu implements the NES Picture Processing Unit (2C02): the
// scanline/cycle timeline, the Loopy v/t VRAM address registers, the
// background fetch pipeline and its shift registers, and the CPU-visible
// register file at $2000-$2007.
package ppu

const (
	ScanlinesPerFrame = 262
	CyclesPerScanline = 341
	VisibleScanlines  = 240
	VisibleColumns    = 256
)

// Bus is the PPU's view of its own 14-bit address space.
type Bus interface {
	Read(addr uint16) (uint8, error)
	Write(addr uint16, v uint8) error
}

// loopy packs the PPU's v/t VRAM address registers into their documented
// bitfields rather than a union: coarse_x:5, coarse_y:5, nt_select_x:1,
// nt_select_y:1, fine_y:3, laid out exactly as the real 15-bit register.
type loopy uint16

const (
	loopyCoarseXMask = 0x001F
	loopyCoarseYMask = 0x03E0
	loopyNTXMask     = 0x0400
	loopyNTYMask     = 0x0800
	loopyFineYMask   = 0x7000
)

func (l loopy) coarseX() uint16 { return uint16(l) & loopyCoarseXMask }
func (l loopy) coarseY() uint16 { return (uint16(l) & loopyCoarseYMask) >> 5 }
func (l loopy) ntX() uint16     { return (uint16(l) & loopyNTXMask) >> 10 }
func (l loopy) ntY() uint16     { return (uint16(l) & loopyNTYMask) >> 11 }
func (l loopy) fineY() uint16   { return (uint16(l) & loopyFineYMask) >> 12 }
func (l loopy) nametableAddr() uint16 {
	return 0x2000 | (uint16(l) & 0x0FFF)
}

func (l *loopy) setCoarseX(v uint16) { *l = loopy(uint16(*l)&^uint16(loopyCoarseXMask) | (v & 0x1F)) }
func (l *loopy) setCoarseY(v uint16) {
	*l = loopy(uint16(*l)&^uint16(loopyCoarseYMask) | (v&0x1F)<<5)
}
func (l *loopy) setFineY(v uint16) { *l = loopy(uint16(*l)&^uint16(loopyFineYMask) | (v&0x7)<<12) }

// Register bit layouts for PPUCTRL ($2000), PPUMASK ($2001) and PPUSTATUS
// ($2002), kept as plain bytes tested against these bit masks rather than
// as bitfield structs.
const (
	ctrlNametableMask = 0x03
	ctrlIncrement32   = 0x04
	ctrlSpritePattern = 0x08
	ctrlBGPattern     = 0x10
	ctrlSprite8x16    = 0x20
	ctrlNMIEnable     = 0x80

	maskShowBGLeft    = 0x02
	maskShowSpriteLft = 0x04
	maskShowBG        = 0x08
	maskShowSprites   = 0x10

	statusSpriteOverflow = 0x20
	statusSprite0Hit     = 0x40
	statusVBlank         = 0x80
)

// PPU is the 2C02 core.
type PPU struct {
	bus Bus

	ctrl   uint8
	mask   uint8
	status uint8

	v, t loopy
	x    uint8 // fine X scroll, 3 bits
	w    bool  // write-toggle latch shared by $2005/$2006

	oam     [256]uint8
	oamAddr uint8
	readBuf uint8

	scanline int
	cycle    int
	frameOdd bool

	ptShiftLo, ptShiftHi uint16
	atShiftLo, atShiftHi uint16
	nextNT, nextAT       uint8
	nextPTLo, nextPTHi   uint8

	nmiOut    bool
	frameDone bool

	frame [VisibleColumns * VisibleScanlines]uint8 // NES palette indices 0-63
}

// New constructs a PPU wired to bus.
func New(bus Bus) *PPU {
	return &PPU{bus: bus}
}

// Reset returns the PPU to its post-power-up state: registers and scroll
// latches clear, and the timeline restarts at the pre-render scanline.
func (p *PPU) Reset() {
	p.ctrl, p.mask, p.status = 0, 0, 0
	p.v, p.t, p.x, p.w = 0, 0, 0, false
	p.scanline, p.cycle, p.frameOdd = -1, 0, false
	p.ptShiftLo, p.ptShiftHi, p.atShiftLo, p.atShiftHi = 0, 0, 0, 0
}

// NMIAsserted reports whether the PPU wants to pull the CPU's NMI line,
// clearing the internal flag so each assertion is reported exactly once.
func (p *PPU) NMIAsserted() bool {
	if p.nmiOut {
		p.nmiOut = false
		return true
	}
	return false
}

// Frame returns the most recently completed frame buffer as NES palette
// indices (0-63); the host maps these to RGB for display.
func (p *PPU) Frame() *[VisibleColumns * VisibleScanlines]uint8 { return &p.frame }

// FrameReady reports whether a frame finished since the last call,
// clearing the flag so each frame is reported exactly once.
func (p *PPU) FrameReady() bool {
	if p.frameDone {
		p.frameDone = false
		return true
	}
	return false
}

func (p *PPU) renderingEnabled() bool { return p.mask&(maskShowBG|maskShowSprites) != 0 }

func (p *PPU) read(addr uint16) uint8 {
	v, _ := p.bus.Read(addr)
	return v
}

func (p *PPU) write(addr uint16, v uint8) {
	p.bus.Write(addr, v)
}

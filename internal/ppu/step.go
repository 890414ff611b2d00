package ppu

// Clock advances the PPU by one dot (pixel clock). The host is expected to
// call this three times per CPU clock (the NTSC 3:1 PPU:CPU ratio).
func (p *PPU) Clock() {
	switch {
	case p.scanline == -1:
		p.preRenderScanline()
	case p.scanline >= 0 && p.scanline < VisibleScanlines:
		p.visibleScanline()
	case p.scanline == 241 && p.cycle == 1:
		p.status |= statusVBlank
		if p.ctrl&ctrlNMIEnable != 0 {
			p.nmiOut = true
		}
	}

	p.cycle++
	if p.cycle >= CyclesPerScanline {
		p.cycle = 0
		p.scanline++
		if p.scanline >= ScanlinesPerFrame-1 {
			p.scanline = -1
			p.frameOdd = !p.frameOdd
			p.frameDone = true
		}
	}
}

func (p *PPU) preRenderScanline() {
	if p.cycle == 1 {
		p.status &^= statusVBlank | statusSprite0Hit | statusSpriteOverflow
	}
	if p.renderingEnabled() {
		p.backgroundFetchCycle()
		if p.cycle >= 280 && p.cycle <= 304 {
			p.copyVertical()
		}
	}
	// Odd-frame cycle skip: the last dot of the pre-render line (cycle 340)
	// is omitted on odd frames when rendering is enabled.
	if p.cycle == 339 && p.frameOdd && p.renderingEnabled() {
		p.cycle++
	}
}

func (p *PPU) visibleScanline() {
	if p.renderingEnabled() {
		p.backgroundFetchCycle()
	}
	if p.cycle >= 1 && p.cycle <= VisibleColumns {
		p.renderPixel()
	}
}

// backgroundFetchCycle runs the fetch-stage schedule keyed on
// (cycle-1) mod 8: the nametable byte, attribute byte, and pattern table
// low/high planes are fetched across stages 0,2,4,6, with the shift
// registers reloaded at stage 7 and shifted on every visible dot.
func (p *PPU) backgroundFetchCycle() {
	switch {
	case p.cycle >= 1 && p.cycle <= 256, p.cycle >= 321 && p.cycle <= 336:
		p.shiftRegisters()
		switch (p.cycle - 1) % 8 {
		case 0:
			p.nextNT = p.read(p.v.nametableAddr())
		case 2:
			p.nextAT = p.fetchAttribute()
		case 4:
			p.nextPTLo = p.fetchPatternByte(false)
		case 6:
			p.nextPTHi = p.fetchPatternByte(true)
		case 7:
			p.reloadShiftRegisters()
			if p.cycle != 256 {
				p.incrementCoarseX()
			} else {
				p.incrementY()
			}
		}
	case p.cycle == 257:
		p.copyHorizontal()
	}
}

func (p *PPU) fetchAttribute() uint8 {
	addr := 0x23C0 | (uint16(p.v) & 0x0C00) |
		((p.v.coarseY() >> 2) << 3) | (p.v.coarseX() >> 2)
	at := p.read(addr)
	shift := ((p.v.coarseY() >> 1) & 1 << 1) | (p.v.coarseX() >> 1 & 1)
	return (at >> (shift * 2)) & 0x03
}

func (p *PPU) fetchPatternByte(hiPlane bool) uint8 {
	base := uint16(0)
	if p.ctrl&ctrlBGPattern != 0 {
		base = 0x1000
	}
	addr := base + uint16(p.nextNT)*16 + p.v.fineY()
	if hiPlane {
		addr += 8
	}
	return p.read(addr)
}

func (p *PPU) reloadShiftRegisters() {
	p.ptShiftLo = p.ptShiftLo&0xFF00 | uint16(p.nextPTLo)
	p.ptShiftHi = p.ptShiftHi&0xFF00 | uint16(p.nextPTHi)

	var lo, hi uint16
	if p.nextAT&0x01 != 0 {
		lo = 0xFF
	}
	if p.nextAT&0x02 != 0 {
		hi = 0xFF
	}
	p.atShiftLo = p.atShiftLo&0xFF00 | lo
	p.atShiftHi = p.atShiftHi&0xFF00 | hi
}

func (p *PPU) shiftRegisters() {
	p.ptShiftLo <<= 1
	p.ptShiftHi <<= 1
	p.atShiftLo <<= 1
	p.atShiftHi <<= 1
}

// incrementCoarseX implements the standard nesdev coarse-X increment with
// nametable-X wraparound.
func (p *PPU) incrementCoarseX() {
	if p.v.coarseX() == 31 {
		p.v = loopy(uint16(p.v) &^ loopyCoarseXMask ^ loopyNTXMask)
	} else {
		p.v.setCoarseX(p.v.coarseX() + 1)
	}
}

// incrementY implements the standard nesdev fine-Y/coarse-Y increment with
// the vertical wraparound at row 29 (the last visible row), flipping
// nametable-Y instead of spilling into the attribute rows at 30-31.
func (p *PPU) incrementY() {
	if p.v.fineY() < 7 {
		p.v.setFineY(p.v.fineY() + 1)
		return
	}
	p.v.setFineY(0)
	switch p.v.coarseY() {
	case 29:
		p.v.setCoarseY(0)
		p.v = loopy(uint16(p.v) ^ loopyNTYMask)
	case 31:
		p.v.setCoarseY(0)
	default:
		p.v.setCoarseY(p.v.coarseY() + 1)
	}
}

func (p *PPU) copyHorizontal() {
	p.v = loopy(uint16(p.v)&^uint16(loopyCoarseXMask|loopyNTXMask) | uint16(p.t)&uint16(loopyCoarseXMask|loopyNTXMask))
}

func (p *PPU) copyVertical() {
	mask := uint16(loopyCoarseYMask | loopyNTYMask | loopyFineYMask)
	p.v = loopy(uint16(p.v)&^mask | uint16(p.t)&mask)
}

// renderPixel composites the background shift registers into a palette
// index for the current dot and stores it in the frame buffer. Sprite
// rendering is out of scope; the background plane is the full picture.
func (p *PPU) renderPixel() {
	x := p.cycle - 1
	y := p.scanline
	if x >= VisibleColumns || y >= VisibleScanlines {
		return
	}

	bit := uint16(0x8000) >> p.x
	var idx uint8
	if p.mask&maskShowBG != 0 && (x >= 8 || p.mask&maskShowBGLeft != 0) {
		lo := uint8(0)
		hi := uint8(0)
		if p.ptShiftLo&bit != 0 {
			lo = 1
		}
		if p.ptShiftHi&bit != 0 {
			hi = 1
		}
		pixel := hi<<1 | lo

		atLo := uint8(0)
		atHi := uint8(0)
		if p.atShiftLo&bit != 0 {
			atLo = 1
		}
		if p.atShiftHi&bit != 0 {
			atHi = 1
		}
		palette := atHi<<1 | atLo

		if pixel != 0 {
			idx = p.read(0x3F00+uint16(palette)*4+uint16(pixel)) & 0x3F
		} else {
			idx = p.read(0x3F00) & 0x3F
		}
	} else {
		idx = p.read(0x3F00) & 0x3F
	}

	p.frame[y*VisibleColumns+x] = idx
}

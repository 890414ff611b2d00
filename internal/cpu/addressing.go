package cpu

// operand resolves the effective address for mode, advancing PC past the
// instruction's operand bytes, and reports whether indexing crossed a page
// boundary. Implied and Accumulator modes return a zero address; callers
// dispatch those via mode, not via the returned value.
func (c *CPU) operand(mode Mode) (addr uint16, pageCrossed bool) {
	switch mode {
	case Implied, Accumulator:
		return 0, false

	case Immediate:
		addr = c.PC
		c.PC++
		return addr, false

	case ZeroPage:
		addr = uint16(c.read(c.PC))
		c.PC++
		return addr, false

	case ZeroPageX:
		addr = uint16(c.read(c.PC) + c.X)
		c.PC++
		return addr, false

	case ZeroPageY:
		addr = uint16(c.read(c.PC) + c.Y)
		c.PC++
		return addr, false

	case Relative:
		offset := c.read(c.PC)
		c.PC++
		base := c.PC
		addr = base + uint16(int8(offset))
		return addr, base&0xFF00 != addr&0xFF00

	case Absolute:
		addr = c.read16(c.PC)
		c.PC += 2
		return addr, false

	case AbsoluteX:
		base := c.read16(c.PC)
		c.PC += 2
		addr = base + uint16(c.X)
		return addr, base&0xFF00 != addr&0xFF00

	case AbsoluteY:
		base := c.read16(c.PC)
		c.PC += 2
		addr = base + uint16(c.Y)
		return addr, base&0xFF00 != addr&0xFF00

	case Indirect:
		ptr := c.read16(c.PC)
		c.PC += 2
		addr = c.read16Bugged(ptr)
		return addr, false

	case IndexedIndirect:
		zp := c.read(c.PC) + c.X
		c.PC++
		addr = c.read16ZeroPage(zp)
		return addr, false

	case IndirectIndexed:
		zp := c.read(c.PC)
		c.PC++
		base := c.read16ZeroPage(zp)
		addr = base + uint16(c.Y)
		return addr, base&0xFF00 != addr&0xFF00

	default:
		return 0, false
	}
}

func (c *CPU) read16(addr uint16) uint16 {
	lo := c.read(addr)
	hi := c.read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// read16ZeroPage reads a little-endian pointer out of the zero page,
// wrapping the high byte back to $00 rather than spilling into page one.
func (c *CPU) read16ZeroPage(zp uint8) uint16 {
	lo := c.read(uint16(zp))
	hi := c.read(uint16(zp + 1))
	return uint16(hi)<<8 | uint16(lo)
}

// read16Bugged reproduces the JMP ($xxFF) indirect page-wrap bug: when the
// pointer's low byte is $FF, the high byte is fetched from the start of the
// same page instead of the next page.
func (c *CPU) read16Bugged(ptr uint16) uint16 {
	lo := c.read(ptr)
	var hiAddr uint16
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}
	hi := c.read(hiAddr)
	return uint16(hi)<<8 | uint16(lo)
}

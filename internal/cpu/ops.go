package cpu

// execute dispatches opcode to its operation, returning any extra cycles
// earned by the operation itself (taken/page-crossed branches). The
// page-cross penalty for load/store-style addressing is folded in by the
// caller via crossesOnPage.
func (c *CPU) execute(opcode uint8, mode Mode, addr uint16) uint8 {
	switch opcode {
	// Loads
	case 0xA9, 0xA5, 0xB5, 0xAD, 0xBD, 0xB9, 0xA1, 0xB1:
		c.A = c.loadOperand(mode, addr)
		c.setZN(c.A)
	case 0xA2, 0xA6, 0xB6, 0xAE, 0xBE:
		c.X = c.loadOperand(mode, addr)
		c.setZN(c.X)
	case 0xA0, 0xA4, 0xB4, 0xAC, 0xBC:
		c.Y = c.loadOperand(mode, addr)
		c.setZN(c.Y)

	// Stores
	case 0x85, 0x95, 0x8D, 0x9D, 0x99, 0x81, 0x91:
		c.write(addr, c.A)
	case 0x86, 0x96, 0x8E:
		c.write(addr, c.X)
	case 0x84, 0x94, 0x8C:
		c.write(addr, c.Y)

	// Transfers
	case 0xAA:
		c.X = c.A
		c.setZN(c.X)
	case 0xA8:
		c.Y = c.A
		c.setZN(c.Y)
	case 0x8A:
		c.A = c.X
		c.setZN(c.A)
	case 0x98:
		c.A = c.Y
		c.setZN(c.A)
	case 0xBA:
		c.X = c.SP
		c.setZN(c.X)
	case 0x9A:
		c.SP = c.X

	// Stack
	case 0x48:
		c.push(c.A)
	case 0x68:
		c.A = c.pop()
		c.setZN(c.A)
	case 0x08:
		c.push(c.P | flagB)
	case 0x28:
		c.P = c.pop() &^ flagB

	// Arithmetic
	case 0x69, 0x65, 0x75, 0x6D, 0x7D, 0x79, 0x61, 0x71:
		c.adc(c.loadOperand(mode, addr))
	case 0xE9, 0xE5, 0xF5, 0xED, 0xFD, 0xF9, 0xE1, 0xF1:
		c.adc(c.loadOperand(mode, addr) ^ 0xFF)

	// Comparisons
	case 0xC9, 0xC5, 0xD5, 0xCD, 0xDD, 0xD9, 0xC1, 0xD1:
		c.compare(c.A, c.loadOperand(mode, addr))
	case 0xE0, 0xE4, 0xEC:
		c.compare(c.X, c.loadOperand(mode, addr))
	case 0xC0, 0xC4, 0xCC:
		c.compare(c.Y, c.loadOperand(mode, addr))

	// Increments/decrements
	case 0xE6, 0xF6, 0xEE, 0xFE:
		v := c.read(addr) + 1
		c.write(addr, v)
		c.setZN(v)
	case 0xC6, 0xD6, 0xCE, 0xDE:
		v := c.read(addr) - 1
		c.write(addr, v)
		c.setZN(v)
	case 0xE8:
		c.X++
		c.setZN(c.X)
	case 0xCA:
		c.X--
		c.setZN(c.X)
	case 0xC8:
		c.Y++
		c.setZN(c.Y)
	case 0x88:
		c.Y--
		c.setZN(c.Y)

	// Logical
	case 0x29, 0x25, 0x35, 0x2D, 0x3D, 0x39, 0x21, 0x31:
		c.A &= c.loadOperand(mode, addr)
		c.setZN(c.A)
	case 0x09, 0x05, 0x15, 0x0D, 0x1D, 0x19, 0x01, 0x11:
		c.A |= c.loadOperand(mode, addr)
		c.setZN(c.A)
	case 0x49, 0x45, 0x55, 0x4D, 0x5D, 0x59, 0x41, 0x51:
		c.A ^= c.loadOperand(mode, addr)
		c.setZN(c.A)
	case 0x24, 0x2C:
		v := c.loadOperand(mode, addr)
		c.setFlag(flagZ, c.A&v == 0)
		c.setFlag(flagV, v&0x40 != 0)
		c.setFlag(flagN, v&0x80 != 0)

	// Shifts/rotates
	case 0x0A:
		c.A = c.asl(c.A)
	case 0x06, 0x16, 0x0E, 0x1E:
		c.write(addr, c.asl(c.read(addr)))
	case 0x4A:
		c.A = c.lsr(c.A)
	case 0x46, 0x56, 0x4E, 0x5E:
		c.write(addr, c.lsr(c.read(addr)))
	case 0x2A:
		c.A = c.rol(c.A)
	case 0x26, 0x36, 0x2E, 0x3E:
		c.write(addr, c.rol(c.read(addr)))
	case 0x6A:
		c.A = c.ror(c.A)
	case 0x66, 0x76, 0x6E, 0x7E:
		c.write(addr, c.ror(c.read(addr)))

	// Jumps/calls
	case 0x4C, 0x6C:
		c.PC = addr
	case 0x20:
		c.push16(c.PC - 1)
		c.PC = addr
	case 0x60:
		c.PC = c.pop16() + 1
	case 0x40:
		c.P = c.pop() &^ flagB
		c.PC = c.pop16()
	case 0x00:
		c.PC++
		c.interrupt(vecIRQ, true)

	// Branches
	case 0x90:
		return c.branch(!c.flag(flagC), addr)
	case 0xB0:
		return c.branch(c.flag(flagC), addr)
	case 0xF0:
		return c.branch(c.flag(flagZ), addr)
	case 0xD0:
		return c.branch(!c.flag(flagZ), addr)
	case 0x10:
		return c.branch(!c.flag(flagN), addr)
	case 0x30:
		return c.branch(c.flag(flagN), addr)
	case 0x50:
		return c.branch(!c.flag(flagV), addr)
	case 0x70:
		return c.branch(c.flag(flagV), addr)

	// Flags
	case 0x18:
		c.setFlag(flagC, false)
	case 0x38:
		c.setFlag(flagC, true)
	case 0x58:
		c.setFlag(flagI, false)
	case 0x78:
		c.setFlag(flagI, true)
	case 0xB8:
		c.setFlag(flagV, false)
	case 0xD8:
		c.setFlag(flagD, false)
	case 0xF8:
		c.setFlag(flagD, true)

	case 0xEA:
		// NOP

	default:
		c.unsupportedOpcode(opcode)
	}
	return 0
}

// loadOperand fetches an instruction's value: Accumulator mode reads A
// directly, every other mode reads through addr (which for Immediate is
// the operand byte's own address).
func (c *CPU) loadOperand(mode Mode, addr uint16) uint8 {
	if mode == Accumulator {
		return c.A
	}
	return c.read(addr)
}

func (c *CPU) adc(v uint8) {
	sum := uint16(c.A) + uint16(v)
	if c.flag(flagC) {
		sum++
	}
	result := uint8(sum)
	c.setFlag(flagC, sum > 0xFF)
	c.setFlag(flagV, (c.A^v)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) compare(reg, v uint8) {
	c.setFlag(flagC, reg >= v)
	c.setZN(reg - v)
}

func (c *CPU) asl(v uint8) uint8 {
	c.setFlag(flagC, v&0x80 != 0)
	v <<= 1
	c.setZN(v)
	return v
}

func (c *CPU) lsr(v uint8) uint8 {
	c.setFlag(flagC, v&0x01 != 0)
	v >>= 1
	c.setZN(v)
	return v
}

func (c *CPU) rol(v uint8) uint8 {
	carryIn := uint8(0)
	if c.flag(flagC) {
		carryIn = 1
	}
	c.setFlag(flagC, v&0x80 != 0)
	v = v<<1 | carryIn
	c.setZN(v)
	return v
}

func (c *CPU) ror(v uint8) uint8 {
	carryIn := uint8(0)
	if c.flag(flagC) {
		carryIn = 0x80
	}
	c.setFlag(flagC, v&0x01 != 0)
	v = v>>1 | carryIn
	c.setZN(v)
	return v
}

// branch jumps to addr when taken is true, returning the extra cycles
// earned: +1 for taking the branch, +1 more if it lands on a new page.
func (c *CPU) branch(taken bool, addr uint16) uint8 {
	if !taken {
		return 0
	}
	oldPage := c.PC & 0xFF00
	c.PC = addr
	extra := uint8(1)
	if c.PC&0xFF00 != oldPage {
		extra++
	}
	return extra
}

package cpu

// initTable builds the 256-entry opcode dispatch table. Entries not
// listed keep the default every slot is first filled with (an implied-mode
// one-byte, two-cycle NOP) and are reported by execute's default case as unsupported — this
// emulator targets the documented 6502 instruction set only, not the NMOS
// illegal-opcode surface.
func (c *CPU) initTable() {
	for i := range c.table {
		c.table[i] = instruction{name: "NOP", mode: Implied, bytes: 1, cycles: 2}
	}

	type row struct {
		op     uint8
		name   string
		mode   Mode
		bytes  uint8
		cycles uint8
	}

	rows := []row{
		// LDA
		{0xA9, "LDA", Immediate, 2, 2}, {0xA5, "LDA", ZeroPage, 2, 3},
		{0xB5, "LDA", ZeroPageX, 2, 4}, {0xAD, "LDA", Absolute, 3, 4},
		{0xBD, "LDA", AbsoluteX, 3, 4}, {0xB9, "LDA", AbsoluteY, 3, 4},
		{0xA1, "LDA", IndexedIndirect, 2, 6}, {0xB1, "LDA", IndirectIndexed, 2, 5},
		// LDX
		{0xA2, "LDX", Immediate, 2, 2}, {0xA6, "LDX", ZeroPage, 2, 3},
		{0xB6, "LDX", ZeroPageY, 2, 4}, {0xAE, "LDX", Absolute, 3, 4},
		{0xBE, "LDX", AbsoluteY, 3, 4},
		// LDY
		{0xA0, "LDY", Immediate, 2, 2}, {0xA4, "LDY", ZeroPage, 2, 3},
		{0xB4, "LDY", ZeroPageX, 2, 4}, {0xAC, "LDY", Absolute, 3, 4},
		{0xBC, "LDY", AbsoluteX, 3, 4},
		// STA
		{0x85, "STA", ZeroPage, 2, 3}, {0x95, "STA", ZeroPageX, 2, 4},
		{0x8D, "STA", Absolute, 3, 4}, {0x9D, "STA", AbsoluteX, 3, 5},
		{0x99, "STA", AbsoluteY, 3, 5}, {0x81, "STA", IndexedIndirect, 2, 6},
		{0x91, "STA", IndirectIndexed, 2, 6},
		// STX/STY
		{0x86, "STX", ZeroPage, 2, 3}, {0x96, "STX", ZeroPageY, 2, 4}, {0x8E, "STX", Absolute, 3, 4},
		{0x84, "STY", ZeroPage, 2, 3}, {0x94, "STY", ZeroPageX, 2, 4}, {0x8C, "STY", Absolute, 3, 4},
		// Transfers
		{0xAA, "TAX", Implied, 1, 2}, {0xA8, "TAY", Implied, 1, 2},
		{0x8A, "TXA", Implied, 1, 2}, {0x98, "TYA", Implied, 1, 2},
		{0xBA, "TSX", Implied, 1, 2}, {0x9A, "TXS", Implied, 1, 2},
		// Stack
		{0x48, "PHA", Implied, 1, 3}, {0x68, "PLA", Implied, 1, 4},
		{0x08, "PHP", Implied, 1, 3}, {0x28, "PLP", Implied, 1, 4},
		// ADC
		{0x69, "ADC", Immediate, 2, 2}, {0x65, "ADC", ZeroPage, 2, 3},
		{0x75, "ADC", ZeroPageX, 2, 4}, {0x6D, "ADC", Absolute, 3, 4},
		{0x7D, "ADC", AbsoluteX, 3, 4}, {0x79, "ADC", AbsoluteY, 3, 4},
		{0x61, "ADC", IndexedIndirect, 2, 6}, {0x71, "ADC", IndirectIndexed, 2, 5},
		// SBC
		{0xE9, "SBC", Immediate, 2, 2}, {0xE5, "SBC", ZeroPage, 2, 3},
		{0xF5, "SBC", ZeroPageX, 2, 4}, {0xED, "SBC", Absolute, 3, 4},
		{0xFD, "SBC", AbsoluteX, 3, 4}, {0xF9, "SBC", AbsoluteY, 3, 4},
		{0xE1, "SBC", IndexedIndirect, 2, 6}, {0xF1, "SBC", IndirectIndexed, 2, 5},
		// Compare
		{0xC9, "CMP", Immediate, 2, 2}, {0xC5, "CMP", ZeroPage, 2, 3},
		{0xD5, "CMP", ZeroPageX, 2, 4}, {0xCD, "CMP", Absolute, 3, 4},
		{0xDD, "CMP", AbsoluteX, 3, 4}, {0xD9, "CMP", AbsoluteY, 3, 4},
		{0xC1, "CMP", IndexedIndirect, 2, 6}, {0xD1, "CMP", IndirectIndexed, 2, 5},
		{0xE0, "CPX", Immediate, 2, 2}, {0xE4, "CPX", ZeroPage, 2, 3}, {0xEC, "CPX", Absolute, 3, 4},
		{0xC0, "CPY", Immediate, 2, 2}, {0xC4, "CPY", ZeroPage, 2, 3}, {0xCC, "CPY", Absolute, 3, 4},
		// Inc/dec
		{0xE6, "INC", ZeroPage, 2, 5}, {0xF6, "INC", ZeroPageX, 2, 6},
		{0xEE, "INC", Absolute, 3, 6}, {0xFE, "INC", AbsoluteX, 3, 7},
		{0xC6, "DEC", ZeroPage, 2, 5}, {0xD6, "DEC", ZeroPageX, 2, 6},
		{0xCE, "DEC", Absolute, 3, 6}, {0xDE, "DEC", AbsoluteX, 3, 7},
		{0xE8, "INX", Implied, 1, 2}, {0xCA, "DEX", Implied, 1, 2},
		{0xC8, "INY", Implied, 1, 2}, {0x88, "DEY", Implied, 1, 2},
		// Logical
		{0x29, "AND", Immediate, 2, 2}, {0x25, "AND", ZeroPage, 2, 3},
		{0x35, "AND", ZeroPageX, 2, 4}, {0x2D, "AND", Absolute, 3, 4},
		{0x3D, "AND", AbsoluteX, 3, 4}, {0x39, "AND", AbsoluteY, 3, 4},
		{0x21, "AND", IndexedIndirect, 2, 6}, {0x31, "AND", IndirectIndexed, 2, 5},
		{0x09, "ORA", Immediate, 2, 2}, {0x05, "ORA", ZeroPage, 2, 3},
		{0x15, "ORA", ZeroPageX, 2, 4}, {0x0D, "ORA", Absolute, 3, 4},
		{0x1D, "ORA", AbsoluteX, 3, 4}, {0x19, "ORA", AbsoluteY, 3, 4},
		{0x01, "ORA", IndexedIndirect, 2, 6}, {0x11, "ORA", IndirectIndexed, 2, 5},
		{0x49, "EOR", Immediate, 2, 2}, {0x45, "EOR", ZeroPage, 2, 3},
		{0x55, "EOR", ZeroPageX, 2, 4}, {0x4D, "EOR", Absolute, 3, 4},
		{0x5D, "EOR", AbsoluteX, 3, 4}, {0x59, "EOR", AbsoluteY, 3, 4},
		{0x41, "EOR", IndexedIndirect, 2, 6}, {0x51, "EOR", IndirectIndexed, 2, 5},
		{0x24, "BIT", ZeroPage, 2, 3}, {0x2C, "BIT", Absolute, 3, 4},
		// Shifts/rotates
		{0x0A, "ASL", Accumulator, 1, 2}, {0x06, "ASL", ZeroPage, 2, 5},
		{0x16, "ASL", ZeroPageX, 2, 6}, {0x0E, "ASL", Absolute, 3, 6}, {0x1E, "ASL", AbsoluteX, 3, 7},
		{0x4A, "LSR", Accumulator, 1, 2}, {0x46, "LSR", ZeroPage, 2, 5},
		{0x56, "LSR", ZeroPageX, 2, 6}, {0x4E, "LSR", Absolute, 3, 6}, {0x5E, "LSR", AbsoluteX, 3, 7},
		{0x2A, "ROL", Accumulator, 1, 2}, {0x26, "ROL", ZeroPage, 2, 5},
		{0x36, "ROL", ZeroPageX, 2, 6}, {0x2E, "ROL", Absolute, 3, 6}, {0x3E, "ROL", AbsoluteX, 3, 7},
		{0x6A, "ROR", Accumulator, 1, 2}, {0x66, "ROR", ZeroPage, 2, 5},
		{0x76, "ROR", ZeroPageX, 2, 6}, {0x6E, "ROR", Absolute, 3, 6}, {0x7E, "ROR", AbsoluteX, 3, 7},
		// Jumps/calls
		{0x4C, "JMP", Absolute, 3, 3}, {0x6C, "JMP", Indirect, 3, 5},
		{0x20, "JSR", Absolute, 3, 6}, {0x60, "RTS", Implied, 1, 6},
		{0x40, "RTI", Implied, 1, 6}, {0x00, "BRK", Implied, 1, 7},
		// Branches
		{0x90, "BCC", Relative, 2, 2}, {0xB0, "BCS", Relative, 2, 2},
		{0xF0, "BEQ", Relative, 2, 2}, {0xD0, "BNE", Relative, 2, 2},
		{0x10, "BPL", Relative, 2, 2}, {0x30, "BMI", Relative, 2, 2},
		{0x50, "BVC", Relative, 2, 2}, {0x70, "BVS", Relative, 2, 2},
		// Flags
		{0x18, "CLC", Implied, 1, 2}, {0x38, "SEC", Implied, 1, 2},
		{0x58, "CLI", Implied, 1, 2}, {0x78, "SEI", Implied, 1, 2},
		{0xB8, "CLV", Implied, 1, 2}, {0xD8, "CLD", Implied, 1, 2}, {0xF8, "SED", Implied, 1, 2},
		{0xEA, "NOP", Implied, 1, 2},
	}

	for _, r := range rows {
		c.table[r.op] = instruction{name: r.name, mode: r.mode, bytes: r.bytes, cycles: r.cycles}
	}
}

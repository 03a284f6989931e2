package nes

// buildTable populates the 256-entry dispatch table. Every slot starts out
// routed to an "invalid" handler (logged, zero-cost NOP); the 151 officially
// documented opcodes (56 instructions) are then set individually, matching the standard MOS
// 6502 opcode matrix. Undocumented opcodes (SLO, LAX, DCP, ...) are
// deliberately left unset; their slots stay invalid.
func (cpu *CPU) buildTable() {
	for i := 0; i < 256; i++ {
		op := uint8(i)
		cpu.table[i] = opcodeEntry{"???", cpu.makeInvalid(op), cpu.amIMP, Implied, 0, false}
	}

	set := func(op uint8, mnemonic string, execute func() uint8, resolve func() uint8, mode AddressingMode, cycles uint8, fixedCost bool) {
		cpu.table[op] = opcodeEntry{mnemonic, execute, resolve, mode, cycles, fixedCost}
	}

	// ORA / ASL / PHP / BPL / CLC
	set(0x01, "ORA", cpu.opORA, cpu.amIZX, IndexedIndirect, 6, false)
	set(0x05, "ORA", cpu.opORA, cpu.amZP0, ZeroPage, 3, false)
	set(0x06, "ASL", cpu.opASL, cpu.amZP0, ZeroPage, 5, false)
	set(0x08, "PHP", cpu.opPHP, cpu.amIMP, Implied, 3, false)
	set(0x09, "ORA", cpu.opORA, cpu.amIMM, Immediate, 2, false)
	set(0x0A, "ASL", cpu.opASL, cpu.amIMP, Accumulator, 2, false)
	set(0x0D, "ORA", cpu.opORA, cpu.amABS, Absolute, 4, false)
	set(0x0E, "ASL", cpu.opASL, cpu.amABS, Absolute, 6, false)
	set(0x10, "BPL", cpu.opBPL, cpu.amREL, Relative, 2, false)
	set(0x11, "ORA", cpu.opORA, cpu.amIZY, IndirectIndexed, 5, false)
	set(0x15, "ORA", cpu.opORA, cpu.amZPX, ZeroPageX, 4, false)
	set(0x16, "ASL", cpu.opASL, cpu.amZPX, ZeroPageX, 6, false)
	set(0x18, "CLC", cpu.opCLC, cpu.amIMP, Implied, 2, false)
	set(0x19, "ORA", cpu.opORA, cpu.amABY, AbsoluteY, 4, false)
	set(0x1D, "ORA", cpu.opORA, cpu.amABX, AbsoluteX, 4, false)
	set(0x1E, "ASL", cpu.opASL, cpu.amABX, AbsoluteX, 7, true)

	// JSR / AND / BIT / ROL / PLP / BMI / SEC
	set(0x20, "JSR", cpu.opJSR, cpu.amABS, Absolute, 6, false)
	set(0x21, "AND", cpu.opAND, cpu.amIZX, IndexedIndirect, 6, false)
	set(0x24, "BIT", cpu.opBIT, cpu.amZP0, ZeroPage, 3, false)
	set(0x25, "AND", cpu.opAND, cpu.amZP0, ZeroPage, 3, false)
	set(0x26, "ROL", cpu.opROL, cpu.amZP0, ZeroPage, 5, false)
	set(0x28, "PLP", cpu.opPLP, cpu.amIMP, Implied, 4, false)
	set(0x29, "AND", cpu.opAND, cpu.amIMM, Immediate, 2, false)
	set(0x2A, "ROL", cpu.opROL, cpu.amIMP, Accumulator, 2, false)
	set(0x2C, "BIT", cpu.opBIT, cpu.amABS, Absolute, 4, false)
	set(0x2D, "AND", cpu.opAND, cpu.amABS, Absolute, 4, false)
	set(0x2E, "ROL", cpu.opROL, cpu.amABS, Absolute, 6, false)
	set(0x30, "BMI", cpu.opBMI, cpu.amREL, Relative, 2, false)
	set(0x31, "AND", cpu.opAND, cpu.amIZY, IndirectIndexed, 5, false)
	set(0x35, "AND", cpu.opAND, cpu.amZPX, ZeroPageX, 4, false)
	set(0x36, "ROL", cpu.opROL, cpu.amZPX, ZeroPageX, 6, false)
	set(0x38, "SEC", cpu.opSEC, cpu.amIMP, Implied, 2, false)
	set(0x39, "AND", cpu.opAND, cpu.amABY, AbsoluteY, 4, false)
	set(0x3D, "AND", cpu.opAND, cpu.amABX, AbsoluteX, 4, false)
	set(0x3E, "ROL", cpu.opROL, cpu.amABX, AbsoluteX, 7, true)

	// RTI / EOR / LSR / PHA / JMP / BVC / CLI
	set(0x40, "RTI", cpu.opRTI, cpu.amIMP, Implied, 6, false)
	set(0x41, "EOR", cpu.opEOR, cpu.amIZX, IndexedIndirect, 6, false)
	set(0x45, "EOR", cpu.opEOR, cpu.amZP0, ZeroPage, 3, false)
	set(0x46, "LSR", cpu.opLSR, cpu.amZP0, ZeroPage, 5, false)
	set(0x48, "PHA", cpu.opPHA, cpu.amIMP, Implied, 3, false)
	set(0x49, "EOR", cpu.opEOR, cpu.amIMM, Immediate, 2, false)
	set(0x4A, "LSR", cpu.opLSR, cpu.amIMP, Accumulator, 2, false)
	set(0x4C, "JMP", cpu.opJMP, cpu.amABS, Absolute, 3, false)
	set(0x4D, "EOR", cpu.opEOR, cpu.amABS, Absolute, 4, false)
	set(0x4E, "LSR", cpu.opLSR, cpu.amABS, Absolute, 6, false)
	set(0x50, "BVC", cpu.opBVC, cpu.amREL, Relative, 2, false)
	set(0x51, "EOR", cpu.opEOR, cpu.amIZY, IndirectIndexed, 5, false)
	set(0x55, "EOR", cpu.opEOR, cpu.amZPX, ZeroPageX, 4, false)
	set(0x56, "LSR", cpu.opLSR, cpu.amZPX, ZeroPageX, 6, false)
	set(0x58, "CLI", cpu.opCLI, cpu.amIMP, Implied, 2, false)
	set(0x59, "EOR", cpu.opEOR, cpu.amABY, AbsoluteY, 4, false)
	set(0x5D, "EOR", cpu.opEOR, cpu.amABX, AbsoluteX, 4, false)
	set(0x5E, "LSR", cpu.opLSR, cpu.amABX, AbsoluteX, 7, true)

	// RTS / ADC / ROR / PLA / JMP indirect / BVS / SEI
	set(0x60, "RTS", cpu.opRTS, cpu.amIMP, Implied, 6, false)
	set(0x61, "ADC", cpu.opADC, cpu.amIZX, IndexedIndirect, 6, false)
	set(0x65, "ADC", cpu.opADC, cpu.amZP0, ZeroPage, 3, false)
	set(0x66, "ROR", cpu.opROR, cpu.amZP0, ZeroPage, 5, false)
	set(0x68, "PLA", cpu.opPLA, cpu.amIMP, Implied, 4, false)
	set(0x69, "ADC", cpu.opADC, cpu.amIMM, Immediate, 2, false)
	set(0x6A, "ROR", cpu.opROR, cpu.amIMP, Accumulator, 2, false)
	set(0x6C, "JMP", cpu.opJMP, cpu.amIND, Indirect, 5, false)
	set(0x6D, "ADC", cpu.opADC, cpu.amABS, Absolute, 4, false)
	set(0x6E, "ROR", cpu.opROR, cpu.amABS, Absolute, 6, false)
	set(0x70, "BVS", cpu.opBVS, cpu.amREL, Relative, 2, false)
	set(0x71, "ADC", cpu.opADC, cpu.amIZY, IndirectIndexed, 5, false)
	set(0x75, "ADC", cpu.opADC, cpu.amZPX, ZeroPageX, 4, false)
	set(0x76, "ROR", cpu.opROR, cpu.amZPX, ZeroPageX, 6, false)
	set(0x78, "SEI", cpu.opSEI, cpu.amIMP, Implied, 2, false)
	set(0x79, "ADC", cpu.opADC, cpu.amABY, AbsoluteY, 4, false)
	set(0x7D, "ADC", cpu.opADC, cpu.amABX, AbsoluteX, 4, false)
	set(0x7E, "ROR", cpu.opROR, cpu.amABX, AbsoluteX, 7, true)

	// STA / STX / STY / DEY / TXA / BCC / TYA / TXS
	set(0x81, "STA", cpu.opSTA, cpu.amIZX, IndexedIndirect, 6, true)
	set(0x84, "STY", cpu.opSTY, cpu.amZP0, ZeroPage, 3, false)
	set(0x85, "STA", cpu.opSTA, cpu.amZP0, ZeroPage, 3, false)
	set(0x86, "STX", cpu.opSTX, cpu.amZP0, ZeroPage, 3, false)
	set(0x88, "DEY", cpu.opDEY, cpu.amIMP, Implied, 2, false)
	set(0x8A, "TXA", cpu.opTXA, cpu.amIMP, Implied, 2, false)
	set(0x8C, "STY", cpu.opSTY, cpu.amABS, Absolute, 4, false)
	set(0x8D, "STA", cpu.opSTA, cpu.amABS, Absolute, 4, false)
	set(0x8E, "STX", cpu.opSTX, cpu.amABS, Absolute, 4, false)
	set(0x90, "BCC", cpu.opBCC, cpu.amREL, Relative, 2, false)
	set(0x91, "STA", cpu.opSTA, cpu.amIZY, IndirectIndexed, 6, true)
	set(0x94, "STY", cpu.opSTY, cpu.amZPX, ZeroPageX, 4, false)
	set(0x95, "STA", cpu.opSTA, cpu.amZPX, ZeroPageX, 4, false)
	set(0x96, "STX", cpu.opSTX, cpu.amZPY, ZeroPageY, 4, false)
	set(0x98, "TYA", cpu.opTYA, cpu.amIMP, Implied, 2, false)
	set(0x99, "STA", cpu.opSTA, cpu.amABY, AbsoluteY, 5, true)
	set(0x9A, "TXS", cpu.opTXS, cpu.amIMP, Implied, 2, false)
	set(0x9D, "STA", cpu.opSTA, cpu.amABX, AbsoluteX, 5, true)

	// LDY / LDA / LDX / TAY / TAX / BCS / CLV / TSX
	set(0xA0, "LDY", cpu.opLDY, cpu.amIMM, Immediate, 2, false)
	set(0xA1, "LDA", cpu.opLDA, cpu.amIZX, IndexedIndirect, 6, false)
	set(0xA2, "LDX", cpu.opLDX, cpu.amIMM, Immediate, 2, false)
	set(0xA4, "LDY", cpu.opLDY, cpu.amZP0, ZeroPage, 3, false)
	set(0xA5, "LDA", cpu.opLDA, cpu.amZP0, ZeroPage, 3, false)
	set(0xA6, "LDX", cpu.opLDX, cpu.amZP0, ZeroPage, 3, false)
	set(0xA8, "TAY", cpu.opTAY, cpu.amIMP, Implied, 2, false)
	set(0xA9, "LDA", cpu.opLDA, cpu.amIMM, Immediate, 2, false)
	set(0xAA, "TAX", cpu.opTAX, cpu.amIMP, Implied, 2, false)
	set(0xAC, "LDY", cpu.opLDY, cpu.amABS, Absolute, 4, false)
	set(0xAD, "LDA", cpu.opLDA, cpu.amABS, Absolute, 4, false)
	set(0xAE, "LDX", cpu.opLDX, cpu.amABS, Absolute, 4, false)
	set(0xB0, "BCS", cpu.opBCS, cpu.amREL, Relative, 2, false)
	set(0xB1, "LDA", cpu.opLDA, cpu.amIZY, IndirectIndexed, 5, false)
	set(0xB4, "LDY", cpu.opLDY, cpu.amZPX, ZeroPageX, 4, false)
	set(0xB5, "LDA", cpu.opLDA, cpu.amZPX, ZeroPageX, 4, false)
	set(0xB6, "LDX", cpu.opLDX, cpu.amZPY, ZeroPageY, 4, false)
	set(0xB8, "CLV", cpu.opCLV, cpu.amIMP, Implied, 2, false)
	set(0xB9, "LDA", cpu.opLDA, cpu.amABY, AbsoluteY, 4, false)
	set(0xBA, "TSX", cpu.opTSX, cpu.amIMP, Implied, 2, false)
	set(0xBC, "LDY", cpu.opLDY, cpu.amABX, AbsoluteX, 4, false)
	set(0xBD, "LDA", cpu.opLDA, cpu.amABX, AbsoluteX, 4, false)
	set(0xBE, "LDX", cpu.opLDX, cpu.amABY, AbsoluteY, 4, false)

	// CPY / CMP / DEC / INY / DEX / BNE / CLD
	set(0xC0, "CPY", cpu.opCPY, cpu.amIMM, Immediate, 2, false)
	set(0xC1, "CMP", cpu.opCMP, cpu.amIZX, IndexedIndirect, 6, false)
	set(0xC4, "CPY", cpu.opCPY, cpu.amZP0, ZeroPage, 3, false)
	set(0xC5, "CMP", cpu.opCMP, cpu.amZP0, ZeroPage, 3, false)
	set(0xC6, "DEC", cpu.opDEC, cpu.amZP0, ZeroPage, 5, false)
	set(0xC8, "INY", cpu.opINY, cpu.amIMP, Implied, 2, false)
	set(0xC9, "CMP", cpu.opCMP, cpu.amIMM, Immediate, 2, false)
	set(0xCA, "DEX", cpu.opDEX, cpu.amIMP, Implied, 2, false)
	set(0xCC, "CPY", cpu.opCPY, cpu.amABS, Absolute, 4, false)
	set(0xCD, "CMP", cpu.opCMP, cpu.amABS, Absolute, 4, false)
	set(0xCE, "DEC", cpu.opDEC, cpu.amABS, Absolute, 6, false)
	set(0xD0, "BNE", cpu.opBNE, cpu.amREL, Relative, 2, false)
	set(0xD1, "CMP", cpu.opCMP, cpu.amIZY, IndirectIndexed, 5, false)
	set(0xD5, "CMP", cpu.opCMP, cpu.amZPX, ZeroPageX, 4, false)
	set(0xD6, "DEC", cpu.opDEC, cpu.amZPX, ZeroPageX, 6, false)
	set(0xD8, "CLD", cpu.opCLD, cpu.amIMP, Implied, 2, false)
	set(0xD9, "CMP", cpu.opCMP, cpu.amABY, AbsoluteY, 4, false)
	set(0xDD, "CMP", cpu.opCMP, cpu.amABX, AbsoluteX, 4, false)
	set(0xDE, "DEC", cpu.opDEC, cpu.amABX, AbsoluteX, 7, true)

	// CPX / SBC / INC / INX / NOP / BEQ / SED
	set(0xE0, "CPX", cpu.opCPX, cpu.amIMM, Immediate, 2, false)
	set(0xE1, "SBC", cpu.opSBC, cpu.amIZX, IndexedIndirect, 6, false)
	set(0xE4, "CPX", cpu.opCPX, cpu.amZP0, ZeroPage, 3, false)
	set(0xE5, "SBC", cpu.opSBC, cpu.amZP0, ZeroPage, 3, false)
	set(0xE6, "INC", cpu.opINC, cpu.amZP0, ZeroPage, 5, false)
	set(0xE8, "INX", cpu.opINX, cpu.amIMP, Implied, 2, false)
	set(0xE9, "SBC", cpu.opSBC, cpu.amIMM, Immediate, 2, false)
	set(0xEA, "NOP", cpu.opNOP, cpu.amIMP, Implied, 2, false)
	set(0xEC, "CPX", cpu.opCPX, cpu.amABS, Absolute, 4, false)
	set(0xED, "SBC", cpu.opSBC, cpu.amABS, Absolute, 4, false)
	set(0xEE, "INC", cpu.opINC, cpu.amABS, Absolute, 6, false)
	set(0xF0, "BEQ", cpu.opBEQ, cpu.amREL, Relative, 2, false)
	set(0xF1, "SBC", cpu.opSBC, cpu.amIZY, IndirectIndexed, 5, false)
	set(0xF5, "SBC", cpu.opSBC, cpu.amZPX, ZeroPageX, 4, false)
	set(0xF6, "INC", cpu.opINC, cpu.amZPX, ZeroPageX, 6, false)
	set(0xF8, "SED", cpu.opSED, cpu.amIMP, Implied, 2, false)
	set(0xF9, "SBC", cpu.opSBC, cpu.amABY, AbsoluteY, 4, false)
	set(0xFD, "SBC", cpu.opSBC, cpu.amABX, AbsoluteX, 4, false)
	set(0xFE, "INC", cpu.opINC, cpu.amABX, AbsoluteX, 7, true)

	// BRK, the one zero-operand instruction left at opcode 0x00.
	set(0x00, "BRK", cpu.opBRK, cpu.amIMP, Implied, 7, false)
}

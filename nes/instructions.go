package nes

// Execution unit: one method per officially documented 6502/2A03 instruction.
// Every handler returns the number of extra cycles it needs beyond its
// table entry's base cost; only branch instructions ever return non-zero,
// since for every other instruction the addressing-mode resolver already
// reported its own page-crossing hint, which Step adds unless the opcode's
// table entry marks that cost as fixed (see opcodes.go).

// writeResult stores a byte to either the accumulator (implied/accumulator
// addressing) or the resolved memory address, the pattern the shift and
// rotate instructions (ASL, LSR, ROL, ROR) follow; INC and DEC have no
// accumulator form and write to memory directly.
func (cpu *CPU) writeResult(v uint8) {
	if cpu.implied {
		cpu.A = v
	} else {
		cpu.write(cpu.addrAbs, v)
	}
}

// ADC - Add with Carry
func (cpu *CPU) opADC() uint8 {
	m := cpu.fetch()
	sum := uint16(cpu.A) + uint16(m) + uint16(boolToU8(cpu.getFlag(FlagC)))

	cpu.setFlag(FlagC, sum > 0xFF)
	cpu.setFlag(FlagV, (cpu.A^m)&0x80 == 0 && (cpu.A^uint8(sum))&0x80 != 0)

	cpu.A = uint8(sum)
	cpu.setZN(cpu.A)
	return 0
}

// AND - Logical AND
func (cpu *CPU) opAND() uint8 {
	cpu.A &= cpu.fetch()
	cpu.setZN(cpu.A)
	return 0
}

// ASL - Arithmetic Shift Left
func (cpu *CPU) opASL() uint8 {
	m := cpu.fetch()
	cpu.setFlag(FlagC, m&0x80 != 0)
	result := m << 1
	cpu.writeResult(result)
	cpu.setZN(result)
	return 0
}

func (cpu *CPU) branch(taken bool) uint8 {
	if !taken {
		return 0
	}
	target := cpu.PC + cpu.addrRel
	extra := uint8(1)
	if target&0xFF00 != cpu.PC&0xFF00 {
		extra++
	}
	cpu.PC = target
	return extra
}

// BCC - Branch if Carry Clear
func (cpu *CPU) opBCC() uint8 { return cpu.branch(!cpu.getFlag(FlagC)) }

// BCS - Branch if Carry Set
func (cpu *CPU) opBCS() uint8 { return cpu.branch(cpu.getFlag(FlagC)) }

// BEQ - Branch if Equal
func (cpu *CPU) opBEQ() uint8 { return cpu.branch(cpu.getFlag(FlagZ)) }

// BMI - Branch if Minus
func (cpu *CPU) opBMI() uint8 { return cpu.branch(cpu.getFlag(FlagN)) }

// BNE - Branch if Not Equal
func (cpu *CPU) opBNE() uint8 { return cpu.branch(!cpu.getFlag(FlagZ)) }

// BPL - Branch if Positive
func (cpu *CPU) opBPL() uint8 { return cpu.branch(!cpu.getFlag(FlagN)) }

// BVC - Branch if Overflow Clear
func (cpu *CPU) opBVC() uint8 { return cpu.branch(!cpu.getFlag(FlagV)) }

// BVS - Branch if Overflow Set
func (cpu *CPU) opBVS() uint8 { return cpu.branch(cpu.getFlag(FlagV)) }

// BIT - Bit Test
func (cpu *CPU) opBIT() uint8 {
	m := cpu.fetch()
	cpu.setFlag(FlagZ, cpu.A&m == 0)
	cpu.setFlag(FlagV, m&0x40 != 0)
	cpu.setFlag(FlagN, m&0x80 != 0)
	return 0
}

// BRK - Force Interrupt
//
// Pushes PC+1 (BRK is a 2-byte instruction; the extra byte is a padding/
// signature byte software conventionally skips) then status with B and the
// unused bit both set in the pushed copy, loads PC from the IRQ vector, and
// sets the live interrupt-disable flag.
func (cpu *CPU) opBRK() uint8 {
	cpu.PC++
	cpu.stackPush(uint8(cpu.PC >> 8))
	cpu.stackPush(uint8(cpu.PC))
	cpu.stackPush(cpu.P | uint8(FlagB) | uint8(FlagU))

	cpu.setFlag(FlagI, true)
	cpu.PC = cpu.readWord(irqVector)
	return 0
}

// CLC - Clear Carry Flag
func (cpu *CPU) opCLC() uint8 { cpu.setFlag(FlagC, false); return 0 }

// CLD - Clear Decimal Mode
func (cpu *CPU) opCLD() uint8 { cpu.setFlag(FlagD, false); return 0 }

// CLI - Clear Interrupt Disable
func (cpu *CPU) opCLI() uint8 { cpu.setFlag(FlagI, false); return 0 }

// CLV - Clear Overflow Flag
func (cpu *CPU) opCLV() uint8 { cpu.setFlag(FlagV, false); return 0 }

func (cpu *CPU) compare(reg, m uint8) {
	cpu.setFlag(FlagC, reg >= m)
	cpu.setFlag(FlagZ, reg == m)
	cpu.setFlag(FlagN, (reg-m)&0x80 != 0)
}

// CMP - Compare Accumulator
func (cpu *CPU) opCMP() uint8 { cpu.compare(cpu.A, cpu.fetch()); return 0 }

// CPX - Compare X Register
func (cpu *CPU) opCPX() uint8 { cpu.compare(cpu.X, cpu.fetch()); return 0 }

// CPY - Compare Y Register
func (cpu *CPU) opCPY() uint8 { cpu.compare(cpu.Y, cpu.fetch()); return 0 }

// DEC - Decrement Memory
func (cpu *CPU) opDEC() uint8 {
	v := cpu.fetch() - 1
	cpu.write(cpu.addrAbs, v)
	cpu.setZN(v)
	return 0
}

// DEX - Decrement X Register
func (cpu *CPU) opDEX() uint8 { cpu.X--; cpu.setZN(cpu.X); return 0 }

// DEY - Decrement Y Register
func (cpu *CPU) opDEY() uint8 { cpu.Y--; cpu.setZN(cpu.Y); return 0 }

// EOR - Exclusive OR
func (cpu *CPU) opEOR() uint8 {
	cpu.A ^= cpu.fetch()
	cpu.setZN(cpu.A)
	return 0
}

// INC - Increment Memory
func (cpu *CPU) opINC() uint8 {
	v := cpu.fetch() + 1
	cpu.write(cpu.addrAbs, v)
	cpu.setZN(v)
	return 0
}

// INX - Increment X Register
func (cpu *CPU) opINX() uint8 { cpu.X++; cpu.setZN(cpu.X); return 0 }

// INY - Increment Y Register
func (cpu *CPU) opINY() uint8 { cpu.Y++; cpu.setZN(cpu.Y); return 0 }

// JMP - Jump
func (cpu *CPU) opJMP() uint8 { cpu.PC = cpu.addrAbs; return 0 }

// JSR - Jump to Subroutine
//
// Pushes the return address (the last byte of the JSR instruction, not the
// following one; RTS adds the 1 back) then jumps.
func (cpu *CPU) opJSR() uint8 {
	ret := cpu.PC - 1
	cpu.stackPush(uint8(ret >> 8))
	cpu.stackPush(uint8(ret))
	cpu.PC = cpu.addrAbs
	return 0
}

// LDA - Load Accumulator
func (cpu *CPU) opLDA() uint8 { cpu.A = cpu.fetch(); cpu.setZN(cpu.A); return 0 }

// LDX - Load X Register
func (cpu *CPU) opLDX() uint8 { cpu.X = cpu.fetch(); cpu.setZN(cpu.X); return 0 }

// LDY - Load Y Register
func (cpu *CPU) opLDY() uint8 { cpu.Y = cpu.fetch(); cpu.setZN(cpu.Y); return 0 }

// LSR - Logical Shift Right
func (cpu *CPU) opLSR() uint8 {
	m := cpu.fetch()
	cpu.setFlag(FlagC, m&0x01 != 0)
	result := m >> 1
	cpu.writeResult(result)
	cpu.setZN(result)
	return 0
}

// NOP - No Operation
func (cpu *CPU) opNOP() uint8 { return 0 }

// ORA - Logical Inclusive OR
func (cpu *CPU) opORA() uint8 {
	cpu.A |= cpu.fetch()
	cpu.setZN(cpu.A)
	return 0
}

// PHA - Push Accumulator
func (cpu *CPU) opPHA() uint8 { cpu.stackPush(cpu.A); return 0 }

// PHP - Push Processor Status
//
// The pushed copy always has B and the unused bit set, regardless of their
// live values; this is the documented hardware convention, not a choice
// this handler makes for itself (see opBRK, opPLP).
func (cpu *CPU) opPHP() uint8 {
	cpu.stackPush(cpu.P | uint8(FlagB) | uint8(FlagU))
	return 0
}

// PLA - Pull Accumulator
func (cpu *CPU) opPLA() uint8 { cpu.A = cpu.stackPop(); cpu.setZN(cpu.A); return 0 }

// PLP - Pull Processor Status
//
// B is not a real condition the CPU tracks; it only ever exists on the byte
// that gets pushed. Pulling leaves the live B/unused bits pinned rather than
// letting the stack's stale copy overwrite them.
func (cpu *CPU) opPLP() uint8 {
	pulled := cpu.stackPop()
	cpu.P = (pulled &^ (uint8(FlagB) | uint8(FlagU))) | (cpu.P & uint8(FlagB)) | uint8(FlagU)
	return 0
}

// ROL - Rotate Left
func (cpu *CPU) opROL() uint8 {
	m := cpu.fetch()
	carryIn := boolToU8(cpu.getFlag(FlagC))
	cpu.setFlag(FlagC, m&0x80 != 0)
	result := (m << 1) | carryIn
	cpu.writeResult(result)
	cpu.setZN(result)
	return 0
}

// ROR - Rotate Right
func (cpu *CPU) opROR() uint8 {
	m := cpu.fetch()
	carryIn := boolToU8(cpu.getFlag(FlagC))
	cpu.setFlag(FlagC, m&0x01 != 0)
	result := (m >> 1) | (carryIn << 7)
	cpu.writeResult(result)
	cpu.setZN(result)
	return 0
}

// RTI - Return from Interrupt
//
// Pulls status (B/unused pinned as in PLP) then PC low byte, then high byte.
func (cpu *CPU) opRTI() uint8 {
	pulled := cpu.stackPop()
	cpu.P = (pulled &^ (uint8(FlagB) | uint8(FlagU))) | (cpu.P & uint8(FlagB)) | uint8(FlagU)

	lo := cpu.stackPop()
	hi := cpu.stackPop()
	cpu.PC = uint16(hi)<<8 | uint16(lo)
	return 0
}

// RTS - Return from Subroutine
//
// Pulls the return address low byte then high byte, and adds 1 since JSR
// pushed the address of its own last byte rather than the next instruction.
func (cpu *CPU) opRTS() uint8 {
	lo := cpu.stackPop()
	hi := cpu.stackPop()
	cpu.PC = (uint16(hi)<<8 | uint16(lo)) + 1
	return 0
}

// SBC - Subtract with Carry
//
// Implemented as the canonical SBC(M) == ADC(~M): carry flows through
// unchanged as a "not borrow" bit, and the overflow/carry logic is
// identical to ADC's once the operand is complemented.
func (cpu *CPU) opSBC() uint8 {
	m := cpu.fetch() ^ 0xFF
	sum := uint16(cpu.A) + uint16(m) + uint16(boolToU8(cpu.getFlag(FlagC)))

	cpu.setFlag(FlagC, sum > 0xFF)
	cpu.setFlag(FlagV, (cpu.A^m)&0x80 == 0 && (cpu.A^uint8(sum))&0x80 != 0)

	cpu.A = uint8(sum)
	cpu.setZN(cpu.A)
	return 0
}

// SEC - Set Carry Flag
func (cpu *CPU) opSEC() uint8 { cpu.setFlag(FlagC, true); return 0 }

// SED - Set Decimal Flag
func (cpu *CPU) opSED() uint8 { cpu.setFlag(FlagD, true); return 0 }

// SEI - Set Interrupt Disable
func (cpu *CPU) opSEI() uint8 { cpu.setFlag(FlagI, true); return 0 }

// STA - Store Accumulator
func (cpu *CPU) opSTA() uint8 { cpu.write(cpu.addrAbs, cpu.A); return 0 }

// STX - Store X Register
func (cpu *CPU) opSTX() uint8 { cpu.write(cpu.addrAbs, cpu.X); return 0 }

// STY - Store Y Register
func (cpu *CPU) opSTY() uint8 { cpu.write(cpu.addrAbs, cpu.Y); return 0 }

// TAX - Transfer Accumulator to X
func (cpu *CPU) opTAX() uint8 { cpu.X = cpu.A; cpu.setZN(cpu.X); return 0 }

// TAY - Transfer Accumulator to Y
func (cpu *CPU) opTAY() uint8 { cpu.Y = cpu.A; cpu.setZN(cpu.Y); return 0 }

// TSX - Transfer Stack Pointer to X
func (cpu *CPU) opTSX() uint8 { cpu.X = cpu.SP; cpu.setZN(cpu.X); return 0 }

// TXA - Transfer X to Accumulator
func (cpu *CPU) opTXA() uint8 { cpu.A = cpu.X; cpu.setZN(cpu.A); return 0 }

// TXS - Transfer X to Stack Pointer (does not affect flags)
func (cpu *CPU) opTXS() uint8 { cpu.SP = cpu.X; return 0 }

// TYA - Transfer Y to Accumulator
func (cpu *CPU) opTYA() uint8 { cpu.A = cpu.Y; cpu.setZN(cpu.A); return 0 }

func boolToU8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
